package commands

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/presentation/formatter"
)

var artifactsFile string

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List release artifacts from an export",
	RunE:  runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVarP(&artifactsFile, "file", "f", "",
		"Artifacts JSON document (required)")
	artifactsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(artifactsCmd)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	initLogging()

	data, err := os.ReadFile(expandPath(artifactsFile))
	if err != nil {
		return err
	}

	var artifacts []model.Artifact
	if err := sonic.Unmarshal(data, &artifacts); err != nil {
		return fmt.Errorf("malformed artifacts document: %w", err)
	}

	return formatter.NewArtifactFormatter().Format(artifacts)
}
