package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/perfwatch/quicktrace/internal/util"
)

// FileScanner scans a directory tree for exported payload files.
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance.
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory and returns all payload file paths
// (.json trace documents and .jsonl event streams).
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	dirCount := 0
	totalCount := 0

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip file (error): %s - %v", path, err))
			return nil
		}

		if info.IsDir() {
			dirCount++
			return nil
		}

		totalCount++
		lower := strings.ToLower(path)
		if strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".jsonl") {
			files = append(files, path)
		}

		return nil
	})

	duration := time.Since(start)
	util.LogDebug(fmt.Sprintf("File scan completed: duration %v, scanned %d directories, %d files, found %d payload files",
		duration, dirCount, totalCount, len(files)))

	return files, err
}
