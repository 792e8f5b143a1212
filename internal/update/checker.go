// Package update implements the update-notification prompt: an
// asynchronous round trip to a releases endpoint, with dismissal
// persisted per version so an ignored release stays ignored.
package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/perfwatch/quicktrace/internal/analytics"
	"github.com/perfwatch/quicktrace/internal/store"
	"github.com/perfwatch/quicktrace/internal/util"
)

const defaultReleaseURL = "https://api.github.com/repos/perfwatch/quicktrace/releases/latest"

const dismissedVersionKey = "update-prompt:dismissed-version"

// Prompt is the view model for one update notification.
type Prompt struct {
	Version string
	URL     string
}

// release is the subset of the releases endpoint response we read.
type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker performs the prompt round trip. All failures degrade to "no
// prompt"; rendering never sees an error from here.
type Checker struct {
	version    string
	url        string
	store      store.Store
	sink       analytics.Sink
	httpClient *http.Client
}

func NewChecker(version string, st store.Store, sink analytics.Sink) *Checker {
	if sink == nil {
		sink = analytics.Nop()
	}
	return &Checker{
		version: version,
		url:     defaultReleaseURL,
		store:   st,
		sink:    sink,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetURL overrides the releases endpoint, used by tests.
func (c *Checker) SetURL(url string) {
	c.url = url
}

// Check returns a prompt when a newer release exists and has not been
// dismissed, nil otherwise.
func (c *Checker) Check(ctx context.Context) *Prompt {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Update check failed: %v", err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		util.LogDebug(fmt.Sprintf("Update check failed: status %d", resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var rel release
	if err := sonic.Unmarshal(body, &rel); err != nil {
		util.LogDebug(fmt.Sprintf("Update check failed: %v", err))
		return nil
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	if latest == "" || latest == strings.TrimPrefix(c.version, "v") {
		return nil
	}

	if c.store != nil {
		if dismissed, ok := c.store.Get(dismissedVersionKey); ok && dismissed == latest {
			return nil
		}
	}

	return &Prompt{Version: latest, URL: rel.HTMLURL}
}

// Dismiss hides this release's prompt from future runs.
func (c *Checker) Dismiss(p *Prompt) {
	if p == nil {
		return
	}
	if c.store != nil {
		_ = c.store.Set(dismissedVersionKey, p.Version)
	}
	c.sink.Track("update_prompt.dismissed", map[string]interface{}{
		"version": p.Version,
	})
}
