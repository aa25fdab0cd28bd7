package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/webtools/internal/fetch"
)

const (
	latestReleaseURL = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"
	releaseTimeout   = 10 * time.Second
	maxReleaseBytes  = 2 << 20 // le JSON de release fait quelques dizaines de Ko
)

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		ContentType        string `json:"content_type"`
	} `json:"assets"`
}

// GetLatestYtDlpRelease interroge l'API GitHub et extrait les deux assets
// binaires de la dernière release.
func GetLatestYtDlpRelease(ctx context.Context) (*YtDlpReleaseInfo, error) {
	var raw rawRelease
	if err := fetch.JSONInto(ctx, latestReleaseURL, releaseTimeout, maxReleaseBytes, &raw); err != nil {
		return nil, fmt.Errorf("release GitHub: %w", err)
	}

	info := &YtDlpReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		Body:        raw.Body,
		HTMLURL:     raw.HTMLURL,
	}

	for _, a := range raw.Assets {
		switch a.Name {
		case "yt-dlp.exe":
			info.WindowsRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		case "yt-dlp":
			info.LinuxRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		}
	}

	if info.WindowsRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Windows introuvable")
	}
	if info.LinuxRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Linux introuvable")
	}

	return info, nil
}
