package channel

import (
	"sort"
	"strings"

	"github.com/patrickprogramme/webtools/internal/yt"
	"github.com/patrickprogramme/webtools/pkg/model"
)

// Ordres de tri supportés. SortRecency conserve l'ordre renvoyé par
// YouTube (du plus récent au plus ancien), aucun tri n'est appliqué.
const (
	SortRecency     = "recency"
	SortViews       = "views"
	SortDuration    = "duration"
	SortDurationAsc = "duration_asc"
)

const snippetMaxRunes = 200

// ValidSort vérifie la valeur du drapeau --sort.
func ValidSort(s string) bool {
	switch s {
	case SortRecency, SortViews, SortDuration, SortDurationAsc:
		return true
	}
	return false
}

// Options contrôle la construction du listing. Limit <= 0 signifie
// "toutes les vidéos".
type Options struct {
	ContentType string
	Sort        string
	Search      string
	Limit       int
}

// BuildListing transforme un dump de chaîne en listing final : snippet,
// filtre de recherche, tri stable, limite, puis numérotation. Les index
// sont attribués après filtre et tri, donc toujours contigus à partir de 1.
func BuildListing(dump *yt.ChannelDump, baseURL string, opts Options) *model.ChannelListing {
	videos := make([]model.ChannelVideo, 0, len(dump.Entries))
	for _, e := range dump.Entries {
		videos = append(videos, model.ChannelVideo{
			ID:                 e.ID,
			Title:              e.Title,
			URL:                "https://youtube.com/watch?v=" + e.ID,
			Duration:           e.Duration,
			DurationHuman:      e.Duration.Human(),
			Views:              e.Views,
			UploadDate:         e.UploadDate,
			DescriptionSnippet: snippet(e.Description),
		})
	}
	totalCount := len(videos)

	if opts.Search != "" {
		needle := strings.ToLower(opts.Search)
		kept := videos[:0]
		for _, v := range videos {
			if strings.Contains(strings.ToLower(v.Title), needle) ||
				strings.Contains(strings.ToLower(v.DescriptionSnippet), needle) {
				kept = append(kept, v)
			}
		}
		videos = kept
	}

	// tri stable : les ex aequo gardent l'ordre chronologique de la source
	switch opts.Sort {
	case SortViews:
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Views > videos[j].Views })
	case SortDuration:
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Duration > videos[j].Duration })
	case SortDurationAsc:
		sort.SliceStable(videos, func(i, j int) bool { return videos[i].Duration < videos[j].Duration })
	}

	if opts.Limit > 0 && len(videos) > opts.Limit {
		videos = videos[:opts.Limit]
	}

	for i := range videos {
		videos[i].Index = i + 1
	}

	return &model.ChannelListing{
		Channel:       dump.Channel,
		ChannelID:     dump.ChannelID,
		ChannelURL:    baseURL,
		ContentType:   opts.ContentType,
		TotalCount:    totalCount,
		ReturnedCount: len(videos),
		Sort:          opts.Sort,
		Search:        opts.Search,
		Videos:        videos,
	}
}

// snippet tronque une description à 200 caractères (avec "..." si coupée).
func snippet(desc string) string {
	if desc == "" {
		return ""
	}
	runes := []rune(desc)
	if len(runes) <= snippetMaxRunes {
		return desc
	}
	return string(runes[:snippetMaxRunes]) + "..."
}
