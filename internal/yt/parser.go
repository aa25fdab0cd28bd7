package yt

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/patrickprogramme/webtools/pkg/model"
)

// ParseVideo transforme le JSON brut `-j` en VideoMeta.
func ParseVideo(raw []byte) (*model.VideoMeta, error) {
	var y ytdlpVideo
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp video: %w", err)
	}

	channel := y.Channel
	if channel == "" {
		channel = y.Uploader
	}
	if channel == "" {
		channel = "Unknown"
	}

	lang := y.Language
	if lang == "" {
		lang = y.OriginalLanguage
	}

	meta := &model.VideoMeta{
		ID:           y.ID,
		Title:        titleOrUnknown(y.Title),
		Channel:      channel,
		Duration:     model.Seconds(math.Round(y.Duration)),
		Language:     lang,
		ManualSubs:   toLangTracks(y.Subtitles, model.SubSourceManual),
		AutoCaptions: toLangTracks(y.AutomaticCaptions, model.SubSourceAutomatic),
	}
	return meta, nil
}

// toLangTracks convertit les pistes d'une source en conservant l'ordre des
// langues. Les formats que l'outil ne sait pas exploiter sont ignorés, mais
// la langue reste listée (elle compte dans "available_languages") même si
// aucune de ses pistes n'est utilisable.
func toLangTracks(caps orderedCaptions, src model.SubSource) []model.LangTracks {
	if len(caps) == 0 {
		return nil
	}
	out := make([]model.LangTracks, 0, len(caps))
	for _, entry := range caps {
		lt := model.LangTracks{Lang: entry.Lang}
		for _, it := range entry.Items {
			pf, err := model.ParseFormat(it.Ext)
			if err != nil || it.URL == "" {
				continue // ttml et autres formats non gérés
			}
			lt.Tracks = append(lt.Tracks, model.CaptionTrack{
				Format: pf,
				URL:    it.URL,
				Source: src,
			})
		}
		out = append(out, lt)
	}
	return out
}

func titleOrUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// ChannelEntry est une vidéo issue d'un dump de chaîne, déjà nettoyée.
type ChannelEntry struct {
	ID          string
	Title       string
	Duration    model.Seconds
	Views       int64
	Description string
	UploadDate  string // AAAAMMJJ, vide en mode flat
}

// ChannelDump est le résultat d'un ExtractChannel parsé.
type ChannelDump struct {
	Channel   string
	ChannelID string
	Entries   []ChannelEntry
}

// ParseChannel transforme le JSON brut `-J` d'un listing de chaîne.
// Les entrées null (vidéos en erreur, --ignore-errors) sont ignorées.
func ParseChannel(raw []byte) (*ChannelDump, error) {
	var y ytdlpChannel
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp channel: %w", err)
	}

	channel := y.Channel
	if channel == "" {
		channel = y.Uploader
	}
	if channel == "" {
		channel = "Unknown"
	}
	channelID := y.ChannelID
	if channelID == "" {
		channelID = y.UploaderID
	}

	dump := &ChannelDump{
		Channel:   channel,
		ChannelID: channelID,
	}
	for _, e := range y.Entries {
		if e == nil {
			continue
		}
		dump.Entries = append(dump.Entries, ChannelEntry{
			ID:          e.ID,
			Title:       titleOrUnknown(e.Title),
			Duration:    model.Seconds(math.Round(e.Duration)),
			Views:       e.ViewCount,
			Description: e.Description,
			UploadDate:  e.UploadDate,
		})
	}
	return dump, nil
}
