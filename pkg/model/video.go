package model

import "fmt"

// CaptionTrack décrit une piste de sous-titres téléchargeable.
type CaptionTrack struct {
	Format Format    `json:"format"`
	URL    string    `json:"url"`
	Source SubSource `json:"source,omitempty"`
}

func (t CaptionTrack) String() string {
	return fmt.Sprintf("CaptionTrack(format=%s, source=%s)", t.Format, t.Source)
}

// LangTracks regroupe les pistes disponibles pour une langue.
// Les langues sont gardées en slice (et non en map) pour conserver
// l'ordre d'apparition dans le JSON de yt-dlp : la sélection de langue
// par défaut dépend de cet ordre.
type LangTracks struct {
	Lang   string
	Tracks []CaptionTrack
}

// VideoMeta regroupe les métadonnées extraites d'une vidéo YouTube
// par yt-dlp, côté outil transcript.
type VideoMeta struct {
	ID       string
	Title    string
	Channel  string
	Duration Seconds
	// Language est la langue originale déclarée de la vidéo (souvent vide).
	Language string
	// ManualSubs : sous-titres fournis par l'auteur. AutoCaptions : générés.
	ManualSubs   []LangTracks
	AutoCaptions []LangTracks
}

func (m VideoMeta) String() string {
	return fmt.Sprintf("VideoMeta[ID=%s, Title=%q, Channel=%s, Subs=%d, Auto=%d]",
		m.ID, m.Title, m.Channel, len(m.ManualSubs), len(m.AutoCaptions))
}

// ChannelVideo est une entrée de la liste des vidéos d'une chaîne.
// Index est 1-based et attribué après filtrage/tri.
type ChannelVideo struct {
	Index              int     `json:"index"`
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	URL                string  `json:"url"`
	Duration           Seconds `json:"duration"`
	DurationHuman      string  `json:"duration_human"`
	Views              int64   `json:"views"`
	UploadDate         string  `json:"upload_date,omitempty"`
	DescriptionSnippet string  `json:"description_snippet,omitempty"`
}

// ChannelListing est la réponse complète de l'outil chaîne :
// métadonnées + vidéos après filtre/tri/limite.
type ChannelListing struct {
	Channel       string         `json:"channel"`
	ChannelID     string         `json:"channel_id"`
	ChannelURL    string         `json:"channel_url"`
	ContentType   string         `json:"content_type"`
	TotalCount    int            `json:"total_count"`
	ReturnedCount int            `json:"returned_count"`
	Sort          string         `json:"sort"`
	Search        string         `json:"search,omitempty"`
	Videos        []ChannelVideo `json:"videos"`
}

// TranscriptResult est la réponse complète de l'outil transcript.
type TranscriptResult struct {
	Title              string   `json:"title"`
	VideoID            string   `json:"video_id"`
	Channel            string   `json:"channel"`
	Duration           Seconds  `json:"duration"`
	Language           string   `json:"language"`
	AvailableLanguages []string `json:"available_languages"`
	Transcript         string   `json:"transcript"`
}
