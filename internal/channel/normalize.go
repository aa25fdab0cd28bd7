// Package channel construit le listing des vidéos d'une chaîne YouTube
// à partir d'un dump yt-dlp : normalisation de l'URL, filtre, tri, limite.
package channel

import (
	"fmt"
	"regexp"
	"strings"
)

// Types de contenu listables d'une chaîne.
const (
	TypeVideos  = "videos"
	TypeShorts  = "shorts"
	TypeStreams = "streams"
)

const channelIDLen = 24 // longueur fixe des IDs "UC..."

var contentSuffixRe = regexp.MustCompile(`/(videos|shorts|streams)/?$`)

// ValidContentType vérifie la valeur du drapeau --type.
func ValidContentType(t string) bool {
	return t == TypeVideos || t == TypeShorts || t == TypeStreams
}

// NormalizeChannelURL accepte une URL complète, un @handle, un handle nu
// ou un ID de chaîne (UC..., 24 caractères) et renvoie une URL de listing.
func NormalizeChannelURL(channel string) string {
	channel = strings.TrimSpace(channel)

	if strings.HasPrefix(channel, "http") {
		if !strings.Contains(channel, "/videos") &&
			!strings.Contains(channel, "/shorts") &&
			!strings.Contains(channel, "/streams") {
			channel = strings.TrimRight(channel, "/") + "/videos"
		}
		return channel
	}

	if strings.HasPrefix(channel, "@") {
		return fmt.Sprintf("https://www.youtube.com/%s/videos", channel)
	}

	if strings.HasPrefix(channel, "UC") && len(channel) == channelIDLen {
		return fmt.Sprintf("https://www.youtube.com/channel/%s/videos", channel)
	}

	// handle sans @
	return fmt.Sprintf("https://www.youtube.com/@%s/videos", channel)
}

// SplitContentType retire le suffixe de type de contenu de l'URL normalisée
// et renvoie (URL de base, URL ajustée au type demandé).
func SplitContentType(channelURL, contentType string) (base, adjusted string) {
	base = contentSuffixRe.ReplaceAllString(channelURL, "")
	switch contentType {
	case TypeShorts:
		return base, base + "/shorts"
	case TypeStreams:
		return base, base + "/streams"
	default:
		return base, base + "/videos"
	}
}
