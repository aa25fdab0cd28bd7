package subtitles

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/patrickprogramme/webtools/pkg/model"
)

var (
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	m3u8URLRe = regexp.MustCompile(`https://[^\s]+`)
)

// FollowFunc télécharge une URL et renvoie son corps en texte. Injectée
// pour que ParseVTT puisse suivre une playlist M3U8 sans dépendre du
// réseau dans les tests.
type FollowFunc func(url string) (string, error)

// ParseTrack convertit le payload téléchargé d'une piste en transcript.
// Le format JSON3 a son propre parser ; tous les autres passent par le
// parser VTT, qui est tolérant (les srv* contiennent aussi du texte balisé).
func ParseTrack(format model.Format, payload string, follow FollowFunc) string {
	if format == model.FormatJSON3 {
		return ParseJSON3(payload, follow)
	}
	return ParseVTT(payload, follow)
}

// ParseVTT extrait le texte d'un fichier VTT : en-têtes, timings, lignes
// vides et numéros de cue sont éliminés, les balises et entités HTML
// nettoyées, et les répétitions consécutives (dues au karaoké des pistes
// auto) dédupliquées.
//
// Certaines URLs de sous-titres renvoient une playlist M3U8 au lieu du
// VTT ; on suit alors la première URL de la playlist, en gardant le texte
// d'origine si le suivi échoue.
func ParseVTT(text string, follow FollowFunc) string {
	if strings.HasPrefix(text, "#EXTM3U") && follow != nil {
		if u := m3u8URLRe.FindString(text); u != "" {
			if body, err := follow(u); err == nil {
				text = body
			}
		}
	}

	raw := strings.Split(text, "\n")
	if len(raw) > 0 && strings.HasPrefix(raw[0], "WEBVTT") {
		// Le bloc d'en-tête (WEBVTT, Kind:, Language:...) court jusqu'à
		// la première ligne vide.
		i := 1
		for i < len(raw) && strings.TrimSpace(raw[i]) != "" {
			i++
		}
		raw = raw[i:]
	}

	var lines []string
	for _, line := range raw {
		if strings.Contains(line, "-->") {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isAllDigits(trimmed) {
			continue
		}

		clean := htmlTagRe.ReplaceAllString(line, "")
		clean = unescapeEntities(clean)
		clean = strings.TrimSpace(clean)
		if clean != "" {
			lines = append(lines, clean)
		}
	}

	return strings.Join(dedupConsecutive(lines), "\n")
}

type json3Doc struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// ParseJSON3 extrait le texte du format json3 (events/segs). Un payload
// qui ne se décode pas en JSON est retraité comme du VTT.
func ParseJSON3(text string, follow FollowFunc) string {
	var doc json3Doc
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return ParseVTT(text, follow)
	}

	var lines []string
	for _, ev := range doc.Events {
		var parts []string
		for _, seg := range ev.Segs {
			if seg.UTF8 != "" {
				parts = append(parts, seg.UTF8)
			}
		}
		if line := strings.TrimSpace(strings.Join(parts, "")); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(dedupConsecutive(lines), "\n")
}

// unescapeEntities remplace les entités HTML rencontrées dans les
// sous-titres. Les remplacements sont séquentiels, &amp; avant &lt; et
// &gt; : "&amp;lt;" donne donc "<".
func unescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	return s
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func dedupConsecutive(lines []string) []string {
	var out []string
	prev := ""
	for i, line := range lines {
		if i == 0 || line != prev {
			out = append(out, line)
			prev = line
		}
	}
	return out
}
