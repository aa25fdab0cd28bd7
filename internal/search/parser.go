package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/patrickprogramme/webtools/pkg/model"
)

// Heuristique de parsing du markdown Jina. Les seuils (fenêtre de 9 lignes,
// longueur minimale 30) sont calés sur la structure observée des pages de
// résultats Google ; ne pas les "améliorer" sans re-vérifier sur du markdown réel.
const (
	descLookahead = 9
	minDescLen    = 30
)

var (
	// un résultat : [### Titre ...](URL) — le titre peut contenir des ']',
	// d'où le match gourmand jusqu'à "](http".
	resultRe = regexp.MustCompile(`^\[### (.+)\]\((https?://[^)]+)\)$`)

	imageMarkerRe = regexp.MustCompile(`\s*!\[.*$`)      // "Titre ![Image](blob) Site" -> couper à l'image
	breadcrumbRe  = regexp.MustCompile(`[\\›»].*$`)      // fil d'Ariane accolé au titre
	multiSpaceRe  = regexp.MustCompile(`\s+`)            // normalisation des espaces internes
	urlTailRe     = regexp.MustCompile(`[#?].*$`)        // canonicalisation : tout depuis # ou ?
	bareDomainRe  = regexp.MustCompile(`(?i)^[a-z0-9.-]+\.[a-z]{2,}$`)
	emphasisRe    = regexp.MustCompile(`_([^_]+)_`)      // _emphase_ -> emphase
	readMoreRe    = regexp.MustCompile(`\[Read more\].*$`)
	dateStampRe   = regexp.MustCompile(`^[A-Z][a-z]{2} \d{1,2}, \d{4} — `)
)

// Parser transforme le markdown Jina en résultats. extraDomains vient de la
// config et s'ajoute à FilterDomains.
type Parser struct {
	extraDomains []string
}

func NewParser(extraDomains []string) *Parser {
	return &Parser{extraDomains: extraDomains}
}

// Parse scanne le markdown ligne à ligne et retourne les résultats dans
// l'ordre de la source, dédupliqués par URL canonique. L'absence de
// description n'est pas une erreur : le champ reste vide.
func (p *Parser) Parse(content string) []model.SearchResult {
	results := []model.SearchResult{}
	seen := make(map[string]bool)

	lines := strings.Split(content, "\n")

	for i, line := range lines {
		m := resultRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rawTitle, rawURL := m[1], m[2]

		title := cleanTitle(rawTitle)
		cleanURL := urlTailRe.ReplaceAllString(rawURL, "")

		if p.shouldFilter(rawURL) || seen[cleanURL] || title == "" {
			continue
		}
		seen[cleanURL] = true

		results = append(results, model.SearchResult{
			Title:       title,
			URL:         cleanURL,
			Description: findDescription(lines, i),
		})
	}

	return results
}

// cleanTitle : le titre brut est de la forme "Titre ![Image](blob) Site URL".
// On coupe au marqueur d'image, puis au fil d'Ariane, puis on normalise.
func cleanTitle(raw string) string {
	t := imageMarkerRe.ReplaceAllString(raw, "")
	t = breadcrumbRe.ReplaceAllString(t, "")
	t = multiSpaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// findDescription cherche une ligne de description dans les lignes qui
// suivent le résultat i (fenêtre bornée). Les lignes de bruit (liens, URLs
// nues, images, puces, widget feedback, domaines nus, lignes courtes) sont
// sautées ; on s'arrête au résultat ou à la section suivante.
func findDescription(lines []string, i int) string {
	end := i + 1 + descLookahead
	if end > len(lines) {
		end = len(lines)
	}
	for j := i + 1; j < end; j++ {
		next := strings.TrimSpace(lines[j])

		if resultRe.MatchString(next) || strings.HasPrefix(next, "##") {
			break
		}

		if strings.HasPrefix(next, "[") ||
			strings.HasPrefix(next, "http") ||
			strings.HasPrefix(next, "![") ||
			strings.HasPrefix(next, "*") ||
			strings.Contains(strings.ToLower(next), "feedback") ||
			bareDomainRe.MatchString(next) ||
			utf8.RuneCountInString(next) < minDescLen {
			continue
		}

		desc := emphasisRe.ReplaceAllString(next, "$1")
		desc = readMoreRe.ReplaceAllString(desc, "")
		desc = dateStampRe.ReplaceAllString(desc, "")
		desc = strings.TrimSpace(desc)

		if utf8.RuneCountInString(desc) > minDescLen {
			return desc
		}
	}
	return ""
}
