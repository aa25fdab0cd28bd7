package search

import (
	"regexp"
	"strings"
)

// FilterDomains : domaines non-contenu toujours écartés des résultats
// (infrastructure Google, vignettes, assets).
var FilterDomains = []string{
	"google.com",
	"gstatic.com",
	"ytimg.com",
	"googleapis.com",
	"googleusercontent.com",
}

var imageFileRe = regexp.MustCompile(`(?i)\.(png|jpg|gif|svg)$`)

// shouldFilter indique si l'URL brute doit être écartée : domaine filtré
// (intégré ou configuré), référence blob, ou fichier image.
func (p *Parser) shouldFilter(rawURL string) bool {
	for _, domain := range FilterDomains {
		if strings.Contains(rawURL, domain) {
			return true
		}
	}
	for _, domain := range p.extraDomains {
		if strings.Contains(rawURL, domain) {
			return true
		}
	}
	if strings.HasPrefix(rawURL, "blob:") || imageFileRe.MatchString(rawURL) {
		return true
	}
	return false
}
