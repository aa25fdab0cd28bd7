// Package search interroge Google via le proxy de rendu Jina (r.jina.ai)
// et transforme le markdown renvoyé en résultats structurés.
package search

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/patrickprogramme/webtools/internal/fetch"
)

const jinaPrefix = "https://r.jina.ai/https://www.google.com/search?q="

// BuildURL construit l'URL Jina pour une requête Google.
// num > 0 ajoute le paramètre &num (nombre de résultats demandé à Google).
func BuildURL(query string, num int) string {
	u := jinaPrefix + url.QueryEscape(query)
	if num > 0 {
		u += fmt.Sprintf("&num=%d", num)
	}
	return u
}

// FetchMarkdown télécharge le rendu markdown de la page de résultats.
// Une seule requête, pas de retry : un échec est terminal pour l'invocation.
func FetchMarkdown(ctx context.Context, query string, num int, timeout time.Duration, maxBytes int64) (string, error) {
	text, err := fetch.TextWithTimeout(ctx, BuildURL(query, num), timeout, maxBytes)
	if err != nil {
		return "", fmt.Errorf("jina fetch: %w", err)
	}
	return text, nil
}
