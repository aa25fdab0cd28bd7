package model

// SearchResult est un résultat de recherche Google extrait du markdown
// renvoyé par le proxy de rendu Jina.
// URL est canonique : query string et fragment supprimés (sert à la déduplication).
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
