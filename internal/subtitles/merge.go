// Package subtitles sélectionne, télécharge et convertit en texte brut
// les pistes de sous-titres d'une vidéo : fusion manuel/auto, choix de la
// langue et du format, parsing VTT et JSON3.
package subtitles

import "github.com/patrickprogramme/webtools/pkg/model"

// Merge fusionne les pistes automatiques et manuelles en une seule liste.
// Pour une langue présente dans les deux, les pistes manuelles remplacent
// entièrement les automatiques. L'ordre des langues est celui des
// automatiques, les langues uniquement manuelles étant ajoutées à la fin :
// cet ordre détermine le choix par défaut et "available_languages".
func Merge(auto, manual []model.LangTracks) []model.LangTracks {
	manualByLang := make(map[string]model.LangTracks, len(manual))
	for _, lt := range manual {
		manualByLang[lt.Lang] = lt
	}

	merged := make([]model.LangTracks, 0, len(auto)+len(manual))
	seen := make(map[string]bool, len(auto))
	for _, lt := range auto {
		if m, ok := manualByLang[lt.Lang]; ok {
			lt = m
		}
		merged = append(merged, lt)
		seen[lt.Lang] = true
	}
	for _, lt := range manual {
		if !seen[lt.Lang] {
			merged = append(merged, lt)
		}
	}
	return merged
}

// Languages liste les codes de langue dans l'ordre de la fusion.
func Languages(all []model.LangTracks) []string {
	langs := make([]string, 0, len(all))
	for _, lt := range all {
		langs = append(langs, lt.Lang)
	}
	return langs
}
