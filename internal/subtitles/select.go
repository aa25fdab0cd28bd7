package subtitles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/webtools/pkg/model"
)

// ErrNoSubtitles : la vidéo n'expose aucune piste, dans aucune langue.
var ErrNoSubtitles = errors.New("no subtitles available for this video")

// langues de repli quand la langue originale n'est pas sous-titrée
var englishFallbacks = []string{"en", "en-US", "en-GB"}

// LangNotFoundError porte la liste des langues disponibles pour que
// l'appelant puisse la montrer à l'utilisateur (ou la mettre dans le JSON
// d'erreur).
type LangNotFoundError struct {
	Lang      string
	Available []string
}

func (e *LangNotFoundError) Error() string {
	return fmt.Sprintf("language '%s' not found", e.Lang)
}

// SelectLanguage choisit la langue à transcrire parmi les pistes fusionnées.
//
// Si preferred est fourni : correspondance exacte d'abord, puis recherche de
// sous-chaîne insensible à la casse ("zh" matche "zh-Hant"), sinon
// LangNotFoundError. Sans préférence : langue originale de la vidéo si
// sous-titrée, puis anglais (en, en-US, en-GB), puis la première disponible.
func SelectLanguage(all []model.LangTracks, preferred, originalLang string) (model.LangTracks, error) {
	if len(all) == 0 {
		return model.LangTracks{}, ErrNoSubtitles
	}

	if preferred != "" {
		for _, lt := range all {
			if lt.Lang == preferred {
				return lt, nil
			}
		}
		needle := strings.ToLower(preferred)
		for _, lt := range all {
			if strings.Contains(strings.ToLower(lt.Lang), needle) {
				return lt, nil
			}
		}
		return model.LangTracks{}, &LangNotFoundError{Lang: preferred, Available: Languages(all)}
	}

	if originalLang != "" {
		for _, lt := range all {
			if lt.Lang == originalLang {
				return lt, nil
			}
		}
	}
	for _, fb := range englishFallbacks {
		for _, lt := range all {
			if lt.Lang == fb {
				return lt, nil
			}
		}
	}
	return all[0], nil
}
