package yt

import (
	"errors"
	"regexp"
)

var ErrInvalidVideoURL = errors.New("URL de vidéo YouTube invalide")

// videoIDPatterns : les trois formes d'URL reconnues, testées dans l'ordre.
// Un ID de vidéo fait exactement 11 caractères [0-9A-Za-z_-].
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`), // watch?v= ou segment de chemin
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID extrait l'ID de la vidéo depuis une URL.
// Le premier pattern qui matche gagne ; aucun match -> ErrInvalidVideoURL.
func ExtractVideoID(rawURL string) (string, error) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", ErrInvalidVideoURL
}
