package model

import "fmt"

// Seconds est un alias explicite pour représenter une durée en secondes.
type Seconds int64

// Human formate la durée comme l'affiche YouTube : "M:SS" ou "H:MM:SS".
// Exemple : 65 -> "1:05", 3661 -> "1:01:01". Durée nulle ou négative -> "0:00".
func (s Seconds) Human() string {
	if s <= 0 {
		return "0:00"
	}
	total := int64(s)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// constantes pour les formats de pistes de sous-titres exposés par yt-dlp
type Format string

const (
	FormatVTT   Format = "vtt"
	FormatSRV1  Format = "srv1"
	FormatSRV2  Format = "srv2"
	FormatSRV3  Format = "srv3"
	FormatJSON3 Format = "json3"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "vtt":
		return FormatVTT, nil
	case "srv1":
		return FormatSRV1, nil
	case "srv2":
		return FormatSRV2, nil
	case "srv3":
		return FormatSRV3, nil
	case "json3":
		return FormatJSON3, nil
	default:
		return "", fmt.Errorf("format de sous-titres inconnu: %s", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = généré automatiquement par Youtube
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}
