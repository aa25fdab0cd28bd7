package yt

import "context"

// Interface est l'abstraction utilisée par les outils. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
//
// ExtractVideo correspond à `yt-dlp -j <url>` (une vidéo, métadonnées
// complètes, pistes de sous-titres incluses).
// ExtractChannel correspond à `yt-dlp -J <url>` sur une page de listing de
// chaîne ; flat=true ajoute --flat-playlist (rapide, métadonnées partielles).
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	ExtractVideo(ctx context.Context, url string) (*ExtractedRaw, error)
	ExtractChannel(ctx context.Context, url string, flat bool) (*ExtractedRaw, error)
}
