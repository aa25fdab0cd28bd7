package subtitles

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/webtools/internal/fetch"
	"github.com/patrickprogramme/webtools/pkg/model"
)

// Download télécharge le payload brut d'une piste de sous-titres.
func Download(ctx context.Context, track model.CaptionTrack, timeout time.Duration, maxBytes int64) (string, error) {
	body, err := fetch.TextWithTimeout(ctx, track.URL, timeout, maxBytes)
	if err != nil {
		return "", fmt.Errorf("téléchargement sous-titres (%s): %w", track.Format, err)
	}
	return body, nil
}

// Follower construit la FollowFunc utilisée par les parsers pour suivre
// une éventuelle playlist M3U8, avec les mêmes bornes que le
// téléchargement initial.
func Follower(ctx context.Context, timeout time.Duration, maxBytes int64) FollowFunc {
	return func(url string) (string, error) {
		return fetch.TextWithTimeout(ctx, url, timeout, maxBytes)
	}
}
