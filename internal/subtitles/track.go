package subtitles

import (
	"errors"

	"github.com/patrickprogramme/webtools/pkg/model"
)

// ErrNoTrackURL : la langue choisie existe mais aucune de ses pistes
// n'est dans un format exploitable.
var ErrNoTrackURL = errors.New("could not get subtitle URL")

// PickTrack choisit la piste à télécharger pour une langue : VTT de
// préférence (le plus simple à parser), sinon la première piste restante
// (srv1/srv2/srv3/json3, dans l'ordre où yt-dlp les liste).
func PickTrack(lt model.LangTracks) (model.CaptionTrack, error) {
	for _, t := range lt.Tracks {
		if t.Format == model.FormatVTT {
			return t, nil
		}
	}
	if len(lt.Tracks) > 0 {
		return lt.Tracks[0], nil
	}
	return model.CaptionTrack{}, ErrNoTrackURL
}
