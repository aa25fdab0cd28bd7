package yt

import (
	"fmt"

	"github.com/patrickprogramme/webtools/internal/config"
)

// InitYtDlp initialise le client YtDlp depuis la config et vérifie le binaire.
// La version n'est pas récupérée ici : seul le check de mise à jour en a
// besoin (voir updater), inutile de payer un exec à chaque lancement.
func InitYtDlp(cfg *config.Config) (Interface, error) {
	ytCfg := NewYtDlpConfig(cfg.YtDlp.ShowWarnings)
	dl := NewYtDlp(cfg.YtDlp.Name, cfg.YtDlp.ResolvedPath, *ytCfg)

	if err := dl.CheckBinary(); err != nil {
		return nil, fmt.Errorf("yt-dlp introuvable : %w", err)
	}
	return dl, nil
}
