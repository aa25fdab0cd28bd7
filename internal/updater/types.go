// Package updater vérifie si le binaire yt-dlp local est à jour par
// rapport à la dernière release GitHub. Vérification seulement : le
// téléchargement reste à la charge de l'utilisateur.
package updater

import (
	"time"
)

// YtDlpAsset représente un exécutable Windows ou Linux publié avec la release.
type YtDlpAsset struct {
	Name               string
	BrowserDownloadURL string
	ContentType        string
}

// YtDlpReleaseInfo contient les métadonnées de la release
// et les deux assets utiles à la mise à jour.
type YtDlpReleaseInfo struct {
	TagName        string
	Name           string
	PublishedAt    time.Time
	Body           string
	HTMLURL        string
	WindowsRelease YtDlpAsset
	LinuxRelease   YtDlpAsset
}
