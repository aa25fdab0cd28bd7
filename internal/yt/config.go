package yt

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur
	IgnoreErrors bool // true => --ignore-errors (listing de chaîne : entrées cassées tolérées)
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		SkipDownload: true,
		NoWarnings:   !showWarning,
		NoProgress:   true,
		NoUpdate:     true,
		NoConfig:     true, // valeur par défaut : ignorer les fichiers de config extérieurs (plus prévisible)
		IgnoreErrors: true,
	}
}

// commonArgs construit les flags communs, --no-config en tête pour éviter
// que des configs locales modifient le comportement.
func (c *YtDlpConfig) commonArgs() []string {
	args := make([]string, 0, 8)
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	return args
}

// BuildVideoArgs : arguments pour le dump JSON d'une seule vidéo.
func (c *YtDlpConfig) BuildVideoArgs(url string) []string {
	args := c.commonArgs()
	args = append(args, "-j", url)
	return args
}

// BuildChannelArgs : arguments pour le dump JSON d'un listing de chaîne.
// flat=true => --flat-playlist : rapide mais sans upload_date par vidéo.
func (c *YtDlpConfig) BuildChannelArgs(url string, flat bool) []string {
	args := c.commonArgs()
	args = append(args, "-J")
	if flat {
		args = append(args, "--flat-playlist")
	}
	if c.IgnoreErrors {
		args = append(args, "--ignore-errors")
	}
	args = append(args, url)
	return args
}
