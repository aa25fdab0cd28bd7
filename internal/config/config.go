package config

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration partagés par les trois outils
type Config struct {
	// Réseau
	SearchTimeoutSec   int   `yaml:"search_timeout_sec"`
	SubtitleTimeoutSec int   `yaml:"subtitle_timeout_sec"`
	MaxFetchBytes      int64 `yaml:"max_fetch_bytes"`

	// Recherche : domaines filtrés en plus de la liste intégrée
	ExtraFilterDomains []string `yaml:"extra_filter_domains"`

	// Chaîne : limite par défaut (0 = toutes les vidéos)
	ChannelLimit int `yaml:"channel_limit"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	c.SearchTimeoutSec = 30
	c.SubtitleTimeoutSec = 15
	c.MaxFetchBytes = 10_000_000

	c.ExtraFilterDomains = nil
	c.ChannelLimit = 20

	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config depuis path. Un fichier absent n'est pas une erreur :
// on repart des valeurs par défaut (la création du fichier au premier
// lancement est gérée par bootstrap.EnsureConfigPresent, côté main).
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = "webtools.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalizeConfig()
			return cfg, nil
		}
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()
	return cfg, nil
}

func (c *Config) normalizeConfig() {
	if c.SearchTimeoutSec <= 0 {
		c.SearchTimeoutSec = 30
	}
	if c.SubtitleTimeoutSec <= 0 {
		c.SubtitleTimeoutSec = 15
	}
	if c.MaxFetchBytes <= 0 {
		c.MaxFetchBytes = 10_000_000
	}
	if c.ChannelLimit < 0 {
		c.ChannelLimit = 0
	}

	// nettoyer la liste de domaines (entrées vides, espaces)
	cleaned := c.ExtraFilterDomains[:0]
	for _, d := range c.ExtraFilterDomains {
		d = strings.TrimSpace(strings.ToLower(d))
		if d != "" {
			cleaned = append(cleaned, d)
		}
	}
	c.ExtraFilterDomains = cleaned

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

func (c *Config) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutSec) * time.Second
}

func (c *Config) SubtitleTimeout() time.Duration {
	return time.Duration(c.SubtitleTimeoutSec) * time.Second
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers
// l'exécutable. Si aucun chemin n'est configuré, on cherche dans le PATH ;
// faute de mieux on garde le nom nu (CheckBinary signalera l'absence).
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		// pas de chemin configuré -> PATH
		if p, err := exec.LookPath(exeName); err == nil {
			c.YtDlp.ResolvedPath = p
		} else {
			c.YtDlp.ResolvedPath = exeName
		}
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
