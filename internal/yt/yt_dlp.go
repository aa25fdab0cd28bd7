package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name // fallback : essayer le nom si pas de path résolu
}

// CheckBinary vérifie que le binaire existe et n'est pas un répertoire.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.exe()
	info, err := os.Stat(exe)
	if err != nil {
		// pas de chemin résolu : dernier essai via le PATH
		if _, lerr := exec.LookPath(exe); lerr == nil {
			return nil
		}
		return fmt.Errorf("yt-dlp introuvable (%s) : %v", exe, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// ExtractVideo exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
func (y *YtDlp) ExtractVideo(ctx context.Context, url string) (*ExtractedRaw, error) {
	return y.run(ctx, y.Config.BuildVideoArgs(url))
}

// ExtractChannel exécute `yt-dlp -J [--flat-playlist] <url>` sur un listing de chaîne.
func (y *YtDlp) ExtractChannel(ctx context.Context, url string, flat bool) (*ExtractedRaw, error) {
	return y.run(ctx, y.Config.BuildChannelArgs(url, flat))
}

// run lance yt-dlp et sépare la ligne JSON des lignes d'avertissement.
// Avec --ignore-errors yt-dlp peut sortir en erreur tout en ayant produit un
// JSON exploitable : dans ce cas on garde le JSON et on remonte le reste en
// warnings plutôt que d'échouer.
func (y *YtDlp) run(ctx context.Context, args []string) (*ExtractedRaw, error) {
	cmd := exec.CommandContext(ctx, y.exe(), args...)
	out, runErr := cmd.CombinedOutput()

	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		if runErr != nil {
			return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", runErr, string(out))
		}
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}
