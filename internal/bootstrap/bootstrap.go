// Package bootstrap s'occupe de la mise en place du fichier de configuration
// au premier lancement d'un des outils.
package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/webtools/internal/fsutil"
)

// DefaultConfigPath renvoie l'emplacement par défaut du fichier de
// configuration : webtools.yaml à côté de l'exécutable (ou dans le
// répertoire courant si le chemin de l'exécutable est indéterminable).
func DefaultConfigPath() string {
	binDir := "."
	if exePath, err := os.Executable(); err == nil {
		binDir = filepath.Dir(exePath)
	}
	return filepath.Join(binDir, "webtools.yaml")
}

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers
// dstPath si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: binDir/webtools.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// Comportement : idempotent, ne remplace jamais un fichier existant.
// Retourne true si le fichier a été créé par cet appel ; l'appelant décide
// s'il veut le signaler (et sur quel flux), pour ne pas polluer stdout.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (bool, error) {
	// sécurité: vérifier le parent
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return false, fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
		} else {
			return false, fmt.Errorf("échec test parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return false, fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}

	return true, nil
}
