// Package app orchestre les trois outils : il relie config, client yt-dlp,
// parsing et présentation. Un runner par binaire (Search, Channel,
// Transcript), chacun construit avec ses flags et un io.Writer de sortie
// pour rester testable.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/webtools/internal/subtitles"
	"github.com/patrickprogramme/webtools/internal/ui"
	"github.com/patrickprogramme/webtools/internal/updater"
	"github.com/patrickprogramme/webtools/internal/yt"
	"github.com/patrickprogramme/webtools/pkg/model"
)

const (
	defaultUpdateTimeout  = 15 * time.Second
	defaultExtractTimeout = 2 * time.Minute
)

// emitJSON écrit v en JSON indenté sur w, suivi d'un newline.
func emitJSON(w io.Writer, v any) error {
	b, err := model.PrettyJSON(v)
	if err != nil {
		return fmt.Errorf("encodage JSON: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// reportError convertit une erreur en sortie utilisateur : document JSON
// sur stdout en mode --json, message sur stderr sinon. L'erreur est
// retournée telle quelle pour que le main sorte avec le code 1.
// Une LangNotFoundError emporte la liste des langues disponibles.
func reportError(ctx context.Context, u ui.Interface, w io.Writer, jsonMode bool, err error) error {
	doc := model.ErrorDoc{Error: err.Error()}
	var lnf *subtitles.LangNotFoundError
	if errors.As(err, &lnf) {
		doc.AvailableLanguages = lnf.Available
	}

	if jsonMode {
		if eerr := emitJSON(w, doc); eerr != nil {
			u.PrintError(ctx, "Error: "+err.Error())
		}
	} else {
		u.PrintError(ctx, "Error: "+err.Error())
		if len(doc.AvailableLanguages) > 0 {
			u.PrintError(ctx, "Available: "+strings.Join(doc.AvailableLanguages, ", "))
		}
	}
	return err
}

// ytDlpUpdateCheck compare la version locale de yt-dlp à la dernière
// release GitHub et affiche le résultat sur stderr. Jamais fatal : un
// échec réseau se contente d'un avertissement.
func ytDlpUpdateCheck(ctx context.Context, u ui.Interface, client yt.Interface) {
	uc, cancel := context.WithTimeout(ctx, defaultUpdateTimeout)
	defer cancel()

	version, err := client.GetVersion(uc)
	if err != nil {
		u.PrintError(ctx, fmt.Sprintf("⚠️ version yt-dlp indisponible : %v", err))
		return
	}

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		u.PrintError(ctx, fmt.Sprintf("⚠️ vérification de mise à jour a échoué : %v", err))
		return
	}

	if check.IsUpToDate {
		u.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return
	}

	u.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	u.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	u.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	u.PrintInfo(ctx, "Téléchargez-la ici:")
	u.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))
}

// relayWarnings remonte les lignes non-JSON de yt-dlp sur stderr.
func relayWarnings(ctx context.Context, u ui.Interface, raw *yt.ExtractedRaw) {
	raw.PrintWarnings(func(format string, args ...any) {
		u.PrintError(ctx, fmt.Sprintf(format, args...))
	})
}
