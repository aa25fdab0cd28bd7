package app

import (
	"context"
	"fmt"
	"io"

	"github.com/patrickprogramme/webtools/internal/clipboard"
	"github.com/patrickprogramme/webtools/internal/config"
	"github.com/patrickprogramme/webtools/internal/subtitles"
	"github.com/patrickprogramme/webtools/internal/ui"
	"github.com/patrickprogramme/webtools/internal/yt"
	"github.com/patrickprogramme/webtools/pkg/model"
)

// TranscriptFlags contient les informations venant des flags de yttranscript.
type TranscriptFlags struct {
	ConfigPath string
	URL        string
	Lang       string
	ListLangs  bool
	JSON       bool
	Copy       bool
	Quiet      bool
	YtDlpPath  string
}

// Transcript est le runner de l'outil yttranscript.
type Transcript struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *TranscriptFlags
	out      io.Writer
	ytClient yt.Interface // initialisé dans Run ; injectable pour les tests
}

func NewTranscript(cfg *config.Config, uiClient ui.Interface, flags *TranscriptFlags, out io.Writer) *Transcript {
	return &Transcript{cfg: cfg, ui: uiClient, flags: flags, out: out}
}

// Run exécute le flux complet : validation de l'URL, extraction des
// métadonnées, sélection langue/piste, téléchargement, parsing, sortie.
func (t *Transcript) Run(ctx context.Context) error {
	jsonMode := t.flags.JSON

	// La validation d'entrée précède tout le reste : message sur stderr
	// même en mode --json.
	if _, err := yt.ExtractVideoID(t.flags.URL); err != nil {
		t.ui.PrintError(ctx, "Error: Invalid YouTube URL")
		return err
	}

	if t.flags.YtDlpPath != "" {
		t.cfg.YtDlp.Path = t.flags.YtDlpPath
		t.cfg.ResolveYtDlpPath()
	}
	if t.ytClient == nil {
		dl, err := yt.InitYtDlp(t.cfg)
		if err != nil {
			return reportError(ctx, t.ui, t.out, jsonMode, err)
		}
		t.ytClient = dl
	}
	if t.cfg.YtDlp.AutoUpdateCheck {
		ytDlpUpdateCheck(ctx, t.ui, t.ytClient)
	}

	t.ui.PrintInfo(ctx, "Processing: "+t.flags.URL)

	exCtx, cancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer cancel()

	t.ui.PrintInfo(ctx, "Fetching video info...")
	raw, err := t.ytClient.ExtractVideo(exCtx, t.flags.URL)
	if err != nil {
		return reportError(ctx, t.ui, t.out, jsonMode,
			fmt.Errorf("download error: %v", err))
	}
	relayWarnings(ctx, t.ui, raw)

	meta, err := yt.ParseVideo(raw.JSON)
	if err != nil {
		return reportError(ctx, t.ui, t.out, jsonMode, err)
	}
	t.ui.PrintInfo(ctx, "Title: "+meta.Title)

	// fusion auto+manuel puis sélection de la langue et de la piste
	all := subtitles.Merge(meta.AutoCaptions, meta.ManualSubs)
	selected, err := subtitles.SelectLanguage(all, t.flags.Lang, meta.Language)
	if err != nil {
		return reportError(ctx, t.ui, t.out, jsonMode, err)
	}
	t.ui.PrintInfo(ctx, "Using language: "+selected.Lang)

	track, err := subtitles.PickTrack(selected)
	if err != nil {
		return reportError(ctx, t.ui, t.out, jsonMode, err)
	}

	t.ui.PrintInfo(ctx, fmt.Sprintf("Downloading subtitles (%s)...", track.Format))
	payload, err := subtitles.Download(ctx, track, t.cfg.SubtitleTimeout(), t.cfg.MaxFetchBytes)
	if err != nil {
		return reportError(ctx, t.ui, t.out, jsonMode, err)
	}

	follow := subtitles.Follower(ctx, t.cfg.SubtitleTimeout(), t.cfg.MaxFetchBytes)
	text := subtitles.ParseTrack(track.Format, payload, follow)

	result := model.TranscriptResult{
		Title:              meta.Title,
		VideoID:            meta.ID,
		Channel:            meta.Channel,
		Duration:           meta.Duration,
		Language:           selected.Lang,
		AvailableLanguages: subtitles.Languages(all),
		Transcript:         text,
	}

	if t.flags.ListLangs {
		return t.printLanguages(result.AvailableLanguages)
	}

	if jsonMode {
		if err := emitJSON(t.out, result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(t.out, result.Transcript)
	}

	if t.flags.Copy {
		if cerr := clipboard.WriteAll(result.Transcript); cerr != nil {
			t.ui.PrintError(ctx, fmt.Sprintf("\nCould not copy to clipboard: %v", cerr))
		} else {
			t.ui.PrintError(ctx, "\nCopied to clipboard!")
		}
	}
	return nil
}

func (t *Transcript) printLanguages(langs []string) error {
	if t.flags.JSON {
		doc := struct {
			AvailableLanguages []string `json:"available_languages"`
		}{AvailableLanguages: langs}
		return emitJSON(t.out, doc)
	}
	fmt.Fprintln(t.out, "Available languages:")
	for _, lang := range langs {
		fmt.Fprintf(t.out, "  %s\n", lang)
	}
	return nil
}
