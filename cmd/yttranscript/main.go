// yttranscript : téléchargement du transcript d'une vidéo YouTube.
//
//	yttranscript "https://youtube.com/watch?v=..."
//	yttranscript --lang zh-Hant "https://youtube.com/watch?v=..."
//	yttranscript --json "https://youtube.com/watch?v=..."
//	yttranscript --list-langs "https://youtube.com/watch?v=..."
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/patrickprogramme/webtools/internal/app"
	"github.com/patrickprogramme/webtools/internal/assets"
	"github.com/patrickprogramme/webtools/internal/bootstrap"
	"github.com/patrickprogramme/webtools/internal/config"
	"github.com/patrickprogramme/webtools/internal/ui"
)

func main() {
	flags := parseFlags()

	if flags.ConfigPath == "" {
		flags.ConfigPath = bootstrap.DefaultConfigPath()
	}
	created, err := bootstrap.EnsureConfigPresent(flags.ConfigPath, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	} else if created {
		fmt.Fprintf(os.Stderr, "Fichier de configuration créé : %s\n", flags.ConfigPath)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal(flags.Quiet || flags.JSON)
	t := app.NewTranscript(cfg, tui, flags, os.Stdout)
	if err := t.Run(ctx); err != nil {
		os.Exit(1)
	}
}

func parseFlags() *app.TranscriptFlags {
	f := &app.TranscriptFlags{}
	flag.StringVar(&f.ConfigPath, "config", "", "chemin du fichier de configuration")
	flag.StringVar(&f.Lang, "lang", "", "code de langue préféré (ex: en, zh-Hant)")
	flag.StringVar(&f.Lang, "l", "", "raccourci de --lang")
	flag.BoolVar(&f.ListLangs, "list-langs", false, "lister les langues disponibles")
	flag.BoolVar(&f.JSON, "json", false, "sortie JSON")
	flag.BoolVar(&f.Copy, "copy", false, "copier le transcript dans le presse-papier")
	flag.BoolVar(&f.Quiet, "quiet", false, "supprimer les messages de progression")
	flag.BoolVar(&f.Quiet, "q", false, "raccourci de --quiet")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin vers l'exécutable yt-dlp")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <URL de la vidéo>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	f.URL = flag.Arg(0)
	return f
}
