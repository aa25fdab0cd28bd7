// ytchannel : exploration des vidéos d'une chaîne YouTube via yt-dlp.
//
//	ytchannel "@HealthyGamerGG"
//	ytchannel --limit 10 --sort views "@HealthyGamerGG"
//	ytchannel --search "anxiety" --json "@HealthyGamerGG"
//	ytchannel --type shorts "@HealthyGamerGG"
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
	"github.com/patrickprogramme/webtools/internal/channel"
	"github.com/patrickprogramme/webtools/internal/config"
	"github.com/patrickprogramme/webtools/internal/ui"
)

func main() {
	flags, limitSet := parseFlags()

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
	// la limite par défaut vient de la config, sauf flag explicite
	if !limitSet {
		flags.Limit = cfg.ChannelLimit
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quiet := flags.Quiet || flags.JSON || flags.IDsOnly
	tui := ui.NewTerminal(quiet)
	c := app.NewChannel(cfg, tui, flags, os.Stdout)
	if err := c.Run(ctx); err != nil {
		os.Exit(1)
	}
}

func parseFlags() (*app.ChannelFlags, bool) {
	f := &app.ChannelFlags{}
	flag.StringVar(&f.ConfigPath, "config", "", "chemin du fichier de configuration")
	flag.IntVar(&f.Limit, "limit", 20, "nombre de vidéos à retourner (0 = toutes)")
	flag.IntVar(&f.Limit, "n", 20, "raccourci de --limit")
	flag.StringVar(&f.Sort, "sort", channel.SortRecency, "ordre de tri (recency, views, duration, duration_asc)")
	flag.StringVar(&f.Sort, "s", channel.SortRecency, "raccourci de --sort")
	flag.StringVar(&f.Search, "search", "", "filtre par mot-clé (titre et description)")
	flag.StringVar(&f.Search, "q", "", "raccourci de --search")
	flag.StringVar(&f.ContentType, "type", channel.TypeVideos, "type de contenu (videos, shorts, streams)")
	flag.StringVar(&f.ContentType, "t", channel.TypeVideos, "raccourci de --type")
	flag.BoolVar(&f.WithDates, "with-dates", false, "inclure les dates de publication (plus lent)")
	flag.BoolVar(&f.JSON, "json", false, "sortie JSON")
	flag.BoolVar(&f.Quiet, "quiet", false, "supprimer les messages de progression")
	flag.BoolVar(&f.IDsOnly, "ids-only", false, "sortir uniquement les IDs (un par ligne)")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin vers l'exécutable yt-dlp")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <chaîne>\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "La chaîne peut être une URL, un @handle ou un ID (UC...).")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	f.Channel = flag.Arg(0)

	limitSet := false
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "limit" || fl.Name == "n" {
			limitSet = true
		}
	})
	return f, limitSet
}
