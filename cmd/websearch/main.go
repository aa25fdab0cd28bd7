// websearch : recherche Google via le proxy de rendu Jina.
//
//	websearch "ma requête"
//	websearch --num 20 "ma requête"
//	websearch --json "ma requête"
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

	tui := ui.NewTerminal(flags.JSON)
	s := app.NewSearch(cfg, tui, flags, os.Stdout)
	if err := s.Run(ctx); err != nil {
		os.Exit(1)
	}
}

func parseFlags() *app.SearchFlags {
	f := &app.SearchFlags{}
	flag.StringVar(&f.ConfigPath, "config", "", "chemin du fichier de configuration")
	flag.IntVar(&f.Num, "num", 0, "nombre de résultats demandés à Google")
	flag.BoolVar(&f.JSON, "json", false, "sortie JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] \"requête\"\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	f.Query = flag.Arg(0)
	return f
}
