package app

import (
	"context"
	"fmt"
	"io"

	"github.com/patrickprogramme/webtools/internal/config"
	"github.com/patrickprogramme/webtools/internal/search"
	"github.com/patrickprogramme/webtools/internal/ui"
)

// SearchFlags contient les informations venant des flags de websearch.
type SearchFlags struct {
	ConfigPath string
	Query      string
	Num        int
	JSON       bool
}

// Search est le runner de l'outil websearch.
type Search struct {
	cfg   *config.Config
	ui    ui.Interface
	flags *SearchFlags
	out   io.Writer
}

func NewSearch(cfg *config.Config, uiClient ui.Interface, flags *SearchFlags, out io.Writer) *Search {
	return &Search{cfg: cfg, ui: uiClient, flags: flags, out: out}
}

// Run exécute la recherche : un seul fetch, parsing, sortie.
// Une liste vide n'est pas une erreur (sortie vide ou tableau JSON vide).
func (s *Search) Run(ctx context.Context) error {
	content, err := search.FetchMarkdown(ctx, s.flags.Query, s.flags.Num,
		s.cfg.SearchTimeout(), s.cfg.MaxFetchBytes)
	if err != nil {
		return reportError(ctx, s.ui, s.out, s.flags.JSON,
			fmt.Errorf("fetching results: %w", err))
	}

	results := search.NewParser(s.cfg.ExtraFilterDomains).Parse(content)

	if s.flags.JSON {
		return emitJSON(s.out, results)
	}

	for _, r := range results {
		fmt.Fprintf(s.out, "## %s\n", r.Title)
		fmt.Fprintln(s.out, r.URL)
		if r.Description != "" {
			fmt.Fprintln(s.out, r.Description)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}
