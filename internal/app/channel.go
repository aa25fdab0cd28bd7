package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patrickprogramme/webtools/internal/channel"
	"github.com/patrickprogramme/webtools/internal/config"
	"github.com/patrickprogramme/webtools/internal/ui"
	"github.com/patrickprogramme/webtools/internal/yt"
	"github.com/patrickprogramme/webtools/pkg/model"
)

const (
	titleMaxRunes = 50
	separatorLen  = 60
)

// ChannelFlags contient les informations venant des flags de ytchannel.
type ChannelFlags struct {
	ConfigPath  string
	Channel     string
	Limit       int
	Sort        string
	Search      string
	ContentType string
	WithDates   bool
	JSON        bool
	IDsOnly     bool
	Quiet       bool
	YtDlpPath   string
}

// Channel est le runner de l'outil ytchannel.
type Channel struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *ChannelFlags
	out      io.Writer
	ytClient yt.Interface // initialisé dans Run ; injectable pour les tests
}

func NewChannel(cfg *config.Config, uiClient ui.Interface, flags *ChannelFlags, out io.Writer) *Channel {
	return &Channel{cfg: cfg, ui: uiClient, flags: flags, out: out}
}

// Run exécute le flux complet : normalisation de l'URL, extraction yt-dlp,
// filtre/tri/limite, sortie.
func (c *Channel) Run(ctx context.Context) error {
	jsonMode := c.flags.JSON

	if !channel.ValidSort(c.flags.Sort) {
		return reportError(ctx, c.ui, c.out, jsonMode,
			fmt.Errorf("invalid sort %q", c.flags.Sort))
	}
	if !channel.ValidContentType(c.flags.ContentType) {
		return reportError(ctx, c.ui, c.out, jsonMode,
			fmt.Errorf("invalid content type %q", c.flags.ContentType))
	}

	normalized := channel.NormalizeChannelURL(c.flags.Channel)
	base, listingURL := channel.SplitContentType(normalized, c.flags.ContentType)
	c.ui.PrintInfo(ctx, "Fetching: "+listingURL)

	if c.flags.YtDlpPath != "" {
		c.cfg.YtDlp.Path = c.flags.YtDlpPath
		c.cfg.ResolveYtDlpPath()
	}
	if c.ytClient == nil {
		dl, err := yt.InitYtDlp(c.cfg)
		if err != nil {
			return reportError(ctx, c.ui, c.out, jsonMode, err)
		}
		c.ytClient = dl
	}
	if c.cfg.YtDlp.AutoUpdateCheck {
		ytDlpUpdateCheck(ctx, c.ui, c.ytClient)
	}

	exCtx, cancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer cancel()

	c.ui.PrintInfo(ctx, "Extracting channel info...")
	raw, err := c.ytClient.ExtractChannel(exCtx, listingURL, !c.flags.WithDates)
	if err != nil {
		return reportError(ctx, c.ui, c.out, jsonMode,
			fmt.Errorf("download error: %v", err))
	}
	relayWarnings(ctx, c.ui, raw)

	dump, err := yt.ParseChannel(raw.JSON)
	if err != nil {
		return reportError(ctx, c.ui, c.out, jsonMode,
			fmt.Errorf("could not fetch channel information: %v", err))
	}
	if len(dump.Entries) == 0 {
		return reportError(ctx, c.ui, c.out, jsonMode,
			fmt.Errorf("no videos found"))
	}
	c.ui.PrintInfo(ctx, fmt.Sprintf("Found %d items", len(dump.Entries)))

	listing := channel.BuildListing(dump, base, channel.Options{
		ContentType: c.flags.ContentType,
		Sort:        c.flags.Sort,
		Search:      c.flags.Search,
		Limit:       c.flags.Limit,
	})
	if c.flags.Search != "" {
		c.ui.PrintInfo(ctx, fmt.Sprintf("Filtered to %d videos matching '%s'",
			listing.ReturnedCount, c.flags.Search))
	}

	switch {
	case c.flags.IDsOnly:
		for _, v := range listing.Videos {
			fmt.Fprintln(c.out, v.ID)
		}
	case jsonMode:
		return emitJSON(c.out, listing)
	default:
		c.printListing(listing)
	}
	return nil
}

func (c *Channel) printListing(l *model.ChannelListing) {
	fmt.Fprintf(c.out, "Channel: %s\n", l.Channel)
	fmt.Fprintf(c.out, "Total %s: %d\n", l.ContentType, l.TotalCount)
	fmt.Fprintf(c.out, "Showing: %d (sorted by %s)\n", l.ReturnedCount, l.Sort)
	if l.Search != "" {
		fmt.Fprintf(c.out, "Search: '%s'\n", l.Search)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", separatorLen))

	for _, v := range l.Videos {
		views := "N/A"
		if v.Views > 0 {
			views = groupThousands(v.Views)
		}
		fmt.Fprintf(c.out, "%3d. [%8s] %s\n", v.Index, v.DurationHuman, truncateRunes(v.Title, titleMaxRunes))
		fmt.Fprintf(c.out, "     %s views | %s\n\n", views, v.URL)
	}
}

// groupThousands formate un compteur avec séparateurs de milliers
// ("1,234,567").
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
