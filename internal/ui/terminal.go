package ui

import (
	"context"
	"fmt"
	"io"
	"os"
)

type terminalUI struct {
	out   io.Writer
	quiet bool
}

// NewTerminal construit l'implémentation terminale. quiet=true supprime les
// messages d'information (mais jamais les erreurs). Les sorties JSON et
// --ids-only passent quiet=true pour garder un flux stdout propre.
func NewTerminal(quiet bool) Interface {
	return &terminalUI{out: os.Stderr, quiet: quiet}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	if t.quiet {
		return
	}
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}
