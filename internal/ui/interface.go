package ui

import "context"

// Interface est la surface de diagnostic des outils. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
//
// Les messages de progression/diagnostic vont sur stderr : stdout est
// réservé au résultat (texte, JSON ou liste d'IDs).
type Interface interface {
	// PrintInfo affiche un message de progression ; ignoré en mode quiet.
	PrintInfo(ctx context.Context, s string)

	// PrintError affiche un message d'erreur ou d'avertissement,
	// même en mode quiet.
	PrintError(ctx context.Context, s string)
}
