package model

import (
	"bytes"
	"encoding/json"
)

// ErrorDoc est le document JSON émis quand un outil échoue en mode --json.
// AvailableLanguages n'est rempli que pour l'erreur "langue introuvable".
type ErrorDoc struct {
	Error              string   `json:"error"`
	AvailableLanguages []string `json:"available_languages,omitempty"`
}

// PrettyJSON encode v en JSON indenté 2 espaces.
// L'échappement HTML est désactivé pour que les caractères non-ASCII et
// les '&' restent littéraux dans la sortie (équivalent ensure_ascii=False).
func PrettyJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode ajoute un newline final ; on le retire, l'appelant gère sa sortie.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
