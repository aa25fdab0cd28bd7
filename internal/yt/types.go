package yt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// capEntry : une langue et ses pistes, dans l'ordre du JSON source.
type capEntry struct {
	Lang  string
	Items []subtitleItem
}

// orderedCaptions décode une map JSON langue -> pistes en CONSERVANT l'ordre
// des clés. Une map Go perdrait cet ordre, or la sélection de langue par
// défaut ("première langue disponible") en dépend.
type orderedCaptions []capEntry

func (o *orderedCaptions) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // null JSON -> pas de pistes
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("captions: objet JSON attendu, trouvé %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("captions: clé string attendue")
		}
		var items []subtitleItem
		if err := dec.Decode(&items); err != nil {
			return err
		}
		*o = append(*o, capEntry{Lang: key, Items: items})
	}
	_, err = dec.Token() // consomme '}'
	return err
}

// ytdlpVideo représente la sortie `-j` de yt-dlp pour une vidéo.
// Subtitles et AutomaticCaptions listent les pistes par langue ;
// chaque piste contient au minimum l'extension (Ext) et l'URL de téléchargement.
type ytdlpVideo struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Channel           string          `json:"channel"`
	Uploader          string          `json:"uploader"` // fallback si Channel vide
	Duration          float64         `json:"duration"`
	Language          string          `json:"language"`
	OriginalLanguage  string          `json:"original_language"` // fallback si Language vide
	Subtitles         orderedCaptions `json:"subtitles"`
	AutomaticCaptions orderedCaptions `json:"automatic_captions"`
}

// ytdlpChannelEntry est une vidéo d'un dump de chaîne (-J).
// En mode --flat-playlist certains champs manquent (upload_date, description complète).
type ytdlpChannelEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Duration    float64 `json:"duration"`
	ViewCount   int64   `json:"view_count"`
	Description string  `json:"description"`
	UploadDate  string  `json:"upload_date"` // format AAAAMMJJ, mode complet uniquement
}

// ytdlpChannel représente la sortie `-J` de yt-dlp pour un listing de chaîne.
// Entries peut contenir des null (entrées en erreur avec --ignore-errors).
type ytdlpChannel struct {
	Channel    string               `json:"channel"`
	Uploader   string               `json:"uploader"`
	ChannelID  string               `json:"channel_id"`
	UploaderID string               `json:"uploader_id"`
	Entries    []*ytdlpChannelEntry `json:"entries"`
}

// ExtractedRaw contient le JSON raw, une liste de lignes d'avertissements
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// PrintWarnings affiche les avertissements de yt-dlp via printf (stderr côté appelant).
func (r *ExtractedRaw) PrintWarnings(printf func(format string, args ...any)) {
	if len(r.Warnings) == 0 {
		return
	}
	printf("⚠️  Avertissements yt-dlp :")
	for _, w := range r.Warnings {
		printf("  - %s", w)
	}
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
}
