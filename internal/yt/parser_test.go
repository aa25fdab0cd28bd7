package yt

import (
	"testing"

	"github.com/patrickprogramme/webtools/pkg/model"
)

const sampleVideoJSON = `{
  "id": "dQw4w9WgXcQ",
  "title": "Une vidéo",
  "channel": "La chaîne",
  "uploader": "uploader-fallback",
  "duration": 212.5,
  "language": "fr",
  "subtitles": {
    "fr": [
      {"ext": "vtt", "url": "https://example.com/fr.vtt"},
      {"ext": "ttml", "url": "https://example.com/fr.ttml"}
    ]
  },
  "automatic_captions": {
    "en": [{"ext": "json3", "url": "https://example.com/en.json3"}],
    "de": [{"ext": "vtt", "url": "https://example.com/de.vtt"}],
    "fr": [{"ext": "vtt", "url": "https://example.com/fr-auto.vtt"}]
  }
}`

func TestParseVideo(t *testing.T) {
	meta, err := ParseVideo([]byte(sampleVideoJSON))
	if err != nil {
		t.Fatalf("ParseVideo: %v", err)
	}

	if meta.ID != "dQw4w9WgXcQ" || meta.Title != "Une vidéo" {
		t.Errorf("meta = %v", meta)
	}
	if meta.Channel != "La chaîne" {
		t.Errorf("Channel = %q (uploader ne doit pas écraser channel)", meta.Channel)
	}
	if meta.Duration != 213 {
		t.Errorf("Duration = %d; want 213 (arrondi)", meta.Duration)
	}
	if meta.Language != "fr" {
		t.Errorf("Language = %q", meta.Language)
	}

	// pistes manuelles : le ttml (format non géré) est filtré, la langue reste
	if len(meta.ManualSubs) != 1 || meta.ManualSubs[0].Lang != "fr" {
		t.Fatalf("ManualSubs = %v", meta.ManualSubs)
	}
	if len(meta.ManualSubs[0].Tracks) != 1 || meta.ManualSubs[0].Tracks[0].Format != model.FormatVTT {
		t.Errorf("pistes fr = %v", meta.ManualSubs[0].Tracks)
	}
	if meta.ManualSubs[0].Tracks[0].Source != model.SubSourceManual {
		t.Errorf("Source = %v", meta.ManualSubs[0].Tracks[0].Source)
	}

	// l'ordre des langues du JSON doit être conservé (en, de, fr)
	gotLangs := make([]string, 0, len(meta.AutoCaptions))
	for _, lt := range meta.AutoCaptions {
		gotLangs = append(gotLangs, lt.Lang)
	}
	want := []string{"en", "de", "fr"}
	if len(gotLangs) != len(want) {
		t.Fatalf("langues auto = %v; want %v", gotLangs, want)
	}
	for i := range want {
		if gotLangs[i] != want[i] {
			t.Fatalf("ordre des langues perdu : %v; want %v", gotLangs, want)
		}
	}
}

func TestParseVideo_Fallbacks(t *testing.T) {
	meta, err := ParseVideo([]byte(`{"id":"x","uploader":"Seul Uploader","original_language":"de","subtitles":null}`))
	if err != nil {
		t.Fatalf("ParseVideo: %v", err)
	}
	if meta.Channel != "Seul Uploader" {
		t.Errorf("Channel fallback = %q", meta.Channel)
	}
	if meta.Language != "de" {
		t.Errorf("Language fallback = %q", meta.Language)
	}
	if meta.Title != "Unknown" {
		t.Errorf("Title fallback = %q", meta.Title)
	}
}

const sampleChannelJSON = `{
  "channel": "HealthyGamerGG",
  "channel_id": "UCClNRixXlagwAd--5MwJKCw",
  "entries": [
    {"id": "aaaaaaaaaaa", "title": "Video A", "duration": 600, "view_count": 10},
    null,
    {"id": "bbbbbbbbbbb", "title": "Video B", "duration": 120.4, "view_count": 20,
     "description": "desc", "upload_date": "20260101"}
  ]
}`

func TestParseChannel(t *testing.T) {
	dump, err := ParseChannel([]byte(sampleChannelJSON))
	if err != nil {
		t.Fatalf("ParseChannel: %v", err)
	}
	if dump.Channel != "HealthyGamerGG" || dump.ChannelID != "UCClNRixXlagwAd--5MwJKCw" {
		t.Errorf("dump = %+v", dump)
	}
	// l'entrée null est ignorée
	if len(dump.Entries) != 2 {
		t.Fatalf("entries = %d; want 2", len(dump.Entries))
	}
	if dump.Entries[1].Duration != 120 || dump.Entries[1].UploadDate != "20260101" {
		t.Errorf("entry B = %+v", dump.Entries[1])
	}
}

func TestParseChannel_UploaderFallback(t *testing.T) {
	dump, err := ParseChannel([]byte(`{"uploader":"U","uploader_id":"@u","entries":[]}`))
	if err != nil {
		t.Fatalf("ParseChannel: %v", err)
	}
	if dump.Channel != "U" || dump.ChannelID != "@u" {
		t.Errorf("fallback uploader : %+v", dump)
	}
}

func TestBuildArgs(t *testing.T) {
	cfg := NewYtDlpConfig(false)

	video := cfg.BuildVideoArgs("https://youtu.be/dQw4w9WgXcQ")
	assertContains(t, video, "--no-config", "-j", "--skip-download", "--no-warnings", "https://youtu.be/dQw4w9WgXcQ")

	flat := cfg.BuildChannelArgs("https://www.youtube.com/@x/videos", true)
	assertContains(t, flat, "-J", "--flat-playlist", "--ignore-errors")

	full := cfg.BuildChannelArgs("https://www.youtube.com/@x/videos", false)
	for _, a := range full {
		if a == "--flat-playlist" {
			t.Error("mode complet : --flat-playlist ne doit pas être présent")
		}
	}
}

func assertContains(t *testing.T, args []string, wanted ...string) {
	t.Helper()
	set := make(map[string]bool, len(args))
	for _, a := range args {
		set[a] = true
	}
	for _, w := range wanted {
		if !set[w] {
			t.Errorf("argument %q absent de %v", w, args)
		}
	}
}
