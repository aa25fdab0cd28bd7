package channel

import (
	"strings"
	"testing"

	"github.com/patrickprogramme/webtools/internal/yt"
)

func TestNormalizeChannelURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"handle avec @", "@HealthyGamerGG", "https://www.youtube.com/@HealthyGamerGG/videos"},
		{"handle sans @", "HealthyGamerGG", "https://www.youtube.com/@HealthyGamerGG/videos"},
		{"ID de chaîne", "UCW39zufHfsuGgpLviKh297Q", "https://www.youtube.com/channel/UCW39zufHfsuGgpLviKh297Q/videos"},
		{"UC trop court traité comme handle", "UCabc", "https://www.youtube.com/@UCabc/videos"},
		{"URL nue reçoit /videos", "https://youtube.com/@foo", "https://youtube.com/@foo/videos"},
		{"URL avec slash final", "https://youtube.com/@foo/", "https://youtube.com/@foo/videos"},
		{"URL déjà suffixée inchangée", "https://youtube.com/@foo/shorts", "https://youtube.com/@foo/shorts"},
		{"espaces ignorés", "  @foo  ", "https://www.youtube.com/@foo/videos"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeChannelURL(tc.in); got != tc.want {
				t.Errorf("NormalizeChannelURL(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitContentType(t *testing.T) {
	base, adjusted := SplitContentType("https://www.youtube.com/@foo/videos", TypeShorts)
	if base != "https://www.youtube.com/@foo" {
		t.Errorf("base = %q", base)
	}
	if adjusted != "https://www.youtube.com/@foo/shorts" {
		t.Errorf("adjusted = %q", adjusted)
	}

	_, adjusted = SplitContentType("https://www.youtube.com/@foo/shorts/", TypeVideos)
	if adjusted != "https://www.youtube.com/@foo/videos" {
		t.Errorf("retour vers videos = %q", adjusted)
	}
}

func sampleDump() *yt.ChannelDump {
	return &yt.ChannelDump{
		Channel:   "Ma Chaîne",
		ChannelID: "UCW39zufHfsuGgpLviKh297Q",
		Entries: []yt.ChannelEntry{
			{ID: "aaaaaaaaaaa", Title: "Premier épisode", Duration: 120, Views: 10, Description: "intro"},
			{ID: "bbbbbbbbbbb", Title: "Deuxième épisode", Duration: 300, Views: 5, Description: "suite avec anxiété"},
			{ID: "ccccccccccc", Title: "Troisième épisode", Duration: 60, Views: 20, Description: ""},
		},
	}
}

func TestBuildListing_DefaultOrder(t *testing.T) {
	l := BuildListing(sampleDump(), "https://www.youtube.com/@foo", Options{
		ContentType: TypeVideos, Sort: SortRecency, Limit: 20,
	})

	if l.TotalCount != 3 || l.ReturnedCount != 3 {
		t.Fatalf("counts = %d/%d; want 3/3", l.TotalCount, l.ReturnedCount)
	}
	wantIDs := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}
	for i, v := range l.Videos {
		if v.ID != wantIDs[i] {
			t.Errorf("videos[%d].ID = %s; want %s", i, v.ID, wantIDs[i])
		}
		if v.Index != i+1 {
			t.Errorf("videos[%d].Index = %d; want %d", i, v.Index, i+1)
		}
		if v.URL != "https://youtube.com/watch?v="+v.ID {
			t.Errorf("videos[%d].URL = %s", i, v.URL)
		}
	}
	if l.Videos[0].DurationHuman != "2:00" {
		t.Errorf("DurationHuman = %s; want 2:00", l.Videos[0].DurationHuman)
	}
}

func TestBuildListing_SortViews(t *testing.T) {
	l := BuildListing(sampleDump(), "", Options{Sort: SortViews})
	got := []int64{l.Videos[0].Views, l.Videos[1].Views, l.Videos[2].Views}
	if got[0] != 20 || got[1] != 10 || got[2] != 5 {
		t.Errorf("vues triées = %v; want [20 10 5]", got)
	}
	// les index suivent l'ordre trié
	if l.Videos[0].Index != 1 || l.Videos[0].ID != "ccccccccccc" {
		t.Errorf("première vidéo = %d/%s", l.Videos[0].Index, l.Videos[0].ID)
	}
}

func TestBuildListing_SortDuration(t *testing.T) {
	l := BuildListing(sampleDump(), "", Options{Sort: SortDurationAsc})
	if l.Videos[0].Duration != 60 || l.Videos[2].Duration != 300 {
		t.Errorf("durées croissantes = %v", l.Videos)
	}
	l = BuildListing(sampleDump(), "", Options{Sort: SortDuration})
	if l.Videos[0].Duration != 300 {
		t.Errorf("durée décroissante, premier = %d", l.Videos[0].Duration)
	}
}

func TestBuildListing_SearchAndLimit(t *testing.T) {
	// filtre insensible à la casse, sur titre et snippet
	l := BuildListing(sampleDump(), "", Options{Sort: SortRecency, Search: "ANXIÉTÉ"})
	if l.ReturnedCount != 1 || l.Videos[0].ID != "bbbbbbbbbbb" {
		t.Fatalf("recherche: returned=%d videos=%v", l.ReturnedCount, l.Videos)
	}
	if l.TotalCount != 3 {
		t.Errorf("TotalCount = %d; want 3 (avant filtre)", l.TotalCount)
	}
	if l.Search != "ANXIÉTÉ" {
		t.Errorf("Search = %q", l.Search)
	}

	// limite appliquée après tri ; 0 = tout
	l = BuildListing(sampleDump(), "", Options{Sort: SortViews, Limit: 2})
	if l.ReturnedCount != 2 || l.Videos[1].Index != 2 {
		t.Errorf("limite: returned=%d index=%d", l.ReturnedCount, l.Videos[1].Index)
	}
	l = BuildListing(sampleDump(), "", Options{Limit: 0})
	if l.ReturnedCount != 3 {
		t.Errorf("limite 0: returned=%d; want 3", l.ReturnedCount)
	}
}

func TestSnippetTruncation(t *testing.T) {
	long := strings.Repeat("é", 250)
	got := snippet(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("suffixe ... manquant : %q", got[len(got)-10:])
	}
	if n := len([]rune(got)); n != snippetMaxRunes+3 {
		t.Errorf("longueur en runes = %d; want %d", n, snippetMaxRunes+3)
	}
	if snippet("court") != "court" {
		t.Error("description courte modifiée")
	}
}

func TestValidFlags(t *testing.T) {
	for _, s := range []string{SortRecency, SortViews, SortDuration, SortDurationAsc} {
		if !ValidSort(s) {
			t.Errorf("ValidSort(%q) = false", s)
		}
	}
	if ValidSort("likes") {
		t.Error("ValidSort(likes) = true")
	}
	if !ValidContentType(TypeShorts) || ValidContentType("playlists") {
		t.Error("ValidContentType incohérent")
	}
}
