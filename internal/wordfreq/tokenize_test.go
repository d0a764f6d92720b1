package wordfreq

import (
	"reflect"
	"testing"
)

func TestTokenizeNormalizes(t *testing.T) {
	got := Tokenize("GREAT!! Absolutely stunning graphics...", 3, GlobalStopwords())
	want := []string{"great", "absolutely", "stunning", "graphics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeDropsShortWords(t *testing.T) {
	got := Tokenize("an ox ran far away", 3, map[string]struct{}{})
	want := []string{"ran", "far", "away"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeDropsNumeric(t *testing.T) {
	got := Tokenize("played 100 hours version 2077 rocks", 3, GlobalStopwords())
	for _, w := range got {
		if w == "100" || w == "2077" {
			t.Errorf("numeric token %q should be dropped", w)
		}
	}
	// Mixed alphanumerics survive.
	found := false
	for _, w := range got {
		if w == "hours" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'hours' in %v", got)
	}
}

func TestTokenizeDropsStopwords(t *testing.T) {
	got := Tokenize("the game is really fun because the story rocks", 3, GlobalStopwords())
	want := []string{"fun", "story", "rocks"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTitleStopwordsSupersetOfGlobal(t *testing.T) {
	global := GlobalStopwords()
	title := TitleStopwords()

	for w := range global {
		if _, ok := title[w]; !ok {
			t.Errorf("global stopword %q missing from per-title set", w)
		}
	}
	for _, w := range []string{"games", "playing", "played", "player", "players"} {
		if _, ok := title[w]; !ok {
			t.Errorf("expected %q in per-title set", w)
		}
		if _, ok := global[w]; ok {
			t.Errorf("did not expect %q in global set", w)
		}
	}
}
