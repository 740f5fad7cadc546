package parser

import (
	"testing"

	"go3tag/internal/shared"
)

func TestParseFilenameAlbumScheme(t *testing.T) {
	tf, err := ParseFilename("/music/Artist - Album (2003)/Artist - Album - 03 - Title.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.Artist != "Artist" {
		t.Errorf("expected artist %q, got %q", "Artist", tf.Artist)
	}
	if tf.Album != "Album" {
		t.Errorf("expected album %q, got %q", "Album", tf.Album)
	}
	if tf.Track != 3 {
		t.Errorf("expected track 3, got %d", tf.Track)
	}
	if tf.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", tf.Title)
	}
	if tf.Compilation {
		t.Error("album scheme should not set compilation")
	}
	if tf.Format != shared.FormatMP3 {
		t.Errorf("expected mp3 format, got %v", tf.Format)
	}
}

func TestParseFilenameCompilationScheme(t *testing.T) {
	tf, err := ParseFilename("/music/Best Of 2020/Album - 02 - Artist - Title.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tf.Compilation {
		t.Error("expected compilation flag")
	}
	if tf.Artist != "Artist" {
		t.Errorf("expected artist %q, got %q", "Artist", tf.Artist)
	}
	if tf.Album != "Album" {
		t.Errorf("expected album %q, got %q", "Album", tf.Album)
	}
	if tf.Track != 2 {
		t.Errorf("expected track 2, got %d", tf.Track)
	}
	if tf.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", tf.Title)
	}
}

func TestParseFilenameFormats(t *testing.T) {
	cases := []struct {
		path   string
		format shared.Format
	}{
		{"A - B - 01 - C.mp3", shared.FormatMP3},
		{"A - B - 01 - C.flac", shared.FormatFLAC},
		{"A - B - 01 - C.m4a", shared.FormatM4A},
		{"A - B - 01 - C.FLAC", shared.FormatFLAC},
	}
	for _, c := range cases {
		tf, err := ParseFilename(c.path)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.path, err)
			continue
		}
		if tf.Format != c.format {
			t.Errorf("%s: expected format %v, got %v", c.path, c.format, tf.Format)
		}
	}
}

func TestParseFilenameFailures(t *testing.T) {
	cases := []string{
		"Artist - Title.mp3",                      // too few components
		"A - B - C - D.mp3",                       // no track number
		"A - B - 01 - C - extra.mp3",              // too many components
		"Artist - Album - 01 - Title.wav",         // unknown container
		"Title.mp3",                               // no delimiter at all
	}
	for _, c := range cases {
		if _, err := ParseFilename(c); err == nil {
			t.Errorf("%s: expected parse error", c)
		}
	}
}

// Titles containing digits must not be mistaken for track numbers.
func TestParseFilenameNumericTitle(t *testing.T) {
	tf, err := ParseFilename("Artist - Album - 07 - 1999.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf.Track != 7 || tf.Title != "1999" {
		t.Errorf("expected track 7 title 1999, got track %d title %q", tf.Track, tf.Title)
	}
}

func TestYearFromDir(t *testing.T) {
	cases := []struct {
		dir  string
		year string
		ok   bool
	}{
		{"/music/Artist - Album (2003)", "2003", true},
		{"/music/Artist - Album (Remastered 2003)", "2003", true},
		{"/music/Artist - Album (Live) (1997)", "1997", true},
		{"/music/Artist - Album", "", false},
		{"/music/Artist - Album (Remastered)", "", false},
		{"/music/Artist - Album ()", "", false},
	}
	for _, c := range cases {
		year, ok := YearFromDir(c.dir)
		if ok != c.ok || year != c.year {
			t.Errorf("%s: expected (%q, %v), got (%q, %v)", c.dir, c.year, c.ok, year, ok)
		}
	}
}
