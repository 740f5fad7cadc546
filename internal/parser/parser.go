package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go3tag/internal/shared"
)

// Delimiter separating filename components in both naming schemes.
const Delimiter = " - "

var yearGroupRe = regexp.MustCompile(`\(([^)]*)\)`)
var yearRe = regexp.MustCompile(`^\d{4}$`)

// ParseFilename extracts tag fields from a filename.
//
// Two naming schemes are recognized, both with four Delimiter-separated
// components. When the third component is a track number the file follows
// the album scheme "Artist - Album - NN - Title"; when the second one is,
// it follows the compilation scheme "Album - NN - Artist - Title".
func ParseFilename(path string) (shared.TrackFile, error) {
	tf := shared.TrackFile{Path: path, Format: shared.DetectFormat(path)}
	if tf.Format == shared.FormatUnknown {
		return tf, fmt.Errorf("unrecognized audio format: %s", filepath.Ext(path))
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(name, Delimiter)
	if len(parts) != 4 {
		return tf, fmt.Errorf("expected 4 %q-separated components, got %d", Delimiter, len(parts))
	}

	if track, err := strconv.Atoi(parts[2]); err == nil {
		tf.Artist = parts[0]
		tf.Album = parts[1]
		tf.Track = track
		tf.Title = parts[3]
		return tf, nil
	}
	if track, err := strconv.Atoi(parts[1]); err == nil {
		tf.Album = parts[0]
		tf.Track = track
		tf.Artist = parts[2]
		tf.Title = parts[3]
		tf.Compilation = true
		return tf, nil
	}
	return tf, fmt.Errorf("no track number found in %q", name)
}

// YearFromDir extracts the release year from a directory name such as
// "Artist - Album (2003)". The last parenthesized group wins, and within
// it the last whitespace-separated token, so "(Remastered 2003)" also
// yields 2003. Returns false when no four-digit year is present.
func YearFromDir(dir string) (string, bool) {
	matches := yearGroupRe.FindAllStringSubmatch(dir, -1)
	if len(matches) == 0 {
		return "", false
	}
	group := strings.TrimSpace(matches[len(matches)-1][1])
	fields := strings.Fields(group)
	if len(fields) == 0 {
		return "", false
	}
	year := fields[len(fields)-1]
	if !yearRe.MatchString(year) {
		return "", false
	}
	return year, true
}
