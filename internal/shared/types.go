package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the audio container a file uses.
type Format int

const (
	FormatUnknown Format = iota
	FormatMP3
	FormatFLAC
	FormatM4A
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "mp3"
	case FormatFLAC:
		return "flac"
	case FormatM4A:
		return "m4a"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file path to its container format by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return FormatMP3
	case ".flac":
		return FormatFLAC
	case ".m4a":
		return FormatM4A
	default:
		return FormatUnknown
	}
}

// TrackFile holds the fields parsed from one audio filename plus the
// directory-level values shared by its group. It exists only for the
// duration of a single tagging run.
type TrackFile struct {
	Path        string
	Format      Format
	Artist      string
	Album       string
	Track       int
	Title       string
	Compilation bool
	TotalTracks int
	Year        string
}

// DirectoryGroup is the ordered set of recognized audio files inside one
// directory. It carries the values every member shares: the total track
// count, the release year parsed from the directory name, and the cover
// image found next to the files.
type DirectoryGroup struct {
	Dir    string
	Tracks []TrackFile
	Year   string
	Cover  []byte
}

// TagStats accumulates per-file outcomes across a run.
type TagStats struct {
	TaggedCount  int
	SkippedCount int
	FailedCount  int
	FailedItems  []string
}

// Summary formats the stats for the end-of-run report.
func (s *TagStats) Summary() string {
	return fmt.Sprintf("%d tagged, %d skipped, %d failed", s.TaggedCount, s.SkippedCount, s.FailedCount)
}
