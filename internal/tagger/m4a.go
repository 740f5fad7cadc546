package tagger

import (
	"fmt"
	"math"
	"strconv"

	mp4tag "github.com/Sorrow446/go-mp4tag"

	"go3tag/internal/shared"
)

// writeM4A rewrites the iTunes-style metadata atoms of an m4a file.
func writeM4A(tf shared.TrackFile, cover []byte, bpm float64, genre string) error {
	mp4, err := mp4tag.Open(tf.Path)
	if err != nil {
		return fmt.Errorf("failed to open m4a file: %w", err)
	}
	defer mp4.Close()

	if err := mp4.Write(buildMP4Tags(tf, cover, bpm, genre), []string{}); err != nil {
		return fmt.Errorf("failed to write m4a tags: %w", err)
	}
	return nil
}

// buildMP4Tags assembles the MP4 tag set for a track. Compilation flag and
// tempo go into freeform atoms; the tempo is rounded to a whole number the
// way iTunes stores it.
func buildMP4Tags(tf shared.TrackFile, cover []byte, bpm float64, genre string) *mp4tag.MP4Tags {
	// Albums are tagged for gapless playback as a whole
	custom := map[string]string{
		"COMPILATION": boolTag(tf.Compilation),
		"GAPLESS":     "1",
	}
	if bpm > 0 {
		custom["BPM"] = strconv.Itoa(int(math.Round(bpm)))
	}

	tags := &mp4tag.MP4Tags{
		Title:           tf.Title,
		TitleSort:       tf.Title,
		Artist:          tf.Artist,
		ArtistSort:      tf.Artist,
		AlbumArtist:     tf.Artist,
		AlbumArtistSort: tf.Artist,
		Composer:        tf.Artist,
		ComposerSort:    tf.Artist,
		Album:           tf.Album,
		AlbumSort:       tf.Album,
		TrackNumber:     int16(tf.Track),
		TrackTotal:      int16(tf.TotalTracks),
		DiscNumber:      1,
		DiscTotal:       1,
		Date:            tf.Year,
		CustomGenre:     genre,
		Custom:          custom,
	}

	if len(cover) > 0 {
		tags.Pictures = []*mp4tag.MP4Picture{{Format: mp4tag.ImageTypeJPEG, Data: cover}}
	}
	return tags
}
