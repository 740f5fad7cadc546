// Package tagger maps parsed filename fields into the metadata containers
// of mp3, flac, and m4a files.
package tagger

import (
	"fmt"
	"math"
	"strconv"

	"go3tag/internal/shared"
)

// WriteTags rewrites the metadata of the file described by tf. Existing
// tags are replaced, not merged. A zero bpm omits the tempo field; a nil
// cover omits the embedded picture.
func WriteTags(tf shared.TrackFile, cover []byte, bpm float64, genre string) error {
	switch tf.Format {
	case shared.FormatMP3:
		return writeMP3(tf, cover, bpm, genre)
	case shared.FormatFLAC:
		return writeFLAC(tf, cover, bpm, genre)
	case shared.FormatM4A:
		return writeM4A(tf, cover, bpm, genre)
	default:
		return fmt.Errorf("unsupported format for %s", tf.Path)
	}
}

// formatBPM renders a tempo with at most three decimal places.
func formatBPM(bpm float64) string {
	return strconv.FormatFloat(math.Round(bpm*1000)/1000, 'f', -1, 64)
}

func boolTag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
