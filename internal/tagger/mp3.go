package tagger

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"

	"go3tag/internal/shared"
)

// writeMP3 rewrites the ID3v2.4 tag of an mp3 file.
func writeMP3(tf shared.TrackFile, cover []byte, bpm float64, genre string) error {
	tag, err := id3v2.Open(tf.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open mp3 file: %w", err)
	}
	defer tag.Close()

	// Drop whatever tags were there before
	tag.DeleteAllFrames()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	applyID3Frames(tag, tf, cover, bpm, genre)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save mp3 tags: %w", err)
	}
	return nil
}

// applyID3Frames writes all frames for a track onto an ID3v2 tag.
func applyID3Frames(tag *id3v2.Tag, tf shared.TrackFile, cover []byte, bpm float64, genre string) {
	// Artist (TPE1) plus sort, band, and composer frames
	tag.SetArtist(tf.Artist)
	tag.AddTextFrame("TSOP", id3v2.EncodingUTF8, tf.Artist)
	tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, tf.Artist)
	tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, tf.Artist)

	// Album (TALB) and album sort (TSOA)
	tag.SetAlbum(tf.Album)
	tag.AddTextFrame("TSOA", id3v2.EncodingUTF8, tf.Album)

	// Track (TRCK) carries position and total
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d/%d", tf.Track, tf.TotalTracks))

	tag.SetTitle(tf.Title)

	// Recording time (TDRC, ID3v2.4)
	tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, tf.Year)

	tag.SetGenre(genre)

	if bpm > 0 {
		tag.AddTextFrame("TBPM", id3v2.EncodingUTF8, formatBPM(bpm))
	}

	// iTunes compilation flag (TCMP)
	tag.AddTextFrame("TCMP", id3v2.EncodingUTF8, boolTag(tf.Compilation))

	if len(cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    detectImageMIME(cover),
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     cover,
		})
	}
}
