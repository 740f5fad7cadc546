package tagger

import (
	"fmt"
	"strconv"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"go3tag/internal/shared"
)

// writeFLAC replaces the vorbis comment and picture blocks of a FLAC file.
func writeFLAC(tf shared.TrackFile, cover []byte, bpm float64, genre string) error {
	f, err := flac.ParseFile(tf.Path)
	if err != nil {
		return fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	// Remove existing VORBIS_COMMENT and PICTURE blocks to ensure clean metadata
	var newMeta []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment && block.Type != flac.Picture {
			newMeta = append(newMeta, block)
		}
	}
	f.Meta = newMeta

	comment := buildVorbisComment(tf, bpm, genre)
	commentBlock := comment.Marshal()
	f.Meta = append(f.Meta, &commentBlock)

	if err := addFlacCover(f, cover); err != nil {
		return fmt.Errorf("failed to add cover art: %w", err)
	}

	if err := f.Save(tf.Path); err != nil {
		return fmt.Errorf("failed to save FLAC file with metadata: %w", err)
	}
	return nil
}

// buildVorbisComment assembles the full vorbis comment for a track.
func buildVorbisComment(tf shared.TrackFile, bpm float64, genre string) *flacvorbis.MetaDataBlockVorbisComment {
	comment := flacvorbis.New()

	addField(comment, flacvorbis.FIELD_TITLE, tf.Title)
	addField(comment, flacvorbis.FIELD_ARTIST, tf.Artist)

	// The artist also acts as album artist and composer. Players disagree
	// on the sort-field spelling, so both conventions are written.
	addField(comment, "ALBUMARTIST", tf.Artist)
	addField(comment, "ALBUM_ARTIST", tf.Artist)
	addField(comment, "COMPOSER", tf.Artist)
	addField(comment, "ARTISTSORT", tf.Artist)
	addField(comment, "ALBUMARTISTSORT", tf.Artist)
	addField(comment, "COMPOSERSORT", tf.Artist)
	addField(comment, "SORT_ARTIST", tf.Artist)
	addField(comment, "SORT_ALBUM_ARTIST", tf.Artist)
	addField(comment, "SORT_COMPOSER", tf.Artist)

	addField(comment, flacvorbis.FIELD_ALBUM, tf.Album)
	addField(comment, "ALBUMSORT", tf.Album)
	addField(comment, "SORT_ALBUM", tf.Album)

	addField(comment, flacvorbis.FIELD_TRACKNUMBER, strconv.Itoa(tf.Track))
	addField(comment, "TOTALTRACKS", strconv.Itoa(tf.TotalTracks))
	addField(comment, "DISCNUMBER", "1")
	addField(comment, "TOTALDISCS", "1")

	addField(comment, flacvorbis.FIELD_DATE, tf.Year)
	addField(comment, "YEAR", tf.Year)
	addField(comment, "GENRE", genre)

	if bpm > 0 {
		addField(comment, "BPM", formatBPM(bpm))
	}
	addField(comment, "COMPILATION", boolTag(tf.Compilation))

	return comment
}

// addField adds a field to vorbis comment only if value is not empty
func addField(comment *flacvorbis.MetaDataBlockVorbisComment, field, value string) {
	if value != "" {
		comment.Add(field, value)
	}
}

// addFlacCover embeds cover art as a front-cover picture block.
func addFlacCover(f *flac.File, cover []byte) error {
	if len(cover) == 0 {
		return nil
	}

	picture, err := flacpicture.NewFromImageData(
		flacpicture.PictureTypeFrontCover,
		"Cover",
		cover,
		detectImageMIME(cover),
	)
	if err != nil {
		return fmt.Errorf("failed to create picture metadata: %w", err)
	}

	pictureBlock := picture.Marshal()
	f.Meta = append(f.Meta, &pictureBlock)
	return nil
}
