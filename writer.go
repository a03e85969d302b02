package songcache

import (
	"crypto/md5"
	"io"
)

// intensityDiskOrder is the exact on-disk slot order for Entry.Intensities:
// instrument index 8 (band) first, then 0, 2, 1, 6, 9, 7, 4, 5.
var intensityDiskOrder = [9]int{8, 0, 2, 1, 6, 9, 7, 4, 5}

// WriteCache serializes entries as a cache file: a version header, a
// content checksum over every entry's chart checksum, seven interned
// metadata tables (name/artist/album/genre/year/charter/playlist, in
// first-seen order), and the entry count followed by each entry's fixed
// binary record.
func WriteCache(w io.Writer, entries []Entry, profile Profile) error {
	if err := writeInt32(w, Version); err != nil {
		return err
	}

	var checksumInput []byte
	var tables [7][]string
	tableIndex := [7]map[string]int32{}
	for i := range tableIndex {
		tableIndex[i] = make(map[string]int32)
	}

	indices := make([][7]int32, len(entries))
	for i, e := range entries {
		checksumInput = append(checksumInput, e.Checksum[:]...)
		for j := 0; j < 7; j++ {
			v := e.Metadata[j]
			idx, ok := tableIndex[j][v]
			if !ok {
				idx = int32(len(tables[j]))
				tables[j] = append(tables[j], v)
				tableIndex[j][v] = idx
			}
			indices[i][j] = idx
		}
	}

	contentSum := md5.Sum(checksumInput)
	if _, err := w.Write(contentSum[:]); err != nil {
		return err
	}

	for j := 0; j < 7; j++ {
		if err := writeUint8(w, uint8(j)); err != nil {
			return err
		}
		if err := writeInt32(w, int32(len(tables[j]))); err != nil {
			return err
		}
		for _, s := range tables[j] {
			if err := writeString(w, s); err != nil {
				return err
			}
		}
	}

	if err := writeInt32(w, int32(len(entries))); err != nil {
		return err
	}

	for i, e := range entries {
		if err := writeEntry(w, e, indices[i], profile); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, e Entry, idx [7]int32, profile Profile) error {
	if err := writeString(w, e.FolderPath); err != nil {
		return err
	}
	// Two reserved i64 slots, always zero in this format version.
	if err := writeInt64(w, 0); err != nil {
		return err
	}
	if err := writeInt64(w, 0); err != nil {
		return err
	}
	if err := writeString(w, e.ChartName); err != nil {
		return err
	}
	if err := writeBool(w, e.IsEnc); err != nil {
		return err
	}

	for j := 0; j < 7; j++ {
		if err := writeInt32(w, idx[j]); err != nil {
			return err
		}
	}

	if err := writeInt64(w, int64(e.Charts)); err != nil {
		return err
	}
	if err := writeBool(w, e.Lyrics); err != nil {
		return err
	}

	for _, slot := range intensityDiskOrder {
		if err := writeInt8(w, e.Intensities[slot]); err != nil {
			return err
		}
	}

	if err := writeInt32(w, e.PreviewStart); err != nil {
		return err
	}
	if err := writeString(w, e.IconName); err != nil {
		return err
	}
	if err := writeInt16(w, e.AlbumTrack); err != nil {
		return err
	}
	if err := writeInt16(w, e.PlaylistTrack); err != nil {
		return err
	}
	if err := writeBool(w, e.Modchart); err != nil {
		return err
	}
	if err := writeBool(w, e.VideoBackground); err != nil {
		return err
	}
	if err := writeBool(w, e.ForceProDrums); err != nil {
		return err
	}
	if err := writeBool(w, e.ForceFiveLane); err != nil {
		return err
	}
	if err := writeInt32(w, e.SongLength); err != nil {
		return err
	}
	if err := writeInt64(w, e.DateAdded); err != nil {
		return err
	}
	if err := writeString(w, e.TopLevelPlaylist); err != nil {
		return err
	}
	if err := writeString(w, e.SubPlaylist); err != nil {
		return err
	}
	if _, err := w.Write(e.Checksum[:]); err != nil {
		return err
	}

	if profile == ProfileCloud {
		if err := writeInt8(w, int8(len(e.AudioFiles))); err != nil {
			return err
		}
		for _, a := range e.AudioFiles {
			if err := writeString(w, a); err != nil {
				return err
			}
		}
		if err := writeString(w, e.AlbumArtName); err != nil {
			return err
		}
		if err := writeBool(w, e.ImageBackground); err != nil {
			return err
		}
		if err := writeString(w, e.ImageBackgroundName); err != nil {
			return err
		}
		if err := writeString(w, e.VideoBackgroundName); err != nil {
			return err
		}
	}

	return nil
}
