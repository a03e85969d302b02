package songcache

import (
	"fmt"
	"io"
)

// CacheHeader is the version and content checksum read from a cache file's
// header, retained for callers (cmd/inspect) that want to report or
// re-verify it without re-reading every entry.
type CacheHeader struct {
	Version  int32
	Checksum [16]byte
}

// ReadCache reads a cache file written by WriteCache. It fails fast with
// ErrVersionMismatch on a version it doesn't recognize, and with ErrFormat
// on a structurally truncated or corrupt stream.
func ReadCache(r io.Reader, profile Profile) ([]Entry, error) {
	_, entries, err := ReadCacheWithHeader(r, profile)
	return entries, err
}

// ReadCacheWithHeader is ReadCache but also returns the parsed header.
func ReadCacheWithHeader(r io.Reader, profile Profile) (CacheHeader, []Entry, error) {
	var header CacheHeader

	version, err := readInt32(r)
	if err != nil {
		return header, nil, fmt.Errorf("%w: reading version: %v", ErrFormat, err)
	}
	header.Version = version
	if version != Version {
		return header, nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, version, Version)
	}

	if _, err := io.ReadFull(r, header.Checksum[:]); err != nil {
		return header, nil, fmt.Errorf("%w: reading header checksum: %v", ErrFormat, err)
	}

	var tables [7][]string
	for i := 0; i < 7; i++ {
		slot, err := readUint8(r)
		if err != nil {
			return header, nil, fmt.Errorf("%w: reading table slot: %v", ErrFormat, err)
		}
		if int(slot) >= 7 {
			return header, nil, fmt.Errorf("%w: table slot %d out of range", ErrFormat, slot)
		}
		count, err := readInt32(r)
		if err != nil {
			return header, nil, fmt.Errorf("%w: reading table count: %v", ErrFormat, err)
		}
		if count < 0 {
			return header, nil, fmt.Errorf("%w: negative table count", ErrFormat)
		}
		values := make([]string, 0, count)
		for j := int32(0); j < count; j++ {
			s, err := readString(r)
			if err != nil {
				return header, nil, fmt.Errorf("%w: reading table string: %v", ErrFormat, err)
			}
			values = append(values, s)
		}
		tables[slot] = values
	}

	n, err := readInt32(r)
	if err != nil {
		return header, nil, fmt.Errorf("%w: reading entry count: %v", ErrFormat, err)
	}
	if n < 0 {
		return header, nil, fmt.Errorf("%w: negative entry count", ErrFormat)
	}

	entries := make([]Entry, 0, n)
	for i := int32(0); i < n; i++ {
		e, err := readEntry(r, tables, profile)
		if err != nil {
			return header, nil, fmt.Errorf("%w: reading entry %d: %v", ErrFormat, i, err)
		}
		entries = append(entries, e)
	}

	return header, entries, nil
}

func readEntry(r io.Reader, tables [7][]string, profile Profile) (Entry, error) {
	var e Entry
	var err error

	if e.FolderPath, err = readString(r); err != nil {
		return e, err
	}
	// Two reserved i64 slots, unused in this format version.
	if _, err = readInt64(r); err != nil {
		return e, err
	}
	if _, err = readInt64(r); err != nil {
		return e, err
	}
	if e.ChartName, err = readString(r); err != nil {
		return e, err
	}
	if e.IsEnc, err = readBool(r); err != nil {
		return e, err
	}

	for j := 0; j < 7; j++ {
		idx, err := readInt32(r)
		if err != nil {
			return e, err
		}
		if idx < 0 || int(idx) >= len(tables[j]) {
			return e, fmt.Errorf("metadata index %d out of range for slot %d", idx, j)
		}
		e.Metadata[j] = tables[j][idx]
	}

	charts, err := readInt64(r)
	if err != nil {
		return e, err
	}
	e.Charts = uint64(charts)

	if e.Lyrics, err = readBool(r); err != nil {
		return e, err
	}

	for _, slot := range intensityDiskOrder {
		v, err := readInt8(r)
		if err != nil {
			return e, err
		}
		e.Intensities[slot] = v
	}

	if e.PreviewStart, err = readInt32(r); err != nil {
		return e, err
	}
	if e.IconName, err = readString(r); err != nil {
		return e, err
	}
	if e.AlbumTrack, err = readInt16(r); err != nil {
		return e, err
	}
	if e.PlaylistTrack, err = readInt16(r); err != nil {
		return e, err
	}
	if e.Modchart, err = readBool(r); err != nil {
		return e, err
	}
	if e.VideoBackground, err = readBool(r); err != nil {
		return e, err
	}
	if e.ForceProDrums, err = readBool(r); err != nil {
		return e, err
	}
	if e.ForceFiveLane, err = readBool(r); err != nil {
		return e, err
	}
	if e.SongLength, err = readInt32(r); err != nil {
		return e, err
	}
	if e.DateAdded, err = readInt64(r); err != nil {
		return e, err
	}
	if e.TopLevelPlaylist, err = readString(r); err != nil {
		return e, err
	}
	if e.SubPlaylist, err = readString(r); err != nil {
		return e, err
	}

	checksum, err := readBytesN(r, 16)
	if err != nil {
		return e, err
	}
	copy(e.Checksum[:], checksum)

	if profile == ProfileCloud {
		count, err := readInt8(r)
		if err != nil {
			return e, err
		}
		if count < 0 {
			return e, fmt.Errorf("negative audio file count")
		}
		e.AudioFiles = make([]string, 0, count)
		for i := int8(0); i < count; i++ {
			s, err := readString(r)
			if err != nil {
				return e, err
			}
			e.AudioFiles = append(e.AudioFiles, s)
		}
		if e.AlbumArtName, err = readString(r); err != nil {
			return e, err
		}
		if e.ImageBackground, err = readBool(r); err != nil {
			return e, err
		}
		if e.ImageBackgroundName, err = readString(r); err != nil {
			return e, err
		}
		if e.VideoBackgroundName, err = readString(r); err != nil {
			return e, err
		}
	}

	return e, nil
}
