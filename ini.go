package songcache

import (
	"strconv"
	"strings"

	ini "gopkg.in/ini.v1"
)

// iniData holds everything parseSongIni pulls out of a [song] section,
// already coerced to the Entry field types it will be copied into. Numeric
// and boolean coercion is done by hand rather than via ini.v1's Must*
// helpers so that per-key fallback defaults match exactly what the cache
// format expects.
type iniData struct {
	metadata [6]string

	intensities [10]int8

	previewStart  int32
	songLength    int32
	albumTrack    int16
	playlistTrack int16

	modchart      bool
	forceProDrums bool
	forceFiveLane bool

	iconName         string
	topLevelPlaylist string
	subPlaylist      string
}

var songIniLoadOptions = ini.LoadOptions{
	Loose:                   true,
	Insensitive:             true,
	SkipUnrecognizableLines: true,
	AllowNonUniqueSections:  true,
}

// parseSongIni parses a song.ini file's text. ok is false when the file has
// no [song] section at all, which the scanner treats as a candidate for the
// chart-embedded metadata fallback.
func parseSongIni(text string) (d iniData, ok bool) {
	cfg, err := ini.LoadSources(songIniLoadOptions, []byte(text))
	if err != nil {
		return iniData{}, false
	}
	if !cfg.HasSection("song") {
		return iniData{}, false
	}
	sec := cfg.Section("song")

	for i := range d.intensities {
		d.intensities[i] = -1
	}

	d.metadata[MetaName] = strings.TrimSpace(sec.Key("name").String())
	d.metadata[MetaArtist] = strings.TrimSpace(sec.Key("artist").String())
	d.metadata[MetaAlbum] = strings.TrimSpace(sec.Key("album").String())
	d.metadata[MetaGenre] = strings.TrimSpace(sec.Key("genre").String())
	d.metadata[MetaYear] = strings.TrimSpace(sec.Key("year").String())
	if sec.HasKey("charter") {
		d.metadata[MetaCharter] = strings.TrimSpace(sec.Key("charter").String())
	} else {
		d.metadata[MetaCharter] = strings.TrimSpace(sec.Key("frets").String())
	}

	d.intensities[InstBand] = iniInt8(sec, "diff_band", -1)
	d.intensities[InstGuitar] = iniInt8(sec, "diff_guitar", -1)
	d.intensities[InstRhythm] = iniInt8(sec, "diff_rhythm", -1)
	d.intensities[InstGuitarCoop] = 0
	d.intensities[InstBass] = iniInt8(sec, "diff_bass", -1)
	d.intensities[InstDrums] = iniInt8(sec, "diff_drums", -1)
	d.intensities[InstKeys] = iniInt8(sec, "diff_keys", -1)
	d.intensities[InstGHLGuitar] = iniInt8(sec, "diff_guitarghl", -1)
	d.intensities[InstGHLBass] = iniInt8(sec, "diff_bassghl", -1)

	d.intensities[InstProDrums] = iniInt8(sec, "diff_drums_real", -1)
	if d.intensities[InstProDrums] == -1 {
		d.intensities[InstProDrums] = d.intensities[InstDrums]
	}

	d.previewStart = iniInt32(sec, "preview_start_time", -1)
	d.songLength = iniInt32(sec, "song_length", 0)

	if sec.HasKey("album_track") {
		d.albumTrack = int16(iniInt32(sec, "album_track", 16000))
	} else {
		d.albumTrack = int16(iniInt32(sec, "track", 16000))
	}
	d.playlistTrack = int16(iniInt32(sec, "playlist_track", 16000))

	d.modchart = iniBool(sec, "modchart", false)
	d.forceProDrums = iniBool(sec, "pro_drums", false)
	d.forceFiveLane = iniBool(sec, "five_lane_drums", false)

	d.iconName = strings.ToLower(strings.TrimSpace(sec.Key("icon").String()))
	d.topLevelPlaylist = strings.ToLower(strings.TrimSpace(sec.Key("playlist").String()))
	d.subPlaylist = strings.ToLower(strings.TrimSpace(sec.Key("sub_playlist").String()))

	return d, true
}

func iniInt8(sec *ini.Section, key string, def int8) int8 {
	v, err := strconv.ParseInt(strings.TrimSpace(sec.Key(key).String()), 10, 8)
	if err != nil {
		return def
	}
	return int8(v)
}

func iniInt32(sec *ini.Section, key string, def int32) int32 {
	v, err := strconv.ParseInt(strings.TrimSpace(sec.Key(key).String()), 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

func iniBool(sec *ini.Section, key string, def bool) bool {
	v, ok := parseLooseBool(sec.Key(key).String())
	if !ok {
		return def
	}
	return v
}

func parseLooseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "t", "y", "1", "on":
		return true, true
	case "false", "no", "f", "n", "0", "off":
		return false, true
	default:
		return false, false
	}
}

// applyIniData copies a parsed song.ini's fields onto an Entry under
// construction.
func applyIniData(e *Entry, d iniData) {
	for i := 0; i < 6; i++ {
		e.Metadata[i] = d.metadata[i]
	}
	e.Intensities = d.intensities
	e.PreviewStart = d.previewStart
	e.SongLength = d.songLength
	e.AlbumTrack = d.albumTrack
	e.PlaylistTrack = d.playlistTrack
	e.Modchart = d.modchart
	e.ForceProDrums = d.forceProDrums
	e.ForceFiveLane = d.forceFiveLane
	e.IconName = d.iconName
	e.TopLevelPlaylist = d.topLevelPlaylist
	e.SubPlaylist = d.subPlaylist
}
