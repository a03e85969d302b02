package songcache

import "strings"

// chart.go hand-rolls the notes.chart brace-block grammar: no library in
// the dependency set models it, so this stays a small line-oriented parser
// in the same spirit as dhowden/tag's atom/frame walkers (flac.go,
// id3v2frames.go) reading a custom container format byte by byte.

type kv struct{ key, value string }

type chartSection struct {
	name string
	kvs  []kv
}

// parseChartSections splits notes.chart text into its [Section] { ... }
// blocks, preserving encounter order and lower-casing section names.
func parseChartSections(text string) []chartSection {
	var out []chartSection
	var cur *chartSection
	inBlock := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			name := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			out = append(out, chartSection{name: name})
			cur = &out[len(out)-1]
			inBlock = false
		case line == "{":
			inBlock = true
		case line == "}":
			inBlock = false
		default:
			if cur == nil || !inBlock {
				continue
			}
			eq := strings.Index(line, "=")
			if eq < 0 {
				continue
			}
			cur.kvs = append(cur.kvs, kv{
				key:   strings.TrimSpace(line[:eq]),
				value: strings.TrimSpace(line[eq+1:]),
			})
		}
	}
	return out
}

var chartInstrumentStems = map[string]int{
	"single":       InstGuitar,
	"doubleguitar": InstGuitarCoop,
	"doublebass":   InstBass,
	"doublerhythm": InstRhythm,
	"drums":        InstDrums,
	"keyboard":     InstKeys,
	"ghlguitar":    InstGHLGuitar,
	"ghlbass":      InstGHLBass,
	"band":         InstBand,
}

var chartDifficultyPrefixes = []struct {
	prefix string
	diff   int
}{
	{"easy", DiffEasy},
	{"medium", DiffMedium},
	{"hard", DiffHard},
	{"expert", DiffExpert},
}

// resolveChartSection maps a lower-cased section name like "expertsingle"
// to its instrument and difficulty, or ok=false for non-instrument sections
// (events, song, sync_track, ...).
func resolveChartSection(name string) (inst, diff int, ok bool) {
	for _, p := range chartDifficultyPrefixes {
		if !strings.HasPrefix(name, p.prefix) {
			continue
		}
		stem := strings.TrimPrefix(name, p.prefix)
		if inst, found := chartInstrumentStems[stem]; found {
			return inst, p.diff, true
		}
		return 0, 0, false
	}
	return 0, 0, false
}

var proDrumsHints = []string{"N 5", "N 32", "N 66", "N 67", "N 68"}

func hasProDrumsHint(value string) bool {
	for _, h := range proDrumsHints {
		if strings.HasPrefix(value, h) {
			return true
		}
	}
	return false
}

// applyChartSections folds a parsed notes.chart's instrument/difficulty
// sections and events-section lyric lines into e. e.ForceProDrums and
// e.ForceFiveLane must already be set from song.ini before calling this, so
// the pro-drums bit carries the same override semantics the MIDI parser
// applies.
func applyChartSections(sections []chartSection, e *Entry) {
	for _, sec := range sections {
		if sec.name == "events" {
			for _, p := range sec.kvs {
				if strings.HasPrefix(p.value, "E \"lyric") || strings.HasPrefix(p.value, "E lyric") {
					e.Lyrics = true
				}
			}
			continue
		}

		inst, diff, ok := resolveChartSection(sec.name)
		if !ok {
			continue
		}

		notesFlag := false
		proHint := false
		for _, p := range sec.kvs {
			if strings.HasPrefix(p.value, "N") {
				notesFlag = true
			}
			if inst == InstDrums && hasProDrumsHint(p.value) {
				proHint = true
			}
		}
		if notesFlag {
			applyChartBits(e, inst, diff, proHint)
		}
	}
}

// chartSongSection extracts metadata[0..5] from a notes.chart's own [Song]
// block, for use when song.ini is missing or has no [song] section. ok is
// false when the chart has no [Song] section at all.
func chartSongSection(sections []chartSection) (meta [6]string, ok bool) {
	for _, sec := range sections {
		if sec.name != "song" {
			continue
		}
		ok = true
		for _, p := range sec.kvs {
			value := strings.TrimSpace(strings.Trim(p.value, `"`))
			switch strings.ToLower(p.key) {
			case "name":
				if value == "" || value == "TEMPO TRACK" || value == "midi_export" {
					continue
				}
				meta[MetaName] = value
			case "artist":
				meta[MetaArtist] = value
			case "album":
				meta[MetaAlbum] = value
			case "genre":
				meta[MetaGenre] = value
			case "year":
				meta[MetaYear] = strings.ReplaceAll(value, ", ", "")
			case "charter", "frets":
				meta[MetaCharter] = value
			}
		}
		return meta, ok
	}
	return meta, false
}
