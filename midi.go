package songcache

import (
	"bytes"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

// midiTrackNameToInstrument maps a track-name meta event's text (lower
// cased) to the instrument it charts. Tracks whose name isn't recognized
// here, and aren't a vocals track ("PART VOCALS", "HARM1".."HARM3"),
// contribute nothing.
var midiTrackNameToInstrument = map[string]int{
	"part guitar":      InstGuitar,
	"t1 gems":          InstGuitar,
	"part bass":        InstBass,
	"part rhythm":      InstRhythm,
	"part guitar coop": InstGuitarCoop,
	"part guitar ghl":  InstGHLGuitar,
	"part bass ghl":    InstGHLBass,
	"part drums":       InstDrums,
	"part drum":        InstDrums,
	"part drums_real":  InstDrums,
	"part keys":        InstKeys,
}

// parseMIDIChartBits reads a Standard MIDI File and folds every track's
// instrument, difficulty presence, and pro-drums hint into e. e.Lyrics is
// set when a PART VOCALS track is found; e.ForceProDrums/ForceFiveLane must
// already reflect song.ini before calling this.
func parseMIDIChartBits(raw []byte, e *Entry) error {
	s, err := smf.ReadFrom(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	for _, track := range s.Tracks {
		inst := -1
		named := false
		abandon := false
		var diffSeen [4]bool
		proHint := false

		for _, ev := range track {
			msg := ev.Message

			if !named {
				var name string
				if msg.GetMetaTrackName(&name) {
					named = true
					switch strings.ToLower(strings.TrimSpace(name)) {
					case "part vocals", "harm1", "harm2", "harm3":
						e.Lyrics = true
						abandon = true
					default:
						if i, ok := midiTrackNameToInstrument[strings.ToLower(strings.TrimSpace(name))]; ok {
							inst = i
						} else {
							abandon = true
						}
					}
				}
			}

			if abandon {
				continue
			}

			var channel, key, velocity uint8
			if msg.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				switch {
				case key >= 58 && key <= 66:
					diffSeen[DiffEasy] = true
				case key >= 70 && key <= 78:
					diffSeen[DiffMedium] = true
				case key >= 82 && key <= 90:
					diffSeen[DiffHard] = true
				case key >= 94 && key <= 102:
					diffSeen[DiffExpert] = true
				}
				if (key >= 110 && key <= 112) || key == 101 {
					proHint = true
				}
			}
		}

		if abandon || inst < 0 {
			continue
		}
		for d, seen := range diffSeen {
			if seen {
				applyChartBits(e, inst, d, proHint)
			}
		}
	}

	return nil
}
