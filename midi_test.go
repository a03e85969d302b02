package songcache

import (
	"encoding/binary"
	"testing"
)

// buildTestSMF assembles a minimal single-track, format-0 Standard MIDI
// File containing one track-name meta event and the given NoteOn/NoteOff
// pairs, for exercising parseMIDIChartBits without needing a fixture file
// on disk.
func buildTestSMF(t *testing.T, trackName string, keys ...uint8) []byte {
	t.Helper()

	var track []byte
	appendEvent := func(delta byte, event ...byte) {
		track = append(track, delta)
		track = append(track, event...)
	}

	nameBytes := []byte(trackName)
	appendEvent(0x00, append([]byte{0xFF, 0x03, byte(len(nameBytes))}, nameBytes...)...)

	for _, k := range keys {
		appendEvent(0x00, 0x90, k, 100)
		appendEvent(0x0A, 0x80, k, 0)
	}
	appendEvent(0x00, 0xFF, 0x2F, 0x00)

	header := []byte("MThd")
	header = append(header, 0, 0, 0, 6)
	header = append(header, 0, 0) // format 0
	header = append(header, 0, 1) // 1 track
	division := make([]byte, 2)
	binary.BigEndian.PutUint16(division, 480)
	header = append(header, division...)

	trackChunk := []byte("MTrk")
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(track)))
	trackChunk = append(trackChunk, length...)
	trackChunk = append(trackChunk, track...)

	return append(header, trackChunk...)
}

func TestParseMIDIChartBitsGuitar(t *testing.T) {
	raw := buildTestSMF(t, "PART GUITAR", 62, 96)

	e := NewEntry()
	if err := parseMIDIChartBits(raw, &e); err != nil {
		t.Fatalf("parseMIDIChartBits: %v", err)
	}

	easyBit := uint64(1) << uint(InstGuitar*4+DiffEasy)
	expertBit := uint64(1) << uint(InstGuitar*4+DiffExpert)
	if e.Charts&easyBit == 0 {
		t.Error("expected easy guitar bit set (key 62)")
	}
	if e.Charts&expertBit == 0 {
		t.Error("expected expert guitar bit set (key 96)")
	}
}

func TestParseMIDIChartBitsVocalsSetsLyrics(t *testing.T) {
	raw := buildTestSMF(t, "PART VOCALS", 62)

	e := NewEntry()
	if err := parseMIDIChartBits(raw, &e); err != nil {
		t.Fatalf("parseMIDIChartBits: %v", err)
	}
	if !e.Lyrics {
		t.Error("expected Lyrics = true for a PART VOCALS track")
	}
	if e.Charts != 0 {
		t.Errorf("expected no chart bits from a vocals track, got %064b", e.Charts)
	}
}

func TestParseMIDIChartBitsProDrumsHint(t *testing.T) {
	raw := buildTestSMF(t, "PART DRUMS", 98, 110)

	e := NewEntry()
	if err := parseMIDIChartBits(raw, &e); err != nil {
		t.Fatalf("parseMIDIChartBits: %v", err)
	}

	proBit := uint64(1) << uint(InstProDrums*4+DiffExpert)
	if e.Charts&proBit == 0 {
		t.Error("expected expert pro-drums bit set from key 110 hint")
	}
}

func TestParseMIDIChartBitsUnknownTrackIgnored(t *testing.T) {
	raw := buildTestSMF(t, "PART SOMETHING WEIRD", 62)

	e := NewEntry()
	if err := parseMIDIChartBits(raw, &e); err != nil {
		t.Fatalf("parseMIDIChartBits: %v", err)
	}
	if e.Charts != 0 {
		t.Errorf("expected no bits for an unrecognized track name, got %064b", e.Charts)
	}
}
