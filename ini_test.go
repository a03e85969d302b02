package songcache

import "testing"

const sampleIni = `[song]
name = My Song
artist = My Artist
album = My Album
genre = Rock
year = 2012
charter = Some Charter
diff_guitar = 3
diff_band = 2
pro_drums = True
playlist_track = 5
`

func TestParseSongIniBasics(t *testing.T) {
	d, ok := parseSongIni(sampleIni)
	if !ok {
		t.Fatal("expected ok = true")
	}
	if d.metadata[MetaName] != "My Song" {
		t.Errorf("name = %q", d.metadata[MetaName])
	}
	if d.metadata[MetaCharter] != "Some Charter" {
		t.Errorf("charter = %q", d.metadata[MetaCharter])
	}
	if d.intensities[InstGuitar] != 3 {
		t.Errorf("diff_guitar = %d", d.intensities[InstGuitar])
	}
	if !d.forceProDrums {
		t.Error("expected pro_drums = true")
	}
	if d.playlistTrack != 5 {
		t.Errorf("playlist_track = %d", d.playlistTrack)
	}
	if d.albumTrack != 16000 {
		t.Errorf("album_track default = %d, want 16000", d.albumTrack)
	}
}

func TestParseSongIniNoSection(t *testing.T) {
	_, ok := parseSongIni("not an ini file at all")
	if ok {
		t.Fatal("expected ok = false for a file with no [song] section")
	}
}

func TestParseSongIniFretsFallback(t *testing.T) {
	d, ok := parseSongIni("[song]\nfrets = Old Style Charter\n")
	if !ok {
		t.Fatal("expected ok = true")
	}
	if d.metadata[MetaCharter] != "Old Style Charter" {
		t.Errorf("charter via frets = %q", d.metadata[MetaCharter])
	}
}

func TestParseSongIniProDrumsRealFallback(t *testing.T) {
	d, ok := parseSongIni("[song]\ndiff_drums = 4\n")
	if !ok {
		t.Fatal("expected ok = true")
	}
	if d.intensities[InstProDrums] != 4 {
		t.Errorf("diff_drums_real fallback = %d, want 4 (inherited from diff_drums)", d.intensities[InstProDrums])
	}
}

func TestParseLooseBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "Yes": true, "T": true, "1": true, "on": true,
		"false": false, "No": false, "f": false, "0": false, "off": false,
	}
	for s, want := range cases {
		got, ok := parseLooseBool(s)
		if !ok {
			t.Errorf("parseLooseBool(%q): ok = false", s)
			continue
		}
		if got != want {
			t.Errorf("parseLooseBool(%q) = %v, want %v", s, got, want)
		}
	}
	if _, ok := parseLooseBool("maybe"); ok {
		t.Error("expected ok = false for an unrecognized value")
	}
}
