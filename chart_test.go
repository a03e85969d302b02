package songcache

import "testing"

const sampleChart = `[Song]
{
  Name = "My Chart Song"
  Artist = "Chart Artist"
  Year = ", 2015"
}
[Events]
{
  1000 = E "lyric Hel-"
}
[ExpertSingle]
{
  768 = N 0 0
  768 = N 1 0
}
[ExpertDrums]
{
  768 = N 0 0
  800 = N 32 0
}
`

func TestParseChartSectionsAndBits(t *testing.T) {
	sections := parseChartSections(sampleChart)

	e := NewEntry()
	applyChartSections(sections, &e)

	guitarBit := uint64(1) << uint(InstGuitar*4+DiffExpert)
	if e.Charts&guitarBit == 0 {
		t.Error("expected expert guitar bit set")
	}
	drumsBit := uint64(1) << uint(InstDrums*4+DiffExpert)
	if e.Charts&drumsBit == 0 {
		t.Error("expected expert drums bit set")
	}
	proBit := uint64(1) << uint(InstProDrums*4+DiffExpert)
	if e.Charts&proBit == 0 {
		t.Error("expected expert pro-drums bit set from N 32 hint")
	}
	if !e.Lyrics {
		t.Error("expected lyrics detected from events section")
	}
}

func TestChartSongSectionFallback(t *testing.T) {
	sections := parseChartSections(sampleChart)
	meta, ok := chartSongSection(sections)
	if !ok {
		t.Fatal("expected a [Song] section")
	}
	if meta[MetaName] != "My Chart Song" {
		t.Errorf("name = %q", meta[MetaName])
	}
	if meta[MetaYear] != "2015" {
		t.Errorf("year = %q, want comma-space stripped", meta[MetaYear])
	}
}

func TestChartSongSectionMissing(t *testing.T) {
	sections := parseChartSections("[ExpertSingle]\n{\n768 = N 0 0\n}\n")
	_, ok := chartSongSection(sections)
	if ok {
		t.Fatal("expected ok = false with no [Song] section")
	}
}

func TestResolveChartSection(t *testing.T) {
	cases := []struct {
		name     string
		wantInst int
		wantDiff int
		wantOK   bool
	}{
		{"expertsingle", InstGuitar, DiffExpert, true},
		{"harddoublebass", InstBass, DiffHard, true},
		{"mediumdrums", InstDrums, DiffMedium, true},
		{"events", 0, 0, false},
		{"song", 0, 0, false},
	}
	for _, c := range cases {
		inst, diff, ok := resolveChartSection(c.name)
		if ok != c.wantOK {
			t.Errorf("resolveChartSection(%q) ok = %v, want %v", c.name, ok, c.wantOK)
			continue
		}
		if ok && (inst != c.wantInst || diff != c.wantDiff) {
			t.Errorf("resolveChartSection(%q) = (%d,%d), want (%d,%d)", c.name, inst, diff, c.wantInst, c.wantDiff)
		}
	}
}
