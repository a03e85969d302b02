package songcache

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = map[string]bool{
	"mp4": true, "avi": true, "webm": true, "vp8": true, "ogv": true, "mpeg": true,
}

var backgroundImageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true,
}

var audioExtensions = map[string]bool{
	"ogg": true, "mp3": true, "wav": true, "opus": true,
}

var audioStems = map[string]bool{
	"guitar": true, "bass": true, "rhythm": true,
	"vocals": true, "vocals_1": true, "vocals_2": true,
	"drums": true, "drums_1": true, "drums_2": true, "drums_3": true, "drums_4": true,
	"keys": true, "song": true, "crowd": true,
}

// folderContents is the classification of one directory's immediate
// children, gathered before deciding whether the directory is a song
// candidate at all.
type folderContents struct {
	hasMid        bool
	hasChart      bool
	chartFileName string
	hasIni        bool

	videoBackground     bool
	videoBackgroundName string
	imageBackground     bool
	imageBackgroundName string
	albumArtName        string
	audioFiles          []string
}

func (fc folderContents) isCandidate() bool {
	return fc.hasMid || fc.hasChart || fc.hasIni
}

// classifyFolder inspects dir's immediate (non-directory) children.
// notes.mid always wins over notes.chart when both are present.
func classifyFolder(children []fs.DirEntry) folderContents {
	var fc folderContents
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		name := child.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))

		switch {
		case stem == "notes" && ext == "mid":
			fc.hasMid = true
			fc.chartFileName = name
		case stem == "notes" && ext == "chart":
			fc.hasChart = true
			if !fc.hasMid {
				fc.chartFileName = name
			}
		case stem == "song" && ext == "ini":
			fc.hasIni = true
		case stem == "video" && videoExtensions[ext]:
			fc.videoBackground = true
			fc.videoBackgroundName = name
		case stem == "background" && backgroundImageExtensions[ext]:
			fc.imageBackground = true
			fc.imageBackgroundName = name
		case stem == "album" && backgroundImageExtensions[ext]:
			fc.albumArtName = name
		case audioStems[stem] && audioExtensions[ext]:
			fc.audioFiles = append(fc.audioFiles, name)
		}
	}
	return fc
}

// Scan walks root for song folders, classifying, parsing, and deduplicating
// each one into an Entry. It never returns a fatal error for a bad
// individual folder; those surface as Diagnostics on rep instead. A nil rep
// logs to stderr.
func Scan(root string, profile Profile, rep *Reporter) ([]Entry, error) {
	if rep == nil {
		rep = NewReporter(nil)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("songcache: resolving scan root: %w", err)
	}

	var entries []Entry
	seen := make(map[[16]byte]bool)

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			rep.report(KindIO, path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		children, err := os.ReadDir(path)
		if err != nil {
			rep.report(KindIO, path, err)
			return fs.SkipDir
		}

		fc := classifyFolder(children)
		if !fc.isCandidate() {
			return nil
		}

		entry, ok, err := buildEntry(path, absRoot, fc, profile, seen, rep)
		if err != nil {
			rep.report(KindIO, path, err)
			return nil
		}
		if !ok {
			return nil
		}

		entries = append(entries, entry)
		rep.accepted(path)
		return nil
	})
	if walkErr != nil {
		return entries, fmt.Errorf("songcache: walking %s: %w", absRoot, walkErr)
	}

	return entries, nil
}

// buildEntry parses one candidate folder into an Entry. ok is false when
// the folder is rejected (invalid song directory, duplicate chart) rather
// than erroring; buildEntry reports such rejections on rep itself.
func buildEntry(dir, root string, fc folderContents, profile Profile, seen map[[16]byte]bool, rep *Reporter) (Entry, bool, error) {
	e := NewEntry()

	var data iniData
	iniOK := false
	if fc.hasIni {
		text, err := decodeText(filepath.Join(dir, "song.ini"))
		if err != nil {
			rep.report(KindIO, filepath.Join(dir, "song.ini"), err)
		} else {
			data, iniOK = parseSongIni(text)
		}
	}

	chartPath := filepath.Join(dir, fc.chartFileName)
	raw, err := os.ReadFile(chartPath)
	if err != nil {
		return Entry{}, false, err
	}

	sum := md5.Sum(raw)
	if seen[sum] {
		rep.report(KindDuplicate, dir, fmt.Errorf("chart checksum already seen"))
		return Entry{}, false, nil
	}

	var sections []chartSection
	if !fc.hasMid {
		text, derr := decodeTextBytes(raw)
		if derr != nil {
			rep.report(KindParse, chartPath, derr)
		} else {
			sections = parseChartSections(text)
		}
	}

	switch {
	case iniOK:
		applyIniData(&e, data)
	case !fc.hasMid:
		meta, ok := chartSongSection(sections)
		if !ok {
			rep.report(KindInvalid, dir, ErrInvalidSongDirectory)
			return Entry{}, false, nil
		}
		for i := 0; i < 6; i++ {
			e.Metadata[i] = meta[i]
		}
	default:
		rep.report(KindInvalid, dir, ErrInvalidSongDirectory)
		return Entry{}, false, nil
	}
	normalizeIntensities(&e)

	if fc.hasMid {
		if merr := parseMIDIChartBits(raw, &e); merr != nil {
			rep.report(KindParse, chartPath, merr)
		}
	} else {
		applyChartSections(sections, &e)
	}

	seen[sum] = true
	e.Checksum = sum
	e.ChartName = fc.chartFileName
	e.FolderPath = folderPathFor(dir, root, profile)
	e.VideoBackground = fc.videoBackground

	if profile == ProfileCloud {
		e.AudioFiles = append([]string(nil), fc.audioFiles...)
		e.AlbumArtName = fc.albumArtName
		e.ImageBackground = fc.imageBackground
		e.ImageBackgroundName = fc.imageBackgroundName
		e.VideoBackgroundName = fc.videoBackgroundName
	}

	derivePlaylist(&e, dir, root)
	applyMetadataDefaults(&e)

	return e, true, nil
}

// folderPathFor renders FolderPath per profile: an absolute OS path under
// local, or a forward-slash-normalized path relative to root under cloud.
func folderPathFor(dir, root string, profile Profile) string {
	if profile == ProfileLocal {
		return dir
	}
	rel := strings.TrimPrefix(dir, root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return "/" + filepath.ToSlash(rel)
}

// derivePlaylist fills TopLevelPlaylist, SubPlaylist and metadata[6] from
// song.ini when song.ini named a playlist explicitly, or otherwise from the
// folder's path relative to root: everything before the last path separator
// becomes metadata[6] as-is, the lower-cased first component of that becomes
// TopLevelPlaylist, and SubPlaylist is cleared.
func derivePlaylist(e *Entry, dir, root string) {
	if e.TopLevelPlaylist != "" {
		e.Metadata[MetaPlaylist] = e.TopLevelPlaylist
		if e.SubPlaylist != "" {
			e.Metadata[MetaPlaylist] += "\\" + e.SubPlaylist
		}
		return
	}

	rel := strings.TrimPrefix(dir, root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))

	playlist := ""
	if idx := strings.LastIndexByte(rel, filepath.Separator); idx >= 0 {
		playlist = rel[:idx]
	}
	e.Metadata[MetaPlaylist] = playlist

	top := playlist
	if idx := strings.IndexByte(top, filepath.Separator); idx >= 0 {
		top = top[:idx]
	}
	e.TopLevelPlaylist = strings.ToLower(top)
	e.SubPlaylist = ""
}
