package songcache

import "errors"

// Sentinel errors for the reader and scanner. Use errors.Is to test for
// them; scanner diagnostics wrap these with path and underlying-cause
// context via fmt.Errorf's %w verb.
var (
	// ErrVersionMismatch is returned by ReadCache when the cache header's
	// version does not equal Version.
	ErrVersionMismatch = errors.New("songcache: cache version mismatch")

	// ErrFormat is returned by ReadCache when the stream is structurally
	// malformed (truncated, an out-of-range table index, an oversized
	// string length prefix).
	ErrFormat = errors.New("songcache: malformed cache stream")

	// ErrInvalidSongDirectory marks a candidate folder that has a chart
	// file but no usable song metadata (no song.ini section, and no
	// chart-embedded [Song] fallback).
	ErrInvalidSongDirectory = errors.New("songcache: no usable song metadata")
)

// maxStringLength guards readString against a corrupt or hostile length
// prefix turning into a multi-gigabyte allocation.
const maxStringLength = 1 << 20
