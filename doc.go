// Copyright 2015, David Howden
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package songcache provides the cache codec and song-folder scanner for a
// rhythm-game song library: walking a directory of song folders, parsing
// song.ini / notes.chart / notes.mid, and reading and writing the compact
// binary cache file a downstream game client consumes.
package songcache
