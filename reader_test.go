package songcache

import (
	"bytes"
	"testing"
)

func TestReadCacheRejectsBadTableIndex(t *testing.T) {
	var buf bytes.Buffer
	writeInt32(&buf, Version)
	buf.Write(make([]byte, 16)) // header checksum placeholder

	for j := 0; j < 7; j++ {
		writeUint8(&buf, uint8(j))
		writeInt32(&buf, 1)
		writeString(&buf, "only value")
	}

	writeInt32(&buf, 1) // one entry
	writeString(&buf, "/folder")
	writeInt64(&buf, 0)
	writeInt64(&buf, 0)
	writeString(&buf, "notes.chart")
	writeBool(&buf, false)
	for j := 0; j < 7; j++ {
		writeInt32(&buf, 99) // out of range index
	}

	if _, err := ReadCache(&buf, ProfileLocal); err == nil {
		t.Fatal("expected an error for an out-of-range metadata table index")
	}
}

func TestReadCacheEmptyCache(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCache(&buf, nil, ProfileLocal); err != nil {
		t.Fatal(err)
	}
	entries, err := ReadCache(&buf, ProfileLocal)
	if err != nil {
		t.Fatalf("ReadCache: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
