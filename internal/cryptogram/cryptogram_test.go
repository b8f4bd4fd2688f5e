package cryptogram_test

import (
	"bytes"
	"testing"

	"seal/internal/cryptogram"
)

func TestNew_FieldViews(t *testing.T) {
	cg, err := cryptogram.New(33, 32, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cg.KeyLen() != 33 || cg.BodyLen() != 16 || cg.MacLen() != 32 {
		t.Fatalf("lengths = %d/%d/%d, want 33/16/32", cg.KeyLen(), cg.BodyLen(), cg.MacLen())
	}
	if len(cg.Bytes()) != 33+16+32 {
		t.Fatalf("wire length = %d, want %d", len(cg.Bytes()), 33+16+32)
	}

	// Writes through a field view land in the right wire region.
	cg.Key()[0] = 0x02
	cg.Body()[0] = 0xB0
	cg.Mac()[0] = 0xAC
	wire := cg.Bytes()
	if wire[0] != 0x02 || wire[33] != 0xB0 || wire[33+16] != 0xAC {
		t.Fatal("field views do not map onto the wire layout")
	}
}

func TestNew_RejectsBadSizes(t *testing.T) {
	for _, sizes := range [][3]int{{0, 32, 16}, {33, 0, 16}, {33, 32, 0}, {-1, 32, 16}} {
		if _, err := cryptogram.New(sizes[0], sizes[1], sizes[2]); err == nil {
			t.Errorf("New(%v) accepted a non-positive field size", sizes)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cg, err := cryptogram.New(33, 32, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range cg.Bytes() {
		cg.Bytes()[i] = byte(i)
	}

	parsed, err := cryptogram.Parse(cg.Bytes(), 33, 32)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !bytes.Equal(parsed.Key(), cg.Key()) || !bytes.Equal(parsed.Body(), cg.Body()) || !bytes.Equal(parsed.Mac(), cg.Mac()) {
		t.Fatal("parsed fields differ from the originals")
	}

	// Parse copies, so mutating the source must not alias.
	cg.Bytes()[0] ^= 0xFF
	if parsed.Key()[0] == cg.Key()[0] {
		t.Fatal("parsed cryptogram aliases the source buffer")
	}
}

func TestParse_RejectsShortInput(t *testing.T) {
	// 33 + 32 leaves no room for a body.
	if _, err := cryptogram.Parse(make([]byte, 65), 33, 32); err == nil {
		t.Fatal("expected error for a bodyless buffer")
	}
	if _, err := cryptogram.Parse(nil, 33, 32); err == nil {
		t.Fatal("expected error for an empty buffer")
	}
	if _, err := cryptogram.Parse(make([]byte, 81), 0, 32); err == nil {
		t.Fatal("expected error for a zero key length")
	}
}

func TestWipe_ZeroesBuffer(t *testing.T) {
	cg, err := cryptogram.New(4, 4, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range cg.Bytes() {
		cg.Bytes()[i] = 0xFF
	}
	cg.Wipe()
	for i, b := range cg.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
