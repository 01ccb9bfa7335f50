package dns

import (
	"testing"
)

func TestHeaderMarshal(t *testing.T) {
	h := Header{
		ID:      0x1234,
		Flags:   RDFlag,
		QDCount: 1,
	}

	b := h.Marshal()

	if len(b) != HeaderSize {
		t.Fatalf("expected %d bytes, got %d", HeaderSize, len(b))
	}

	// Verify ID
	if b[0] != 0x12 || b[1] != 0x34 {
		t.Errorf("unexpected ID: %02x%02x", b[0], b[1])
	}

	// Verify Flags: only RD set
	if b[2] != 0x01 || b[3] != 0x00 {
		t.Errorf("unexpected Flags: %02x%02x", b[2], b[3])
	}

	// Verify counts
	if b[4] != 0 || b[5] != 1 {
		t.Errorf("unexpected QDCount: %d", int(b[4])<<8|int(b[5]))
	}
	if b[6] != 0 || b[7] != 0 {
		t.Errorf("unexpected ANCount: %d", int(b[6])<<8|int(b[7]))
	}
	if b[8] != 0 || b[9] != 0 {
		t.Errorf("unexpected NSCount: %d", int(b[8])<<8|int(b[9]))
	}
	if b[10] != 0 || b[11] != 0 {
		t.Errorf("unexpected ARCount: %d", int(b[10])<<8|int(b[11]))
	}
}

func TestHeaderMarshalIDRange(t *testing.T) {
	// The first two bytes must be the big-endian transaction id for any
	// 16-bit value.
	for _, id := range []uint16{0, 1, 0x00FF, 0x0100, 0x1234, 0x8000, 0xFFFF} {
		b := Header{ID: id}.Marshal()
		got := uint16(b[0])<<8 | uint16(b[1])
		if got != id {
			t.Errorf("id %#04x round-tripped as %#04x", id, got)
		}
	}
}

func TestHeaderFlagAccessors(t *testing.T) {
	h := Header{Flags: RDFlag}
	if !h.RecursionDesired() {
		t.Error("expected RD to be set")
	}
	if h.IsResponse() {
		t.Error("query header reported as response")
	}

	h.Flags |= QRFlag
	if !h.IsResponse() {
		t.Error("expected QR to be set")
	}
}
