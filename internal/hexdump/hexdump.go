// Package hexdump renders byte buffers for terminal display.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const bytesPerRow = 16

// Dump returns a hex rendering of data: one row per 16 bytes, each row
// prefixed with a 4-hex-digit offset and split into two 8-byte groups.
//
//	0000  12 34 01 00 00 01 00 00  00 00 00 00 03 77 77 77
//	0010  06 67 6f 6f 67 6c 65 03  63 6f 6d 00 00 01 00 01
//
// Any byte buffer is accepted; there is nothing DNS-specific here.
func Dump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += bytesPerRow {
		row := data[off:min(off+bytesPerRow, len(data))]
		fmt.Fprintf(&b, "%04x  ", off)
		for i, x := range row {
			fmt.Fprintf(&b, "%02x ", x)
			if i%8 == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Fprint writes the rendering of data to w.
func Fprint(w io.Writer, data []byte) (int, error) {
	return io.WriteString(w, Dump(data))
}
