package dns

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
//
// Each question specifies what the client is asking for:
//   - Name: The domain name being queried
//   - Type: The record type requested (A, AAAA, MX, etc.)
//   - Class: Usually ClassIN (Internet)
type Question struct {
	Name  string
	Type  RecordType
	Class RecordClass
}

// Marshal serializes the question to DNS wire format: the encoded name
// followed by the 2-byte big-endian type code and 2-byte big-endian class
// code.
func (q Question) Marshal() ([]byte, error) {
	name, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(name)+4)
	b = append(b, name...)
	buf := make([]byte, 4)
	binary.BigEndian.PutUint16(buf[0:2], uint16(q.Type))
	binary.BigEndian.PutUint16(buf[2:4], uint16(q.Class))
	b = append(b, buf...)
	return b, nil
}

// Limits from RFC 1035 Section 2.3.4.
const (
	maxLabelLen       = 63
	maxEncodedNameLen = 255
)

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1).
//
// DNS names are encoded as a sequence of labels, where each label is:
//   - 1 byte: length (0-63)
//   - N bytes: label characters
//
// The name is terminated by a zero-length label (single 0x00 byte).
//
// Example: "www.google.com" encodes as:
//
//	[3]www[6]google[3]com[0]
//	0x03 'w' 'w' 'w' 0x06 'g' 'o' 'o' 'g' 'l' 'e' 0x03 'c' 'o' 'm' 0x00
//
// Empty labels are skipped, so trailing dots and an empty or dots-only input
// are accepted; the latter encodes as the root name (a lone zero byte).
// A label longer than 63 bytes or an encoded name longer than 255 bytes
// fails with ErrEncoding: the length prefix is a single byte, so an
// oversized label would otherwise truncate or wrap on the wire.
//
// A future decoder inverts these same framing rules: read a length byte,
// then that many label bytes, until a zero length byte.
func EncodeName(domain string) ([]byte, error) {
	out := make([]byte, 0, len(domain)+2)
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			continue
		}
		if len(label) > maxLabelLen {
			return nil, fmt.Errorf("%w: DNS label too long (%d > %d): %q", ErrEncoding, len(label), maxLabelLen, label)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	out = append(out, 0) // Terminating zero-length label

	if len(out) > maxEncodedNameLen {
		return nil, fmt.Errorf("%w: encoded domain name too long (%d > %d)", ErrEncoding, len(out), maxEncodedNameLen)
	}
	return out, nil
}
