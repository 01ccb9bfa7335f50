// Package dns encodes DNS query messages into RFC 1035 wire format.
package dns

// DNS header flags and masks (RFC 1035 Section 4.1.1)
//
// The DNS header contains a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Bit positions (from MSB):
//   - Bit 15 (0x8000): QR - Query (0) or Response (1)
//   - Bits 14-11 (0x7800): OPCODE - Operation type (0=Query, 1=IQuery, 2=Status)
//   - Bit 10 (0x0400): AA - Authoritative Answer
//   - Bit 9 (0x0200): TC - Truncation (message was truncated)
//   - Bit 8 (0x0100): RD - Recursion Desired
//   - Bit 7 (0x0080): RA - Recursion Available
//   - Bits 6-4 (0x0070): Z - Reserved (must be zero)
//   - Bits 3-0 (0x000F): RCODE - Response code
//
// Queries built by this package set RD and nothing else.
const (
	QRFlag     uint16 = 0x8000 // Query/Response: 1 = response, 0 = query
	OpcodeMask uint16 = 0x7800 // Bits 14-11: operation type (use >> 11 to extract)
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	TCFlag     uint16 = 0x0200 // Truncation: message was truncated
	RDFlag     uint16 = 0x0100 // Recursion Desired
	RAFlag     uint16 = 0x0080 // Recursion Available
	RCodeMask  uint16 = 0x000F // Bits 3-0: response code
)

// RecordType represents DNS resource record types (RFC 1035 Section 3.2.2,
// RFC 3596). Only TypeA is emitted by this client; the rest are modeled so
// extending the query type is a value change, not a format change.
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeMD    RecordType = 3  // Mail destination (obsolete)
	TypeMF    RecordType = 4  // Mail forwarder (obsolete)
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeSOA   RecordType = 6  // Start of Authority
	TypeMB    RecordType = 7  // Mailbox domain name (experimental)
	TypeMG    RecordType = 8  // Mail group member (experimental)
	TypeMR    RecordType = 9  // Mail rename domain (experimental)
	TypeNULL  RecordType = 10 // Null record (experimental)
	TypeWKS   RecordType = 11 // Well-known service description
	TypePTR   RecordType = 12 // Domain name pointer (reverse DNS)
	TypeHINFO RecordType = 13 // Host information
	TypeMINFO RecordType = 14 // Mailbox information
	TypeMX    RecordType = 15 // Mail exchange
	TypeTXT   RecordType = 16 // Text strings
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordClass represents DNS resource record classes (RFC 1035 Section 3.2.4).
// Everything outside ClassIN is a museum piece, but the codes are part of the
// wire contract.
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet class
	ClassCS RecordClass = 2 // CSNET (obsolete)
	ClassCH RecordClass = 3 // Chaos
	ClassHS RecordClass = 4 // Hesiod
)
