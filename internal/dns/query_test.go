package dns

import (
	"strings"
	"testing"

	miekg "github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	b, err := BuildQuery("example.com", 0x1234)
	require.NoError(t, err)

	exp := []byte{
		0x12, 0x34, // ID
		0x01, 0x00, // Flags: RD only
		0x00, 0x01, // QDCount
		0x00, 0x00, // ANCount
		0x00, 0x00, // NSCount
		0x00, 0x00, // ARCount
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01, // Type A
		0x00, 0x01, // Class IN
	}
	assert.Equal(t, exp, b)
}

func TestBuildQueryLength(t *testing.T) {
	cases := []string{
		"example.com",
		"www.google.com",
		"a.b.c.d.e",
		"localhost",
		"",
	}
	for _, name := range cases {
		b, err := BuildQuery(name, 1)
		require.NoError(t, err, "name %q", name)

		encodedName := 1 // terminating zero byte
		for _, label := range strings.Split(name, ".") {
			if label != "" {
				encodedName += 1 + len(label)
			}
		}
		assert.Len(t, b, HeaderSize+encodedName+4, "name %q", name)
	}
}

func TestBuildQueryFlagsConstant(t *testing.T) {
	// Flags are RD-only for every query, regardless of name.
	for _, name := range []string{"example.com", "www.google.com", ""} {
		b, err := BuildQuery(name, 0xFFFF)
		require.NoError(t, err)
		assert.Equal(t, byte(0x01), b[2], "name %q", name)
		assert.Equal(t, byte(0x00), b[3], "name %q", name)
	}
}

func TestBuildQueryRootName(t *testing.T) {
	b, err := BuildQuery("", 7)
	require.NoError(t, err)
	// Header, lone zero byte for the root name, type, class.
	assert.Len(t, b, HeaderSize+1+4)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00, 0x01}, b[HeaderSize:])
}

func TestBuildQueryOverlongLabel(t *testing.T) {
	_, err := BuildQuery(strings.Repeat("a", 64)+".com", 1)
	require.ErrorIs(t, err, ErrEncoding)
}

// TestBuildQueryInterop unpacks a built query with miekg/dns and checks that
// an independent implementation reads back exactly what we meant to say.
func TestBuildQueryInterop(t *testing.T) {
	b, err := BuildQuery("www.example.com", 0xBEEF)
	require.NoError(t, err)

	msg := new(miekg.Msg)
	require.NoError(t, msg.Unpack(b))

	assert.Equal(t, uint16(0xBEEF), msg.Id)
	assert.False(t, msg.Response)
	assert.True(t, msg.RecursionDesired)
	assert.False(t, msg.AuthenticatedData)
	assert.False(t, msg.CheckingDisabled)
	assert.Zero(t, msg.Opcode)
	assert.Zero(t, msg.Rcode)

	require.Len(t, msg.Question, 1)
	assert.Equal(t, "www.example.com.", msg.Question[0].Name)
	assert.Equal(t, miekg.TypeA, msg.Question[0].Qtype)
	assert.Equal(t, uint16(miekg.ClassINET), msg.Question[0].Qclass)
	assert.Empty(t, msg.Answer)
	assert.Empty(t, msg.Ns)
	assert.Empty(t, msg.Extra)
}
