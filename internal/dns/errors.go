package dns

import "errors"

var (
	// ErrEncoding is a sentinel error for values that cannot be represented
	// in DNS wire format. Wrap it with fmt.Errorf("context: %w", ErrEncoding)
	// to add context.
	ErrEncoding = errors.New("dns encoding error")
)
