package dns

// BuildQuery produces one complete, ready-to-transmit request buffer for a
// single recursive A/IN query on name.
//
// The caller supplies the transaction id; this package never touches a
// randomness source, so tests can pin the id and concurrent callers own
// their own generator.
//
// The result is header (RD set, QDCount=1, all other counts zero) followed
// by the encoded question, 12 + len(encoded name) + 4 bytes total. The only
// failure mode is an ErrEncoding from the name encoding; no partial buffer
// is ever returned.
func BuildQuery(name string, id uint16) ([]byte, error) {
	q := Question{Name: name, Type: TypeA, Class: ClassIN}
	qb, err := q.Marshal()
	if err != nil {
		return nil, err
	}

	h := Header{
		ID:      id,
		Flags:   RDFlag,
		QDCount: 1,
	}

	out := make([]byte, 0, HeaderSize+len(qb))
	out = append(out, h.Marshal()...)
	out = append(out, qb...)
	return out, nil
}
