package marc

import (
	"fmt"
	"io"
)

// Limits imposed by the fixed-width length fields of the MARC 21 exchange
// format: four digits per directory entry length, five for the record.
const (
	maxFieldLength  = 9999
	maxRecordLength = 99999
)

// Writer serializes records in binary MARC 21.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes one record as leader, directory, field data, and record
// terminator. Directory lengths and offsets count bytes, so multi-byte
// UTF-8 values are measured after encoding.
func (w *Writer) Write(rec *Record) error {
	var directory []byte
	var data []byte

	for _, f := range rec.Fields {
		if len(f.Tag) != 3 {
			return fmt.Errorf("field tag %q: want exactly 3 characters", f.Tag)
		}

		encoded := encodeField(f)
		if len(encoded) > maxFieldLength {
			return fmt.Errorf("field %s is %d bytes, over the %d byte limit", f.Tag, len(encoded), maxFieldLength)
		}

		directory = append(directory, fmt.Sprintf("%s%04d%05d", f.Tag, len(encoded), len(data))...)
		data = append(data, encoded...)
	}

	base := leaderLength + len(directory) + 1
	total := base + len(data) + 1
	if total > maxRecordLength {
		return fmt.Errorf("record is %d bytes, over the %d byte limit", total, maxRecordLength)
	}

	out := make([]byte, 0, total)
	out = append(out, rec.Leader.bytes(total, base)...)
	out = append(out, directory...)
	out = append(out, fieldTerminator)
	out = append(out, data...)
	out = append(out, recordTerminator)

	if _, err := w.w.Write(out); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// encodeField renders one field's data portion, including its terminator.
// The directory length for the field covers the terminator byte.
func encodeField(f Field) []byte {
	var b []byte
	if f.IsControl() {
		b = append(b, f.Data...)
	} else {
		b = append(b, orBlank(f.Ind1), orBlank(f.Ind2))
		for _, sf := range f.Subfields {
			b = append(b, subfieldDelimiter, sf.Code)
			b = append(b, sf.Value...)
		}
	}
	return append(b, fieldTerminator)
}
