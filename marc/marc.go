// Package marc models MARC 21 bibliographic records: the leader, control
// and data fields, and their binary and mnemonic renderings.
package marc

import (
	"fmt"
	"strings"
)

// Delimiters from the MARC 21 exchange format.
const (
	fieldTerminator   = 0x1e
	recordTerminator  = 0x1d
	subfieldDelimiter = 0x1f
)

const leaderLength = 24

// Leader holds the cataloger-set bytes of a record leader. Record length,
// base address, and the format-invariant positions are filled in at
// serialization time, never by callers.
type Leader struct {
	Status        byte // position 05
	Type          byte // position 06
	BibLevel      byte // position 07
	Control       byte // position 08
	EncodingLevel byte // position 17
	Form          byte // position 18
	Multipart     byte // position 19
}

// bytes lays out the full 24-byte leader for the given record length and
// base address. Unset cataloger bytes render as blanks, and position 09 is
// always "a": records are serialized in UTF-8.
func (l Leader) bytes(length, base int) []byte {
	b := make([]byte, 0, leaderLength)
	b = append(b, fmt.Sprintf("%05d", length)...)
	b = append(b, orBlank(l.Status), orBlank(l.Type), orBlank(l.BibLevel), orBlank(l.Control))
	b = append(b, 'a', '2', '2')
	b = append(b, fmt.Sprintf("%05d", base)...)
	b = append(b, orBlank(l.EncodingLevel), orBlank(l.Form), orBlank(l.Multipart))
	b = append(b, '4', '5', '0', '0')
	return b
}

func orBlank(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

// Subfield is one code/value pair within a data field.
type Subfield struct {
	Code  byte
	Value string
}

// Field is a single MARC field. Control fields (tags below 010) carry Data
// and no indicators or subfields; data fields carry an indicator pair and
// an ordered subfield list.
type Field struct {
	Tag       string
	Ind1      byte
	Ind2      byte
	Subfields []Subfield
	Data      string
}

// NewField builds a data field from an indicator pair and subfields.
func NewField(tag string, ind1, ind2 byte, subfields ...Subfield) Field {
	return Field{Tag: tag, Ind1: ind1, Ind2: ind2, Subfields: subfields}
}

// NewControlField builds a control field carrying fixed-position data.
func NewControlField(tag, data string) Field {
	return Field{Tag: tag, Data: data}
}

// Sub builds a single subfield.
func Sub(code byte, value string) Subfield {
	return Subfield{Code: code, Value: value}
}

// Repeat builds one subfield per value, all under the same code.
func Repeat(code byte, values ...string) []Subfield {
	subs := make([]Subfield, len(values))
	for i, v := range values {
		subs[i] = Subfield{Code: code, Value: v}
	}
	return subs
}

// IsControl reports whether the field is a control field.
func (f Field) IsControl() bool {
	return f.Tag < "010"
}

// String renders the field in mnemonic form for visual review, with blank
// indicators shown as backslashes.
func (f Field) String() string {
	var b strings.Builder
	b.WriteByte('=')
	b.WriteString(f.Tag)
	b.WriteString("  ")

	if f.IsControl() {
		b.WriteString(f.Data)
		return b.String()
	}

	b.WriteByte(mnemonicIndicator(f.Ind1))
	b.WriteByte(mnemonicIndicator(f.Ind2))
	for _, sf := range f.Subfields {
		b.WriteByte('$')
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	return b.String()
}

func mnemonicIndicator(ind byte) byte {
	if ind == 0 || ind == ' ' {
		return '\\'
	}
	return ind
}

// Record is a leader plus an ordered field list.
type Record struct {
	Leader Leader
	Fields []Field
}

// String renders the record in mnemonic form: an =LDR line, then one line
// per field in record order. Length and base address show as zeros since
// both depend on serialization.
func (r Record) String() string {
	lines := make([]string, 0, len(r.Fields)+1)
	lines = append(lines, "=LDR  "+string(r.Leader.bytes(0, 0)))
	for _, f := range r.Fields {
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}
