package nmea

import (
	"errors"
	"fmt"
)

// Framing errors that carry no parameters.
var (
	ErrNotASCII      = errors.New("nmea: sentence contains non-ASCII bytes")
	ErrMissingPrefix = errors.New("nmea: sentence does not start with '$'")
	ErrMissingSuffix = errors.New("nmea: sentence has no checksum delimiter")
	ErrShortSentence = errors.New("nmea: sentence too short for a type header")
)

// LengthError reports a sentence exceeding the protocol maximum.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("nmea: sentence is %d bytes, maximum is %d", e.Length, MaxSentenceLen)
}

// ChecksumError reports a mismatch between the transmitted checksum
// and the one computed over the payload.
type ChecksumError struct {
	Calculated byte
	Found      byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("nmea: checksum mismatch: calculated %02X, sentence carries %02X", e.Calculated, e.Found)
}

// HeaderError reports a sentence handed to a decoder for a different
// sentence type.
type HeaderError struct {
	Expected SentenceType
	Found    SentenceType
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("nmea: expected %s sentence, got %s", e.Expected, e.Found)
}

// UnknownTypeError reports a message ID outside the known sentence set.
type UnknownTypeError struct {
	ID string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("nmea: unknown sentence type %q", e.ID)
}

// UnsupportedTypeError reports a recognized sentence type that has no
// field decoder.
type UnsupportedTypeError struct {
	Type SentenceType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("nmea: no decoder for %s sentences", e.Type)
}

// TalkerError reports a talker ID that does not map to a known
// constellation, or the wrong talker on a proprietary sentence.
type TalkerError struct {
	Talker string
}

func (e *TalkerError) Error() string {
	return fmt.Sprintf("nmea: unrecognized talker %q", e.Talker)
}

// SyntaxError reports a field-structure problem: a mandatory field
// missing, or a field that does not match its grammar.
type SyntaxError struct {
	Field  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("nmea: field %s: %s", e.Field, e.Reason)
}

// NumericError reports a field that failed numeric conversion.
type NumericError struct {
	Field string
	Value string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("nmea: field %s: %q is not a valid number", e.Field, e.Value)
}

// RangeError reports a numeric field outside its permitted interval.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("nmea: field %s: %d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// TextLengthError reports a free-text field exceeding its capacity.
type TextLengthError struct {
	Field  string
	Length int
	Max    int
}

func (e *TextLengthError) Error() string {
	return fmt.Sprintf("nmea: field %s: %d characters exceeds capacity %d", e.Field, e.Length, e.Max)
}

// EnumError reports a coded field whose value is outside its alphabet.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("nmea: field %s: %q is not a recognized code", e.Field, e.Value)
}

// PackIndexError reports a GSV sentence whose sequence numbers cannot
// describe a valid multi-sentence scan.
type PackIndexError struct {
	Index int
	Total int
}

func (e *PackIndexError) Error() string {
	return fmt.Sprintf("nmea: GSV sentence %d of %d is outside the supported scan size", e.Index, e.Total)
}
