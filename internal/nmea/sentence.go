package nmea

import "strings"

// MaxSentenceLen is the NMEA 0183 limit including "$" and the
// checksum, excluding the line terminator.
const MaxSentenceLen = 102

// Sentence is a checksum-validated envelope: talker, message ID and
// the raw comma-separated payload. Field decoding happens later.
type Sentence struct {
	Talker   string
	Type     SentenceType
	TypeID   string
	Payload  string
	Checksum byte
}

// Checksum XORs the bytes between "$" and "*".
func Checksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}

// ParseSentence validates the sentence envelope: length, printable
// ASCII, "$TTMMM," header, "*HH" trailer and the XOR checksum.
// Trailing CR/LF is tolerated.
func ParseSentence(line string) (Sentence, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > MaxSentenceLen {
		return Sentence{}, &LengthError{Length: len(line)}
	}
	for i := 0; i < len(line); i++ {
		if line[i] < 0x20 || line[i] > 0x7e {
			return Sentence{}, ErrNotASCII
		}
	}
	if len(line) == 0 || line[0] != '$' {
		return Sentence{}, ErrMissingPrefix
	}
	star := strings.LastIndexByte(line, '*')
	if star == -1 || star+3 != len(line) {
		return Sentence{}, ErrMissingSuffix
	}
	found, ok := parseHexByte(line[star+1:])
	if !ok {
		return Sentence{}, ErrMissingSuffix
	}
	body := line[1:star]
	if sum := Checksum(body); sum != found {
		return Sentence{}, &ChecksumError{Calculated: sum, Found: found}
	}
	// Header is a two-character talker and a three-character message
	// ID, then the first field separator.
	if len(body) < 6 || body[5] != ',' {
		return Sentence{}, ErrShortSentence
	}
	id := body[2:5]
	return Sentence{
		Talker:   body[0:2],
		Type:     SentenceTypeOf(id),
		TypeID:   id,
		Payload:  body[6:],
		Checksum: found,
	}, nil
}

func parseHexByte(s string) (byte, bool) {
	if len(s) != 2 {
		return 0, false
	}
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	return hi<<4 | lo, ok1 && ok2
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
