package nmea

import (
	"strconv"
	"strings"
	"time"
)

// maxTextLen is the capacity for free-text fields (waypoint IDs, TXT
// message bodies). Longer fields are rejected rather than truncated.
const maxTextLen = 64

// fieldReader walks the comma-separated payload of one sentence. The
// first grammar violation is latched; later accessors return zero
// values and the decoder checks Err once at the end.
type fieldReader struct {
	fields []string
	pos    int
	err    error
}

func newFieldReader(s Sentence) *fieldReader {
	return &fieldReader{fields: strings.Split(s.Payload, ",")}
}

func (r *fieldReader) Err() error { return r.err }

func (r *fieldReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) remaining() int { return len(r.fields) - r.pos }

// take consumes the next raw field. The second result is false when
// the payload is exhausted or an error is latched.
func (r *fieldReader) take() (string, bool) {
	if r.err != nil || r.pos >= len(r.fields) {
		return "", false
	}
	f := r.fields[r.pos]
	r.pos++
	return f, true
}

// next consumes a field that must be present.
func (r *fieldReader) next(name string) (string, bool) {
	f, ok := r.take()
	if !ok && r.err == nil {
		r.fail(&SyntaxError{Field: name, Reason: "missing field"})
	}
	return f, ok
}

// skip discards one field if present.
func (r *fieldReader) skip() { r.take() }

func (r *fieldReader) optFloat(name string) *float64 {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	return &v
}

func (r *fieldReader) float(name string) float64 {
	f, ok := r.next(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		r.fail(&NumericError{Field: name, Value: f})
		return 0
	}
	return v
}

func (r *fieldReader) optUint(name string) *int {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	v, err := strconv.Atoi(f)
	if err != nil || v < 0 {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	return &v
}

func (r *fieldReader) uintIn(name string, min, max int) int {
	f, ok := r.next(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(f)
	if err != nil || v < 0 {
		r.fail(&NumericError{Field: name, Value: f})
		return 0
	}
	if v < min || v > max {
		r.fail(&RangeError{Field: name, Value: v, Min: min, Max: max})
		return 0
	}
	return v
}

func (r *fieldReader) optUintIn(name string, min, max int) *int {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	v, err := strconv.Atoi(f)
	if err != nil || v < 0 {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	if v < min || v > max {
		r.fail(&RangeError{Field: name, Value: v, Min: min, Max: max})
		return nil
	}
	return &v
}

func (r *fieldReader) optSignedIn(name string, min, max int) *int {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	v, err := strconv.Atoi(f)
	if err != nil {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	if v < min || v > max {
		r.fail(&RangeError{Field: name, Value: v, Min: min, Max: max})
		return nil
	}
	return &v
}

func (r *fieldReader) optHex(name string) *uint32 {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	v, err := strconv.ParseUint(f, 16, 32)
	if err != nil {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	u := uint32(v)
	return &u
}

// char consumes a mandatory single-character code from the alphabet.
func (r *fieldReader) char(name, alphabet string) byte {
	f, ok := r.next(name)
	if !ok {
		return 0
	}
	if len(f) != 1 || !strings.ContainsRune(alphabet, rune(f[0])) {
		r.fail(&EnumError{Field: name, Value: f})
		return 0
	}
	return f[0]
}

// optChar consumes a single-character code that may be empty or
// missing entirely.
func (r *fieldReader) optChar(name, alphabet string) (byte, bool) {
	f, ok := r.take()
	if !ok || f == "" {
		return 0, false
	}
	if len(f) != 1 || !strings.ContainsRune(alphabet, rune(f[0])) {
		r.fail(&EnumError{Field: name, Value: f})
		return 0, false
	}
	return f[0], true
}

// unit consumes a fixed unit indicator. Empty and missing are
// tolerated, anything other than the expected character is not.
func (r *fieldReader) unit(name string, c byte) {
	f, ok := r.take()
	if !ok || f == "" {
		return
	}
	if len(f) != 1 || f[0] != c {
		r.fail(&EnumError{Field: name, Value: f})
	}
}

func (r *fieldReader) optText(name string) *string {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	if len(f) > maxTextLen {
		r.fail(&TextLengthError{Field: name, Length: len(f), Max: maxTextLen})
		return nil
	}
	return &f
}

func (r *fieldReader) text(name string) string {
	f, ok := r.next(name)
	if !ok {
		return ""
	}
	if len(f) > maxTextLen {
		r.fail(&TextLengthError{Field: name, Length: len(f), Max: maxTextLen})
		return ""
	}
	return f
}

// latLon consumes the four-field position block. A fully empty block
// (",,,") yields nil coordinates; a partially filled block is an
// error.
func (r *fieldReader) latLon() (*float64, *float64) {
	latF, ok1 := r.next("latitude")
	nsF, ok2 := r.next("latitudeHemisphere")
	lonF, ok3 := r.next("longitude")
	ewF, ok4 := r.next("longitudeHemisphere")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, nil
	}
	if latF == "" && nsF == "" && lonF == "" && ewF == "" {
		return nil, nil
	}
	lat := r.coord("latitude", latF, 2)
	lon := r.coord("longitude", lonF, 3)
	switch nsF {
	case "N":
	case "S":
		lat = -lat
	default:
		r.fail(&EnumError{Field: "latitudeHemisphere", Value: nsF})
	}
	switch ewF {
	case "E":
	case "W":
		lon = -lon
	default:
		r.fail(&EnumError{Field: "longitudeHemisphere", Value: ewF})
	}
	if r.err != nil {
		return nil, nil
	}
	return &lat, &lon
}

// coord parses ddmm.mmmm (or dddmm.mmmm for longitude) into decimal
// degrees without the hemisphere sign.
func (r *fieldReader) coord(name, f string, degDigits int) float64 {
	if len(f) < degDigits+2 {
		r.fail(&NumericError{Field: name, Value: f})
		return 0
	}
	deg, err := strconv.Atoi(f[:degDigits])
	if err != nil {
		r.fail(&NumericError{Field: name, Value: f})
		return 0
	}
	min, err := strconv.ParseFloat(f[degDigits:], 64)
	if err != nil || min < 0 {
		r.fail(&NumericError{Field: name, Value: f})
		return 0
	}
	return float64(deg) + min/60
}

func (r *fieldReader) optTimeOfDay(name string) *Time {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	t, err := parseTimeOfDay(name, f)
	if err != nil {
		r.fail(err)
		return nil
	}
	return &t
}

func (r *fieldReader) timeOfDay(name string) Time {
	f, ok := r.next(name)
	if !ok {
		return Time{}
	}
	t, err := parseTimeOfDay(name, f)
	if err != nil {
		r.fail(err)
		return Time{}
	}
	return t
}

func (r *fieldReader) optDate(name string) *Date {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	if len(f) != 6 || !allDigits(f) {
		r.fail(&NumericError{Field: name, Value: f})
		return nil
	}
	day := twoDigits(f[0:2])
	month := twoDigits(f[2:4])
	year := twoDigits(f[4:6])
	if month < 1 || month > 12 {
		r.fail(&RangeError{Field: name, Value: month, Min: 1, Max: 12})
		return nil
	}
	if day < 1 || day > 31 {
		r.fail(&RangeError{Field: name, Value: day, Min: 1, Max: 31})
		return nil
	}
	// The wire format carries a two-digit year. It is kept as-is:
	// picking a century is the caller's business.
	return &Date{Day: day, Month: month, Year: year}
}

func (r *fieldReader) optDuration(name string) *time.Duration {
	f, ok := r.take()
	if !ok || f == "" {
		return nil
	}
	hour, min, sec, ns, err := parseClock(name, f)
	if err != nil {
		r.fail(err)
		return nil
	}
	if min > 59 {
		r.fail(&RangeError{Field: name, Value: min, Min: 0, Max: 59})
		return nil
	}
	if sec > 59 {
		r.fail(&RangeError{Field: name, Value: sec, Min: 0, Max: 59})
		return nil
	}
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ns)
	return &d
}

// parseTimeOfDay parses hhmmss with an optional fractional second,
// keeping nanosecond precision.
func parseTimeOfDay(name, f string) (Time, error) {
	hour, min, sec, ns, err := parseClock(name, f)
	if err != nil {
		return Time{}, err
	}
	if hour > 23 {
		return Time{}, &RangeError{Field: name, Value: hour, Min: 0, Max: 23}
	}
	if min > 59 {
		return Time{}, &RangeError{Field: name, Value: min, Min: 0, Max: 59}
	}
	if sec > 59 {
		return Time{}, &RangeError{Field: name, Value: sec, Min: 0, Max: 59}
	}
	return Time{Hour: hour, Minute: min, Second: sec, Nanosecond: ns}, nil
}

func parseClock(name, f string) (hour, min, sec, ns int, err error) {
	if len(f) < 6 || !allDigits(f[:6]) {
		return 0, 0, 0, 0, &NumericError{Field: name, Value: f}
	}
	hour = twoDigits(f[0:2])
	min = twoDigits(f[2:4])
	sec = twoDigits(f[4:6])
	if len(f) > 6 {
		if f[6] != '.' || len(f) == 7 || !allDigits(f[7:]) {
			return 0, 0, 0, 0, &NumericError{Field: name, Value: f}
		}
		frac := f[7:]
		if len(frac) > 9 {
			frac = frac[:9]
		}
		for _, c := range []byte(frac) {
			ns = ns*10 + int(c-'0')
		}
		for i := len(frac); i < 9; i++ {
			ns *= 10
		}
	}
	return hour, min, sec, ns, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
