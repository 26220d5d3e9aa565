package nmea

import (
	"errors"
	"math"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want Time
		ok   bool
	}{
		{"235959.99", Time{23, 59, 59, 990000000}, true},
		{"000000", Time{0, 0, 0, 0}, true},
		{"125930.5", Time{12, 59, 30, 500000000}, true},
		{"092750.000", Time{9, 27, 50, 0}, true},
		{"121314.123456789", Time{12, 13, 14, 123456789}, true},
		{"240000.00", Time{}, false},
		{"125960.00", Time{}, false},
		{"126000.00", Time{}, false},
		{"12345", Time{}, false},
		{"1234a6", Time{}, false},
		{"123456.", Time{}, false},
		{"123456.-5", Time{}, false},
		{"", Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseTimeOfDay("time", tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("%q: unexpected err state: %v", tc.in, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestTimeOfDayRangeErrors(t *testing.T) {
	_, err := parseTimeOfDay("time", "240000.00")
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if re.Value != 24 || re.Max != 23 {
		t.Fatalf("unexpected range error: %+v", re)
	}
}

func TestDateField(t *testing.T) {
	r := &fieldReader{fields: []string{"230394"}}
	d := r.optDate("date")
	if r.Err() != nil {
		t.Fatalf("unexpected err: %v", r.Err())
	}
	if d == nil || *d != (Date{Day: 23, Month: 3, Year: 94}) {
		t.Fatalf("unexpected date: %+v", d)
	}

	for _, bad := range []string{"320394", "231394", "2303", "23039a"} {
		r := &fieldReader{fields: []string{bad}}
		if r.optDate("date"); r.Err() == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}

	r = &fieldReader{fields: []string{""}}
	if d := r.optDate("date"); d != nil || r.Err() != nil {
		t.Fatalf("empty date should be nil")
	}
}

func TestLatLonBlock(t *testing.T) {
	r := &fieldReader{fields: []string{"4807.038", "N", "01131.000", "E"}}
	lat, lon := r.latLon()
	if r.Err() != nil {
		t.Fatalf("unexpected err: %v", r.Err())
	}
	if lat == nil || math.Abs(*lat-(48.0+7.038/60)) > 1e-9 {
		t.Fatalf("unexpected lat: %v", lat)
	}
	if lon == nil || math.Abs(*lon-(11.0+31.0/60)) > 1e-9 {
		t.Fatalf("unexpected lon: %v", lon)
	}

	// Southern and western hemispheres flip the sign.
	r = &fieldReader{fields: []string{"3345.000", "S", "15030.000", "W"}}
	lat, lon = r.latLon()
	if lat == nil || *lat >= 0 || lon == nil || *lon >= 0 {
		t.Fatalf("expected negative coordinates, got %v %v", lat, lon)
	}

	// A fully empty block means no data, not an error.
	r = &fieldReader{fields: []string{"", "", "", ""}}
	lat, lon = r.latLon()
	if lat != nil || lon != nil || r.Err() != nil {
		t.Fatalf("empty block should be nil without error")
	}

	// A partially empty block is malformed.
	r = &fieldReader{fields: []string{"4807.038", "N", "", ""}}
	r.latLon()
	if r.Err() == nil {
		t.Fatalf("expected error for partial block")
	}

	// Bogus hemisphere.
	r = &fieldReader{fields: []string{"4807.038", "X", "01131.000", "E"}}
	r.latLon()
	var ee *EnumError
	if !errors.As(r.Err(), &ee) {
		t.Fatalf("expected EnumError, got %v", r.Err())
	}
}

func TestFieldReaderMandatoryAndSticky(t *testing.T) {
	r := &fieldReader{fields: []string{"abc"}}
	if v := r.float("speed"); v != 0 {
		t.Fatalf("expected zero on error")
	}
	var ne *NumericError
	if !errors.As(r.Err(), &ne) {
		t.Fatalf("expected NumericError, got %v", r.Err())
	}
	// Later reads keep the first error.
	r.float("course")
	if !errors.As(r.Err(), &ne) || ne.Field != "speed" {
		t.Fatalf("expected sticky first error, got %v", r.Err())
	}

	r = &fieldReader{fields: []string{"1.5"}}
	r.float("speed")
	r.float("course")
	var se *SyntaxError
	if !errors.As(r.Err(), &se) || se.Field != "course" {
		t.Fatalf("expected missing-field error, got %v", r.Err())
	}
}
