package nmea

import (
	"fmt"
	"math"
	"strings"
)

// EncodeSentence assembles "$<talker><id>,<fields>*HH" with a valid
// checksum. Fields are written as given; empty strings stay empty.
func EncodeSentence(talker string, t SentenceType, fields []string) string {
	body := talker + t.String() + "," + strings.Join(fields, ",")
	return fmt.Sprintf("$%s*%02X", body, Checksum(body))
}

// EncodeGGA renders a GGA sentence. Coordinates are written with five
// decimal minute digits so a decode of the output reproduces them to
// well under 1e-7 degrees.
func EncodeGGA(talker string, d GGA) string {
	fields := make([]string, 14)
	if d.Time != nil {
		fields[0] = fmt.Sprintf("%02d%02d%02d.%03d",
			d.Time.Hour, d.Time.Minute, d.Time.Second, d.Time.Nanosecond/1e6)
	}
	if d.Latitude != nil && d.Longitude != nil {
		fields[1], fields[2] = encodeCoord(*d.Latitude, 2, "N", "S")
		fields[3], fields[4] = encodeCoord(*d.Longitude, 3, "E", "W")
	}
	fields[5] = fmt.Sprintf("%d", d.FixType)
	if d.Satellites != nil {
		fields[6] = fmt.Sprintf("%02d", *d.Satellites)
	}
	if d.HDOP != nil {
		fields[7] = fmt.Sprintf("%.2f", *d.HDOP)
	}
	if d.Altitude != nil {
		fields[8] = fmt.Sprintf("%.1f", *d.Altitude)
	}
	fields[9] = "M"
	if d.GeoidSeparation != nil {
		fields[10] = fmt.Sprintf("%.1f", *d.GeoidSeparation)
	}
	fields[11] = "M"
	if d.DGPSAge != nil {
		fields[12] = fmt.Sprintf("%.1f", *d.DGPSAge)
	}
	if d.DGPSStationID != nil {
		fields[13] = fmt.Sprintf("%04d", *d.DGPSStationID)
	}
	return EncodeSentence(talker, TypeGGA, fields)
}

// encodeCoord converts decimal degrees to ddmm.mmmmm plus hemisphere.
func encodeCoord(v float64, degDigits int, pos, neg string) (string, string) {
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	deg := math.Floor(v)
	min := (v - deg) * 60
	// Minute rounding can carry into the degrees.
	if min >= 59.999995 {
		min = 0
		deg++
	}
	return fmt.Sprintf("%0*d%08.5f", degDigits, int(deg), min), hemi
}
