package nmea

import "fmt"

// FixType is the GGA fix-quality code.
type FixType uint8

const (
	FixInvalid FixType = iota
	FixGPS
	FixDGPS
	FixPPS
	FixRTK
	FixFloatRTK
	FixEstimated
	FixManual
	FixSimulation
)

// fixTypeFromQuality maps the GGA fix-quality character. Codes outside
// '0'..'8' map to FixInvalid rather than failing the sentence.
func fixTypeFromQuality(c byte) FixType {
	if c < '0' || c > '8' {
		return FixInvalid
	}
	return FixType(c - '0')
}

// IsValid reports whether the fix carries a usable position.
// Estimated, manual and simulated fixes do not count.
func (f FixType) IsValid() bool {
	switch f {
	case FixGPS, FixDGPS, FixPPS, FixRTK, FixFloatRTK:
		return true
	}
	return false
}

func (f FixType) String() string {
	switch f {
	case FixInvalid:
		return "invalid"
	case FixGPS:
		return "gps"
	case FixDGPS:
		return "dgps"
	case FixPPS:
		return "pps"
	case FixRTK:
		return "rtk"
	case FixFloatRTK:
		return "float-rtk"
	case FixEstimated:
		return "estimated"
	case FixManual:
		return "manual"
	case FixSimulation:
		return "simulation"
	}
	return "invalid"
}

// GnssType is the satellite constellation a talker ID belongs to.
type GnssType uint8

const (
	BeiDou GnssType = iota
	Galileo
	GPS
	GLONASS
	NavIC
	QZSS

	numGnssTypes
)

func (g GnssType) String() string {
	switch g {
	case BeiDou:
		return "BeiDou"
	case Galileo:
		return "Galileo"
	case GPS:
		return "GPS"
	case GLONASS:
		return "GLONASS"
	case NavIC:
		return "NavIC"
	case QZSS:
		return "QZSS"
	}
	return "unknown"
}

// gnssTypeOfTalker maps a GSV talker ID to its constellation.
func gnssTypeOfTalker(talker string) (GnssType, error) {
	switch talker {
	case "BD", "GB":
		return BeiDou, nil
	case "GA":
		return Galileo, nil
	case "GP":
		return GPS, nil
	case "GL":
		return GLONASS, nil
	case "GI":
		return NavIC, nil
	case "GQ", "PQ", "QZ":
		return QZSS, nil
	}
	return 0, &TalkerError{Talker: talker}
}

// Satellite is one entry from a GSV constellation scan. Elevation,
// azimuth and SNR are absent for satellites that are tracked but not
// yet measured.
type Satellite struct {
	Gnss      GnssType `json:"gnss"`
	PRN       int      `json:"prn"`
	Elevation *float64 `json:"elevation,omitempty"`
	Azimuth   *float64 `json:"azimuth,omitempty"`
	SNR       *float64 `json:"snr,omitempty"`
}

func (s Satellite) String() string {
	str := fmt.Sprintf("%s #%d", s.Gnss, s.PRN)
	if s.Elevation != nil {
		str += fmt.Sprintf(" elev %.0f", *s.Elevation)
	}
	if s.Azimuth != nil {
		str += fmt.Sprintf(" az %.0f", *s.Azimuth)
	}
	if s.SNR != nil {
		str += fmt.Sprintf(" snr %.0f", *s.SNR)
	}
	return str
}

// Time is a UTC time of day as transmitted on the wire (hhmmss.sss).
// It is comparable with ==.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t Time) String() string {
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Nanosecond/1e6)
}

// Date is a calendar date as transmitted on the wire. Year carries
// exactly what the sentence said: two digits for DDMMYY sentences,
// four digits for ZDA. No century inference is applied.
type Date struct {
	Day   int
	Month int
	Year  int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// RMCStatus is the RMC receiver status flag.
type RMCStatus uint8

const (
	StatusValid RMCStatus = iota
	StatusValidDifferential
	StatusInvalid
)

func rmcStatusOf(c byte) (RMCStatus, bool) {
	switch c {
	case 'A':
		return StatusValid, true
	case 'D':
		return StatusValidDifferential, true
	case 'V':
		return StatusInvalid, true
	}
	return 0, false
}

// FaaMode is the FAA mode indicator introduced with NMEA 2.3.
type FaaMode uint8

const (
	FaaAutonomous FaaMode = iota
	FaaCaution
	FaaDifferential
	FaaEstimated
	FaaFloatRTK
	FaaManual
	FaaDataNotValid
	FaaPrecise
	FaaRTK
	FaaSimulated
	FaaUnsafe
)

func faaModeOf(c byte) (FaaMode, bool) {
	switch c {
	case 'A':
		return FaaAutonomous, true
	case 'C':
		return FaaCaution, true
	case 'D':
		return FaaDifferential, true
	case 'E':
		return FaaEstimated, true
	case 'F':
		return FaaFloatRTK, true
	case 'M':
		return FaaManual, true
	case 'N':
		return FaaDataNotValid, true
	case 'P':
		return FaaPrecise, true
	case 'R':
		return FaaRTK, true
	case 'S':
		return FaaSimulated, true
	case 'U':
		return FaaUnsafe, true
	}
	return 0, false
}

// FixType maps the mode onto the fix-quality enumeration.
func (m FaaMode) FixType() FixType {
	switch m {
	case FaaAutonomous:
		return FixGPS
	case FaaDifferential:
		return FixDGPS
	case FaaEstimated:
		return FixEstimated
	case FaaFloatRTK:
		return FixFloatRTK
	case FaaManual:
		return FixManual
	case FaaPrecise:
		return FixGPS
	case FaaRTK:
		return FixRTK
	case FaaSimulated:
		return FixSimulation
	}
	return FixInvalid
}

func (m FaaMode) String() string {
	return string(faaModeChars[m : m+1])
}

const faaModeChars = "ACDEFMNPRSU"

// FaaModes holds the per-system mode indicators from a GNS sentence.
// Receivers report one character per constellation; two are retained.
type FaaModes struct {
	First  FaaMode
	Second *FaaMode
}

func faaModesOf(field string) (FaaModes, error) {
	if field == "" {
		return FaaModes{}, &EnumError{Field: "faaModes", Value: field}
	}
	first, ok := faaModeOf(field[0])
	if !ok {
		return FaaModes{}, &EnumError{Field: "faaModes", Value: field[:1]}
	}
	modes := FaaModes{First: first}
	if len(field) > 1 {
		second, ok := faaModeOf(field[1])
		if !ok {
			return FaaModes{}, &EnumError{Field: "faaModes", Value: field[1:2]}
		}
		modes.Second = &second
	}
	return modes, nil
}

// FixType prefers the first system reporting a usable mode.
func (m FaaModes) FixType() FixType {
	first := m.First.FixType()
	if first.IsValid() || m.Second == nil {
		return first
	}
	return m.Second.FixType()
}

// NavStatus is the navigation status indicator added in NMEA 4.1.
type NavStatus uint8

const (
	NavAutonomous NavStatus = iota
	NavDifferential
	NavEstimated
	NavManual
	NavSimulator
	NavNotValid
	NavValid
)

func navStatusOf(c byte) (NavStatus, bool) {
	switch c {
	case 'A':
		return NavAutonomous, true
	case 'D':
		return NavDifferential, true
	case 'E':
		return NavEstimated, true
	case 'M':
		return NavManual, true
	case 'S':
		return NavSimulator, true
	case 'N':
		return NavNotValid, true
	case 'V':
		return NavValid, true
	}
	return 0, false
}
