package nmea

import "strconv"

// GSAMode is the GSA selection mode.
type GSAMode uint8

const (
	GSAManual GSAMode = iota
	GSAAutomatic
)

// GSAFix is the GSA fix dimension.
type GSAFix uint8

const (
	GSAFixNone GSAFix = iota + 1
	GSAFix2D
	GSAFix3D
)

// maxFixSatellites bounds the PRN list carried by a GSA sentence.
const maxFixSatellites = 18

// GSA: GNSS DOP and Active Satellites
// Fields:
//
//	1: selection mode (M=manual, A=automatic)
//	2: fix dimension (1=none, 2=2D, 3=3D)
//	3..n-3: PRNs of satellites used in the fix
//	n-2: PDOP
//	n-1: HDOP
//	n: VDOP
//
// The PRN list is nominally twelve fields but some receivers emit
// fewer, and some emit an entirely empty tail with no DOP fields.
type GSA struct {
	Mode          GSAMode
	Fix           GSAFix
	FixSatellites []int
	PDOP          *float64
	HDOP          *float64
	VDOP          *float64
}

func (GSA) SentenceType() SentenceType { return TypeGSA }

func parseGSA(s Sentence) (Data, error) {
	if err := expect(s, TypeGSA); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GSA
	if r.char("mode", "MA") == 'A' {
		d.Mode = GSAAutomatic
	}
	d.Fix = GSAFix(r.uintIn("fix", 1, 3))
	var rest []string
	for {
		f, ok := r.take()
		if !ok {
			break
		}
		rest = append(rest, f)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	empty := true
	for _, f := range rest {
		if f != "" {
			empty = false
			break
		}
	}
	if empty {
		// Some receivers (i.Trek M3 and friends) send a GSA with no
		// satellites and no DOP values at all.
		return d, nil
	}
	if len(rest) < 3 {
		return nil, &SyntaxError{Field: "dop", Reason: "missing field"}
	}
	prns, dops := rest[:len(rest)-3], rest[len(rest)-3:]
	for _, f := range prns {
		if f == "" {
			continue
		}
		prn, err := strconv.Atoi(f)
		if err != nil || prn < 0 {
			return nil, &NumericError{Field: "fixSatellite", Value: f}
		}
		if len(d.FixSatellites) < maxFixSatellites {
			d.FixSatellites = append(d.FixSatellites, prn)
		}
	}
	names := [3]string{"pdop", "hdop", "vdop"}
	out := [3]**float64{&d.PDOP, &d.HDOP, &d.VDOP}
	for i, f := range dops {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &NumericError{Field: names[i], Value: f}
		}
		*out[i] = &v
	}
	return d, nil
}
