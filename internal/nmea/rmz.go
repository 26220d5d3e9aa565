package nmea

// RMZ: Garmin proprietary altitude (PGRMZ). The "PG" talker is part
// of the proprietary prefix; any other talker is rejected.
// Fields:
//
//	1: altitude, feet
//	2: f
//	3: position fix dimension (2=user altitude, 3=GPS altitude)
type RMZ struct {
	Altitude     *float64
	FixDimension *int
}

func (RMZ) SentenceType() SentenceType { return TypeRMZ }

func parseRMZ(s Sentence) (Data, error) {
	if err := expect(s, TypeRMZ); err != nil {
		return nil, err
	}
	if s.Talker != "PG" {
		return nil, &TalkerError{Talker: s.Talker}
	}
	r := newFieldReader(s)
	var d RMZ
	d.Altitude = r.optFloat("altitude")
	r.unit("altitudeUnits", 'f')
	d.FixDimension = r.optUintIn("fixDimension", 1, 3)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
