package nmea

// VTG: Track Made Good and Ground Speed
// Fields:
//
//	1: course over ground, degrees true
//	2: T
//	3: course over ground, degrees magnetic
//	4: M
//	5: speed over ground, knots
//	6: N
//	7: speed over ground, km/h
//	8: K
//	9: FAA mode (NMEA 2.3)
type VTG struct {
	CourseTrue     *float64
	CourseMagnetic *float64
	SpeedKnots     *float64
	FaaMode        *FaaMode
}

func (VTG) SentenceType() SentenceType { return TypeVTG }

func parseVTG(s Sentence) (Data, error) {
	if err := expect(s, TypeVTG); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d VTG
	d.CourseTrue = r.optFloat("courseTrue")
	r.unit("courseTrueUnits", 'T')
	d.CourseMagnetic = r.optFloat("courseMagnetic")
	r.unit("courseMagneticUnits", 'M')
	knots := r.optFloat("speedKnots")
	r.unit("speedKnotsUnits", 'N')
	kph := r.optFloat("speedKPH")
	r.unit("speedKPHUnits", 'K')
	if c, ok := r.optChar("faaMode", faaModeChars); ok {
		m, _ := faaModeOf(c)
		d.FaaMode = &m
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	// Prefer the knots field, fall back to converting km/h.
	switch {
	case knots != nil:
		d.SpeedKnots = knots
	case kph != nil:
		v := *kph / 1.852
		d.SpeedKnots = &v
	}
	return d, nil
}
