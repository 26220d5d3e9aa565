package nmea

// RMC: Recommended Minimum Specific GNSS Data
// Fields:
//
//	1: time (hhmmss.sss)
//	2: status (A=valid, D=differential, V=void)
//	3: latitude (ddmm.mmmm)
//	4: N/S
//	5: longitude (dddmm.mmmm)
//	6: E/W
//	7: speed over ground (knots)
//	8: course over ground (degrees true)
//	9: date (ddmmyy)
//	10: magnetic variation (degrees)
//	11: variation direction (E/W)
//	12: FAA mode (NMEA 2.3)
//	13: navigation status (NMEA 4.1)
type RMC struct {
	Time              *Time
	Status            RMCStatus
	Latitude          *float64
	Longitude         *float64
	SpeedKnots        *float64
	CourseTrue        *float64
	Date              *Date
	MagneticVariation *float64
	FaaMode           *FaaMode
	NavStatus         *NavStatus
}

func (RMC) SentenceType() SentenceType { return TypeRMC }

func parseRMC(s Sentence) (Data, error) {
	if err := expect(s, TypeRMC); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d RMC
	d.Time = r.optTimeOfDay("time")
	st, ok := rmcStatusOf(r.char("status", "ADV"))
	if ok {
		d.Status = st
	}
	d.Latitude, d.Longitude = r.latLon()
	d.SpeedKnots = r.optFloat("speed")
	d.CourseTrue = r.optFloat("course")
	d.Date = r.optDate("date")
	d.MagneticVariation = r.optFloat("magneticVariation")
	if dir, ok := r.optChar("variationDirection", "EW"); ok && dir == 'W' && d.MagneticVariation != nil {
		v := -*d.MagneticVariation
		d.MagneticVariation = &v
	}
	// Fields beyond the variation only exist from NMEA 2.3 on.
	if c, ok := r.optChar("faaMode", faaModeChars); ok {
		m, _ := faaModeOf(c)
		d.FaaMode = &m
	}
	if c, ok := r.optChar("navStatus", "ADEMSNV"); ok {
		ns, _ := navStatusOf(c)
		d.NavStatus = &ns
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
