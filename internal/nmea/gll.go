package nmea

// GLL: Geographic Position, Latitude/Longitude
// Fields:
//
//	1: latitude (ddmm.mmmm)
//	2: N/S
//	3: longitude (dddmm.mmmm)
//	4: E/W
//	5: time (hhmmss.sss)
//	6: status (A=valid, V=void)
//	7: FAA mode (NMEA 2.3)
type GLL struct {
	Latitude  *float64
	Longitude *float64
	Time      Time
	Valid     bool
	FaaMode   *FaaMode
}

func (GLL) SentenceType() SentenceType { return TypeGLL }

func parseGLL(s Sentence) (Data, error) {
	if err := expect(s, TypeGLL); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GLL
	d.Latitude, d.Longitude = r.latLon()
	d.Time = r.timeOfDay("time")
	d.Valid = r.char("status", "AV") == 'A'
	if c, ok := r.optChar("faaMode", faaModeChars); ok {
		m, _ := faaModeOf(c)
		d.FaaMode = &m
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
