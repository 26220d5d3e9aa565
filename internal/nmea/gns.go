package nmea

// GNS: GNSS Fix Data (multi-constellation)
// Fields:
//
//	1: time (hhmmss.sss)
//	2: latitude (ddmm.mmmm)
//	3: N/S
//	4: longitude (dddmm.mmmm)
//	5: E/W
//	6: mode indicators, one character per system
//	7: satellites in use
//	8: HDOP
//	9: altitude above MSL (meters)
//	10: geoid separation (meters)
//	11: age of differential data
//	12: differential station ID
//	13: navigation status (NMEA 4.1)
type GNS struct {
	Time            *Time
	Latitude        *float64
	Longitude       *float64
	FaaModes        FaaModes
	Satellites      int
	HDOP            *float64
	Altitude        *float64
	GeoidSeparation *float64
	DiffAge         *float64
	DiffStationID   *int
	NavStatus       *NavStatus
}

func (GNS) SentenceType() SentenceType { return TypeGNS }

func parseGNS(s Sentence) (Data, error) {
	if err := expect(s, TypeGNS); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GNS
	d.Time = r.optTimeOfDay("time")
	d.Latitude, d.Longitude = r.latLon()
	if f, ok := r.next("faaModes"); ok {
		modes, err := faaModesOf(f)
		if err != nil {
			r.fail(err)
		}
		d.FaaModes = modes
	}
	d.Satellites = r.uintIn("satellites", 0, 99)
	d.HDOP = r.optFloat("hdop")
	d.Altitude = r.optFloat("altitude")
	d.GeoidSeparation = r.optFloat("geoidSeparation")
	d.DiffAge = r.optFloat("diffAge")
	d.DiffStationID = r.optUint("diffStationID")
	if c, ok := r.optChar("navStatus", "ADEMSNV"); ok {
		ns, _ := navStatusOf(c)
		d.NavStatus = &ns
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
