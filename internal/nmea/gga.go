package nmea

// GGA: Global Positioning System Fix Data
// Fields:
//
//	1: time (hhmmss.sss)
//	2: latitude (ddmm.mmmm)
//	3: N/S
//	4: longitude (dddmm.mmmm)
//	5: E/W
//	6: fix quality (0=invalid .. 8=simulation)
//	7: satellites in use
//	8: HDOP
//	9: altitude above MSL (meters)
//	10: units (M)
//	11: geoid separation (meters)
//	12: units (M)
//	13: age of DGPS data (seconds)
//	14: DGPS station ID
type GGA struct {
	Time            *Time
	Latitude        *float64
	Longitude       *float64
	FixType         FixType
	Satellites      *int
	HDOP            *float64
	Altitude        *float64
	GeoidSeparation *float64
	DGPSAge         *float64
	DGPSStationID   *int
}

func (GGA) SentenceType() SentenceType { return TypeGGA }

func parseGGA(s Sentence) (Data, error) {
	if err := expect(s, TypeGGA); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GGA
	d.Time = r.optTimeOfDay("time")
	d.Latitude, d.Longitude = r.latLon()
	if f, ok := r.take(); ok && len(f) == 1 {
		d.FixType = fixTypeFromQuality(f[0])
	}
	d.Satellites = r.optUint("satellites")
	d.HDOP = r.optFloat("hdop")
	d.Altitude = r.optFloat("altitude")
	r.unit("altitudeUnits", 'M')
	d.GeoidSeparation = r.optFloat("geoidSeparation")
	r.unit("geoidSeparationUnits", 'M')
	d.DGPSAge = r.optFloat("dgpsAge")
	d.DGPSStationID = r.optUint("dgpsStationID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
