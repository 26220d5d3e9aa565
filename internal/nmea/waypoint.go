package nmea

// Waypoint navigation sentences: AAM, BOD, BWC, BWW, WNC.

// AAM: Waypoint Arrival Alarm
// Fields:
//
//	1: arrival circle entered (A=yes, V=no)
//	2: perpendicular passed (A=yes, V=no)
//	3: arrival circle radius
//	4: radius units (N = nautical miles)
//	5: waypoint ID
type AAM struct {
	ArrivalCircleEntered bool
	PerpendicularPassed  bool
	CircleRadius         *float64
	WaypointID           *string
}

func (AAM) SentenceType() SentenceType { return TypeAAM }

func parseAAM(s Sentence) (Data, error) {
	if err := expect(s, TypeAAM); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d AAM
	d.ArrivalCircleEntered = r.char("arrivalCircleEntered", "AV") == 'A'
	d.PerpendicularPassed = r.char("perpendicularPassed", "AV") == 'A'
	d.CircleRadius = r.optFloat("circleRadius")
	r.unit("radiusUnits", 'N')
	d.WaypointID = r.optText("waypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// BOD: Bearing, Origin to Destination
// Fields:
//
//	1: bearing, degrees true
//	2: T
//	3: bearing, degrees magnetic
//	4: M
//	5: destination waypoint ID
//	6: origin waypoint ID
type BOD struct {
	BearingTrue     *float64
	BearingMagnetic *float64
	ToWaypointID    *string
	FromWaypointID  *string
}

func (BOD) SentenceType() SentenceType { return TypeBOD }

func parseBOD(s Sentence) (Data, error) {
	if err := expect(s, TypeBOD); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d BOD
	d.BearingTrue = r.optFloat("bearingTrue")
	r.unit("bearingTrueUnits", 'T')
	d.BearingMagnetic = r.optFloat("bearingMagnetic")
	r.unit("bearingMagneticUnits", 'M')
	d.ToWaypointID = r.optText("toWaypointID")
	d.FromWaypointID = r.optText("fromWaypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// BWC: Bearing and Distance to Waypoint, Great Circle
// Fields:
//
//	1: time (hhmmss.sss)
//	2: waypoint latitude (ddmm.mmmm)
//	3: N/S
//	4: waypoint longitude (dddmm.mmmm)
//	5: E/W
//	6: bearing, degrees true
//	7: T
//	8: bearing, degrees magnetic
//	9: M
//	10: distance, nautical miles
//	11: N
//	12: waypoint ID
//	13: FAA mode (NMEA 2.3)
type BWC struct {
	Time            *Time
	Latitude        *float64
	Longitude       *float64
	BearingTrue     *float64
	BearingMagnetic *float64
	DistanceNM      *float64
	WaypointID      *string
	FaaMode         *FaaMode
}

func (BWC) SentenceType() SentenceType { return TypeBWC }

func parseBWC(s Sentence) (Data, error) {
	if err := expect(s, TypeBWC); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d BWC
	d.Time = r.optTimeOfDay("time")
	d.Latitude, d.Longitude = r.latLon()
	d.BearingTrue = r.optFloat("bearingTrue")
	r.unit("bearingTrueUnits", 'T')
	d.BearingMagnetic = r.optFloat("bearingMagnetic")
	r.unit("bearingMagneticUnits", 'M')
	d.DistanceNM = r.optFloat("distance")
	r.unit("distanceUnits", 'N')
	d.WaypointID = r.optText("waypointID")
	if c, ok := r.optChar("faaMode", faaModeChars); ok {
		m, _ := faaModeOf(c)
		d.FaaMode = &m
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// BWW: Bearing, Waypoint to Waypoint
// Fields:
//
//	1: bearing, degrees true
//	2: T
//	3: bearing, degrees magnetic
//	4: M
//	5: destination waypoint ID
//	6: origin waypoint ID
type BWW struct {
	BearingTrue     *float64
	BearingMagnetic *float64
	ToWaypointID    *string
	FromWaypointID  *string
}

func (BWW) SentenceType() SentenceType { return TypeBWW }

func parseBWW(s Sentence) (Data, error) {
	if err := expect(s, TypeBWW); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d BWW
	d.BearingTrue = r.optFloat("bearingTrue")
	r.unit("bearingTrueUnits", 'T')
	d.BearingMagnetic = r.optFloat("bearingMagnetic")
	r.unit("bearingMagneticUnits", 'M')
	d.ToWaypointID = r.optText("toWaypointID")
	d.FromWaypointID = r.optText("fromWaypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// WNC: Distance, Waypoint to Waypoint
// Fields:
//
//	1: distance, nautical miles
//	2: N
//	3: distance, kilometers
//	4: K
//	5: destination waypoint ID
//	6: origin waypoint ID
type WNC struct {
	DistanceNM     *float64
	DistanceKM     *float64
	ToWaypointID   *string
	FromWaypointID *string
}

func (WNC) SentenceType() SentenceType { return TypeWNC }

func parseWNC(s Sentence) (Data, error) {
	if err := expect(s, TypeWNC); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d WNC
	d.DistanceNM = r.optFloat("distanceNM")
	r.unit("distanceNMUnits", 'N')
	d.DistanceKM = r.optFloat("distanceKM")
	r.unit("distanceKMUnits", 'K')
	d.ToWaypointID = r.optText("toWaypointID")
	d.FromWaypointID = r.optText("fromWaypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
