package nmea

// Autopilot sentences: APA, APB.

// SteerDirection is the side to steer toward to reduce cross-track
// error.
type SteerDirection uint8

const (
	SteerLeft SteerDirection = iota
	SteerRight
)

// XTEUnit is the unit of an autopilot cross-track error field.
type XTEUnit uint8

const (
	XTENauticalMiles XTEUnit = iota
	XTEKilometers
)

// BearingReference says whether an autopilot bearing or heading is
// magnetic or true.
type BearingReference uint8

const (
	BearingMagnetic BearingReference = iota
	BearingTrue
)

// APA: Autopilot Sentence "A"
// Fields:
//
//	1: status (V = warning, no reliable fix)
//	2: status (V = Loran-C cycle lock warning)
//	3: cross-track error magnitude
//	4: direction to steer (L/R)
//	5: cross-track units (N = nautical miles, K = kilometers)
//	6: arrival circle entered (A=yes, V=no)
//	7: perpendicular passed at waypoint (A=yes, V=no)
//	8: bearing, origin to destination
//	9: bearing reference (M = magnetic, T = true)
//	10: destination waypoint ID
type APA struct {
	Valid                bool
	CycleLockValid       bool
	CrossTrackError      *float64
	SteerDirection       *SteerDirection
	CrossTrackUnits      *XTEUnit
	ArrivalCircleEntered bool
	PerpendicularPassed  bool
	BearingOriginToDest  *float64
	BearingReference     *BearingReference
	WaypointID           *string
}

func (APA) SentenceType() SentenceType { return TypeAPA }

func parseAPA(s Sentence) (Data, error) {
	if err := expect(s, TypeAPA); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d APA
	d.Valid = r.char("status", "AV") == 'A'
	d.CycleLockValid = r.char("cycleLockStatus", "AV") == 'A'
	d.CrossTrackError = r.optFloat("crossTrackError")
	d.SteerDirection = optSteerDirection(r)
	d.CrossTrackUnits = optXTEUnit(r)
	d.ArrivalCircleEntered = r.char("arrivalCircleEntered", "AV") == 'A'
	d.PerpendicularPassed = r.char("perpendicularPassed", "AV") == 'A'
	d.BearingOriginToDest = r.optFloat("bearingOriginToDest")
	d.BearingReference = optBearingReference(r, "bearingReference")
	d.WaypointID = r.optText("waypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// APB: Autopilot Sentence "B"
// Fields 1..10 as APA, then:
//
//	11: bearing, present position to destination
//	12: bearing reference (M/T)
//	13: heading to steer to destination
//	14: heading reference (M/T)
//	15: FAA mode (NMEA 2.3)
type APB struct {
	Valid                 bool
	CycleLockValid        bool
	CrossTrackError       *float64
	SteerDirection        *SteerDirection
	CrossTrackUnits       *XTEUnit
	ArrivalCircleEntered  bool
	PerpendicularPassed   bool
	BearingOriginToDest   *float64
	BearingReference      *BearingReference
	WaypointID            *string
	BearingPositionToDest *float64
	BearingPositionRef    *BearingReference
	HeadingToSteer        *float64
	HeadingToSteerRef     *BearingReference
	FaaMode               *FaaMode
}

func (APB) SentenceType() SentenceType { return TypeAPB }

func parseAPB(s Sentence) (Data, error) {
	if err := expect(s, TypeAPB); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d APB
	d.Valid = r.char("status", "AV") == 'A'
	d.CycleLockValid = r.char("cycleLockStatus", "AV") == 'A'
	d.CrossTrackError = r.optFloat("crossTrackError")
	d.SteerDirection = optSteerDirection(r)
	d.CrossTrackUnits = optXTEUnit(r)
	d.ArrivalCircleEntered = r.char("arrivalCircleEntered", "AV") == 'A'
	d.PerpendicularPassed = r.char("perpendicularPassed", "AV") == 'A'
	d.BearingOriginToDest = r.optFloat("bearingOriginToDest")
	d.BearingReference = optBearingReference(r, "bearingReference")
	d.WaypointID = r.optText("waypointID")
	d.BearingPositionToDest = r.optFloat("bearingPositionToDest")
	d.BearingPositionRef = optBearingReference(r, "bearingPositionRef")
	d.HeadingToSteer = r.optFloat("headingToSteer")
	d.HeadingToSteerRef = optBearingReference(r, "headingToSteerRef")
	if c, ok := r.optChar("faaMode", faaModeChars); ok {
		m, _ := faaModeOf(c)
		d.FaaMode = &m
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func optSteerDirection(r *fieldReader) *SteerDirection {
	c, ok := r.optChar("steerDirection", "LR")
	if !ok {
		return nil
	}
	sd := SteerLeft
	if c == 'R' {
		sd = SteerRight
	}
	return &sd
}

func optXTEUnit(r *fieldReader) *XTEUnit {
	c, ok := r.optChar("crossTrackUnits", "NK")
	if !ok {
		return nil
	}
	u := XTENauticalMiles
	if c == 'K' {
		u = XTEKilometers
	}
	return &u
}

func optBearingReference(r *fieldReader, name string) *BearingReference {
	c, ok := r.optChar(name, "MT")
	if !ok {
		return nil
	}
	ref := BearingMagnetic
	if c == 'T' {
		ref = BearingTrue
	}
	return &ref
}
