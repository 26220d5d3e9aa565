package nmea

// TTMAngle says whether a TTM bearing is true or relative to own ship.
type TTMAngle uint8

const (
	TTMAngleTrue TTMAngle = iota
	TTMAngleRelative
)

// TTMUnit is the speed/distance unit of a TTM sentence.
type TTMUnit uint8

const (
	TTMUnitKM TTMUnit = iota
	TTMUnitNautical
	TTMUnitStatute
)

// TTMStatus is the tracking state of the target.
type TTMStatus uint8

const (
	TTMStatusLost TTMStatus = iota
	TTMStatusQuery
	TTMStatusTracking
)

// TTMAcquisition says how the target was acquired.
type TTMAcquisition uint8

const (
	TTMAcquisitionAutomatic TTMAcquisition = iota
	TTMAcquisitionManual
	TTMAcquisitionReported
)

// TTM: Tracked Target Message
// Fields:
//
//	1: target number (00..99)
//	2: target distance from own ship
//	3: bearing from own ship
//	4: bearing reference (T=true, R=relative)
//	5: target speed
//	6: target course
//	7: course reference (T=true, R=relative)
//	8: distance of closest point of approach
//	9: time to CPA, minutes (negative = receding)
//	10: speed/distance units (K=km, N=nautical, S=statute)
//	11: target name
//	12: target status (L=lost, Q=query, T=tracking)
//	13: reference target flag (R or empty)
//	14: time of data (hhmmss.sss)
//	15: acquisition type (A=automatic, M=manual, R=reported)
type TTM struct {
	TargetNumber    *int
	Distance        *float64
	Bearing         *float64
	BearingAngle    *TTMAngle
	Speed           *float64
	Course          *float64
	CourseAngle     *TTMAngle
	DistanceOfCPA   *float64
	TimeToCPA       *float64
	Unit            *TTMUnit
	Name            *string
	Status          *TTMStatus
	ReferenceTarget bool
	Time            *Time
	Acquisition     *TTMAcquisition
}

func (TTM) SentenceType() SentenceType { return TypeTTM }

func parseTTM(s Sentence) (Data, error) {
	if err := expect(s, TypeTTM); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d TTM
	d.TargetNumber = r.optUintIn("targetNumber", 0, 99)
	d.Distance = r.optFloat("distance")
	d.Bearing = r.optFloat("bearing")
	d.BearingAngle = optTTMAngle(r, "bearingReference")
	d.Speed = r.optFloat("speed")
	d.Course = r.optFloat("course")
	d.CourseAngle = optTTMAngle(r, "courseReference")
	d.DistanceOfCPA = r.optFloat("distanceOfCPA")
	d.TimeToCPA = r.optFloat("timeToCPA")
	if c, ok := r.optChar("units", "KNS"); ok {
		var u TTMUnit
		switch c {
		case 'K':
			u = TTMUnitKM
		case 'N':
			u = TTMUnitNautical
		case 'S':
			u = TTMUnitStatute
		}
		d.Unit = &u
	}
	d.Name = r.optText("name")
	if c, ok := r.optChar("status", "LQT"); ok {
		var st TTMStatus
		switch c {
		case 'L':
			st = TTMStatusLost
		case 'Q':
			st = TTMStatusQuery
		case 'T':
			st = TTMStatusTracking
		}
		d.Status = &st
	}
	if c, ok := r.optChar("referenceTarget", "R"); ok {
		d.ReferenceTarget = c == 'R'
	}
	d.Time = r.optTimeOfDay("time")
	if c, ok := r.optChar("acquisition", "AMR"); ok {
		var a TTMAcquisition
		switch c {
		case 'A':
			a = TTMAcquisitionAutomatic
		case 'M':
			a = TTMAcquisitionManual
		case 'R':
			a = TTMAcquisitionReported
		}
		d.Acquisition = &a
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func optTTMAngle(r *fieldReader, name string) *TTMAngle {
	c, ok := r.optChar(name, "TR")
	if !ok {
		return nil
	}
	a := TTMAngleTrue
	if c == 'R' {
		a = TTMAngleRelative
	}
	return &a
}
