package nmea

// Heading and water-speed sentences: HDT, VHW.

// HDT: Heading, True
// Fields:
//
//	1: heading, degrees true
//	2: T
type HDT struct {
	Heading *float64
}

func (HDT) SentenceType() SentenceType { return TypeHDT }

func parseHDT(s Sentence) (Data, error) {
	if err := expect(s, TypeHDT); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d HDT
	d.Heading = r.optFloat("heading")
	r.unit("headingUnits", 'T')
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// VHW: Water Speed and Heading
// Fields:
//
//	1: heading, degrees true
//	2: T
//	3: heading, degrees magnetic
//	4: M
//	5: speed through water, knots
//	6: N
//	7: speed through water, km/h
//	8: K
type VHW struct {
	HeadingTrue     *float64
	HeadingMagnetic *float64
	SpeedKnots      *float64
	SpeedKPH        *float64
}

func (VHW) SentenceType() SentenceType { return TypeVHW }

func parseVHW(s Sentence) (Data, error) {
	if err := expect(s, TypeVHW); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d VHW
	d.HeadingTrue = r.optFloat("headingTrue")
	r.unit("headingTrueUnits", 'T')
	d.HeadingMagnetic = r.optFloat("headingMagnetic")
	r.unit("headingMagneticUnits", 'M')
	d.SpeedKnots = r.optFloat("speedKnots")
	r.unit("speedKnotsUnits", 'N')
	d.SpeedKPH = r.optFloat("speedKPH")
	r.unit("speedKPHUnits", 'K')
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
