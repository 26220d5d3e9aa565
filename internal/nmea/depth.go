package nmea

// Depth sounder sentences: DBK, DBS, DPT.

// DBK: Depth Below Keel
// Fields:
//
//	1: depth, feet
//	2: f
//	3: depth, meters
//	4: M
//	5: depth, fathoms
//	6: F
type DBK struct {
	DepthFeet    *float64
	DepthMeters  *float64
	DepthFathoms *float64
}

func (DBK) SentenceType() SentenceType { return TypeDBK }

func parseDBK(s Sentence) (Data, error) {
	if err := expect(s, TypeDBK); err != nil {
		return nil, err
	}
	feet, meters, fathoms, err := parseDepthTriple(s)
	if err != nil {
		return nil, err
	}
	return DBK{DepthFeet: feet, DepthMeters: meters, DepthFathoms: fathoms}, nil
}

// DBS: Depth Below Surface, same layout as DBK.
type DBS struct {
	DepthFeet    *float64
	DepthMeters  *float64
	DepthFathoms *float64
}

func (DBS) SentenceType() SentenceType { return TypeDBS }

func parseDBS(s Sentence) (Data, error) {
	if err := expect(s, TypeDBS); err != nil {
		return nil, err
	}
	feet, meters, fathoms, err := parseDepthTriple(s)
	if err != nil {
		return nil, err
	}
	return DBS{DepthFeet: feet, DepthMeters: meters, DepthFathoms: fathoms}, nil
}

func parseDepthTriple(s Sentence) (feet, meters, fathoms *float64, err error) {
	r := newFieldReader(s)
	feet = r.optFloat("depthFeet")
	r.unit("depthFeetUnits", 'f')
	meters = r.optFloat("depthMeters")
	r.unit("depthMetersUnits", 'M')
	fathoms = r.optFloat("depthFathoms")
	r.unit("depthFathomsUnits", 'F')
	if err := r.Err(); err != nil {
		return nil, nil, nil, err
	}
	return feet, meters, fathoms, nil
}

// DPT: Depth of Water
// Fields:
//
//	1: water depth relative to transducer, meters
//	2: transducer offset, meters (positive = to waterline)
//	3: maximum range scale in use, meters
type DPT struct {
	Depth         *float64
	Offset        *float64
	MaxRangeScale *float64
}

func (DPT) SentenceType() SentenceType { return TypeDPT }

func parseDPT(s Sentence) (Data, error) {
	if err := expect(s, TypeDPT); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d DPT
	d.Depth = r.optFloat("depth")
	d.Offset = r.optFloat("offset")
	d.MaxRangeScale = r.optFloat("maxRangeScale")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
