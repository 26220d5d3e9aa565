package nmea

// ALM: GPS Almanac Data
// Fields:
//
//	1: total number of ALM sentences in this set
//	2: sentence number
//	3: satellite PRN (01..32)
//	4: GPS week number
//	5: SV health (hex)
//	6: eccentricity (hex)
//	7: almanac reference time (hex)
//	8: inclination angle (hex)
//	9: rate of right ascension (hex)
//	10: root of semi-major axis (hex)
//	11: argument of perigee (hex)
//	12: longitude of ascension node (hex)
//	13: mean anomaly (hex)
//	14: F0 clock parameter (hex)
//	15: F1 clock parameter (hex)
type ALM struct {
	TotalSentences     *int
	SentenceIndex      *int
	PRN                *int
	GPSWeek            *int
	SVHealth           *uint32
	Eccentricity       *uint32
	ReferenceTime      *uint32
	Inclination        *uint32
	AscensionRate      *uint32
	SemiMajorAxisRoot  *uint32
	ArgumentOfPerigee  *uint32
	AscensionNode      *uint32
	MeanAnomaly        *uint32
	ClockParameterF0   *uint32
	ClockParameterF1   *uint32
}

func (ALM) SentenceType() SentenceType { return TypeALM }

func parseALM(s Sentence) (Data, error) {
	if err := expect(s, TypeALM); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d ALM
	d.TotalSentences = r.optUintIn("totalSentences", 1, 99)
	d.SentenceIndex = r.optUintIn("sentenceIndex", 1, 99)
	d.PRN = r.optUintIn("prn", 1, 32)
	d.GPSWeek = r.optUintIn("gpsWeek", 0, 8191)
	d.SVHealth = r.optHex("svHealth")
	d.Eccentricity = r.optHex("eccentricity")
	d.ReferenceTime = r.optHex("referenceTime")
	d.Inclination = r.optHex("inclination")
	d.AscensionRate = r.optHex("ascensionRate")
	d.SemiMajorAxisRoot = r.optHex("semiMajorAxisRoot")
	d.ArgumentOfPerigee = r.optHex("argumentOfPerigee")
	d.AscensionNode = r.optHex("ascensionNode")
	d.MeanAnomaly = r.optHex("meanAnomaly")
	d.ClockParameterF0 = r.optHex("clockParameterF0")
	d.ClockParameterF1 = r.optHex("clockParameterF1")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
