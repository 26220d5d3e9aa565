package nmea

// Error-estimate sentences: GBS, GST.

// GBS: GNSS Satellite Fault Detection
// Fields:
//
//	1: time of the fix the errors apply to (hhmmss.sss)
//	2: expected latitude error, meters
//	3: expected longitude error, meters
//	4: expected altitude error, meters
//	5: PRN of the most likely failed satellite
//	6: probability of missed detection
//	7: bias estimate on the failed satellite, meters
//	8: standard deviation of the bias estimate
type GBS struct {
	Time            *Time
	LatError        *float64
	LonError        *float64
	AltError        *float64
	FailedPRN       *int
	MissProbability *float64
	BiasEstimate    *float64
	BiasStdDev      *float64
}

func (GBS) SentenceType() SentenceType { return TypeGBS }

func parseGBS(s Sentence) (Data, error) {
	if err := expect(s, TypeGBS); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GBS
	d.Time = r.optTimeOfDay("time")
	d.LatError = r.optFloat("latError")
	d.LonError = r.optFloat("lonError")
	d.AltError = r.optFloat("altError")
	d.FailedPRN = r.optUint("failedPRN")
	d.MissProbability = r.optFloat("missProbability")
	d.BiasEstimate = r.optFloat("biasEstimate")
	d.BiasStdDev = r.optFloat("biasStdDev")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// GST: GNSS Pseudorange Error Statistics
// Fields:
//
//	1: time of the associated fix (hhmmss.sss)
//	2: RMS of the pseudorange residuals
//	3: error ellipse semi-major axis, meters
//	4: error ellipse semi-minor axis, meters
//	5: error ellipse orientation, degrees true
//	6: latitude standard deviation, meters
//	7: longitude standard deviation, meters
//	8: altitude standard deviation, meters
type GST struct {
	Time           *Time
	ResidualRMS    *float64
	SemiMajorError *float64
	SemiMinorError *float64
	Orientation    *float64
	LatStdDev      *float64
	LonStdDev      *float64
	AltStdDev      *float64
}

func (GST) SentenceType() SentenceType { return TypeGST }

func parseGST(s Sentence) (Data, error) {
	if err := expect(s, TypeGST); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d GST
	d.Time = r.optTimeOfDay("time")
	d.ResidualRMS = r.optFloat("residualRMS")
	d.SemiMajorError = r.optFloat("semiMajorError")
	d.SemiMinorError = r.optFloat("semiMinorError")
	d.Orientation = r.optFloat("orientation")
	d.LatStdDev = r.optFloat("latStdDev")
	d.LonStdDev = r.optFloat("lonStdDev")
	d.AltStdDev = r.optFloat("altStdDev")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
