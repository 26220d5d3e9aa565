package nmea

// maxScanSentences bounds the number of sentences in one GSV scan.
const maxScanSentences = 15

// GSV: GNSS Satellites in View, one sentence of a multi-sentence
// scan. The constellation comes from the talker ID, not the payload.
// Fields:
//
//	1: total sentences in this scan
//	2: index of this sentence (1-based)
//	3: satellites in view
//	4..: up to four groups of (prn, elevation, azimuth, snr)
type GSV struct {
	Gnss             GnssType
	TotalSentences   int
	SentenceIndex    int
	SatellitesInView int
	Satellites       []Satellite
}

func (GSV) SentenceType() SentenceType { return TypeGSV }

func parseGSV(s Sentence) (Data, error) {
	if err := expect(s, TypeGSV); err != nil {
		return nil, err
	}
	gnss, err := gnssTypeOfTalker(s.Talker)
	if err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	d := GSV{Gnss: gnss}
	d.TotalSentences = r.uintIn("totalSentences", 1, maxScanSentences)
	d.SentenceIndex = r.uintIn("sentenceIndex", 1, maxScanSentences)
	d.SatellitesInView = r.uintIn("satellitesInView", 0, 99)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if d.SentenceIndex > d.TotalSentences {
		return nil, &PackIndexError{Index: d.SentenceIndex, Total: d.TotalSentences}
	}
	// Groups need at least prn, elevation and azimuth; the SNR of the
	// last group may be cut off. A lone trailing field (the NMEA 4.11
	// signal ID) is not a group and is ignored.
	for i := 0; i < 4 && r.remaining() >= 3; i++ {
		prn := r.optUint("prn")
		elevation := r.optFloat("elevation")
		azimuth := r.optFloat("azimuth")
		var snr *float64
		if r.remaining() > 0 {
			snr = r.optFloat("snr")
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		if prn == nil {
			// Empty slot, written as ",,,": the receiver pads the
			// sentence without a satellite.
			continue
		}
		d.Satellites = append(d.Satellites, Satellite{
			Gnss:      gnss,
			PRN:       *prn,
			Elevation: elevation,
			Azimuth:   azimuth,
			SNR:       snr,
		})
	}
	return d, nil
}
