// Package fix folds a stream of NMEA sentences into the current
// navigation solution. Sentences sharing a fix timestamp form one
// tick; a validity verdict is only produced once every required
// sentence type has contributed to the current tick.
package fix

import (
	"errors"
	"fmt"
	"sort"

	"nmea-hub/internal/nmea"
)

// ErrNoRequiredSentences is returned when an Aggregator is created
// without any sentence type to wait for.
var ErrNoRequiredSentences = errors.New("fix: required sentence set is empty")

// Aggregator accumulates position, motion and satellite data across
// sentences. The satellite scans survive ticks, everything else is
// transient.
type Aggregator struct {
	fixTime          *nmea.Time
	fixDate          *nmea.Date
	fixType          *nmea.FixType
	latitude         *float64
	longitude        *float64
	altitude         *float64
	geoidSeparation  *float64
	speedKnots       *float64
	courseTrue       *float64
	fixSatellites    *int
	hdop             *float64
	vdop             *float64
	pdop             *float64
	fixSatellitePRNs []int
	lastTxt          *nmea.TXT

	scans    [6]satsPack
	required nmea.SentenceSet

	lastFixTime *nmea.Time
	thisTick    nmea.SentenceSet
}

// New builds an Aggregator that reports a valid fix only once all the
// given sentence types have been merged for the current fix time.
func New(required ...nmea.SentenceType) (*Aggregator, error) {
	if len(required) == 0 {
		return nil, ErrNoRequiredSentences
	}
	a := &Aggregator{}
	for _, t := range required {
		a.required.Insert(t)
	}
	return a, nil
}

func (a *Aggregator) FixTime() *nmea.Time         { return a.fixTime }
func (a *Aggregator) FixDate() *nmea.Date         { return a.fixDate }
func (a *Aggregator) FixType() *nmea.FixType      { return a.fixType }
func (a *Aggregator) Latitude() *float64          { return a.latitude }
func (a *Aggregator) Longitude() *float64         { return a.longitude }
func (a *Aggregator) Altitude() *float64          { return a.altitude }
func (a *Aggregator) GeoidSeparation() *float64   { return a.geoidSeparation }
func (a *Aggregator) SpeedKnots() *float64        { return a.speedKnots }
func (a *Aggregator) CourseTrue() *float64        { return a.courseTrue }
func (a *Aggregator) FixSatellites() *int         { return a.fixSatellites }
func (a *Aggregator) HDOP() *float64              { return a.hdop }
func (a *Aggregator) VDOP() *float64              { return a.vdop }
func (a *Aggregator) PDOP() *float64              { return a.pdop }
func (a *Aggregator) FixSatellitePRNs() []int     { return a.fixSatellitePRNs }
func (a *Aggregator) LastTxt() *nmea.TXT          { return a.lastTxt }

// GeoidAltitude is the altitude above the WGS-84 ellipsoid, available
// when both the MSL altitude and the geoid separation are known.
func (a *Aggregator) GeoidAltitude() *float64 {
	if a.altitude == nil || a.geoidSeparation == nil {
		return nil
	}
	v := *a.altitude + *a.geoidSeparation
	return &v
}

// Satellites is the union of the most recent scan of every
// constellation, deduplicated and sorted by constellation and PRN.
func (a *Aggregator) Satellites() []nmea.Satellite {
	var out []nmea.Satellite
	seen := make(map[[2]int]struct{})
	for i := range a.scans {
		packs := a.scans[i].data
		for j := len(packs) - 1; j >= 0; j-- {
			for _, sat := range packs[j] {
				key := [2]int{int(sat.Gnss), sat.PRN}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, sat)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gnss != out[j].Gnss {
			return out[i].Gnss < out[j].Gnss
		}
		return out[i].PRN < out[j].PRN
	})
	return out
}

// Ingest decodes one sentence and merges it into the running state.
// The sentence type is returned even when the type cannot be merged,
// so callers can log what they are skipping.
func (a *Aggregator) Ingest(line string) (nmea.SentenceType, error) {
	d, err := nmea.Decode(line)
	if err != nil {
		return nmea.TypeUnknown, err
	}
	switch v := d.(type) {
	case nmea.GGA:
		a.mergeGGA(v)
	case nmea.RMC:
		a.mergeRMC(v)
	case nmea.GNS:
		a.mergeGNS(v)
	case nmea.GLL:
		a.mergeGLL(v)
	case nmea.GSA:
		a.mergeGSA(v)
	case nmea.GSV:
		a.mergeGSV(v)
	case nmea.VTG:
		a.mergeVTG(v)
	case nmea.TXT:
		a.mergeTXT(v)
	default:
		t := d.SentenceType()
		return t, fmt.Errorf("fix: %s: %w", t, &nmea.UnsupportedTypeError{Type: t})
	}
	return d.SentenceType(), nil
}

// IngestForFix merges one sentence and reports the fix validity after
// it, per the tick rules: a sentence carrying a different fix time
// than the previous one starts a fresh tick, and validity requires
// every required type to have been merged since.
func (a *Aggregator) IngestForFix(line string) (nmea.FixType, error) {
	d, err := nmea.Decode(line)
	if err != nil {
		return nmea.FixInvalid, err
	}
	switch v := d.(type) {
	case nmea.GSA:
		a.mergeGSA(v)
		return nmea.FixInvalid, nil
	case nmea.GSV:
		a.mergeGSV(v)
		return nmea.FixInvalid, nil
	case nmea.VTG:
		// VTG has no time field, so it only participates when the
		// caller explicitly requires it.
		if !a.required.Contains(nmea.TypeVTG) {
			return nmea.FixInvalid, nil
		}
		if v.CourseTrue == nil || v.SpeedKnots == nil {
			a.clearPositionInfo()
			return nmea.FixInvalid, nil
		}
		a.mergeVTG(v)
		a.thisTick.Insert(nmea.TypeVTG)
	case nmea.RMC:
		if v.Status == nmea.StatusInvalid {
			a.clearPositionInfo()
			return nmea.FixInvalid, nil
		}
		if !a.updateFixTime(v.Time) {
			return nmea.FixInvalid, nil
		}
		a.mergeRMC(v)
		a.thisTick.Insert(nmea.TypeRMC)
	case nmea.GNS:
		if !v.FaaModes.FixType().IsValid() {
			a.clearPositionInfo()
			return nmea.FixInvalid, nil
		}
		if !a.updateFixTime(v.Time) {
			return nmea.FixInvalid, nil
		}
		a.mergeGNS(v)
		a.thisTick.Insert(nmea.TypeGNS)
	case nmea.GGA:
		if v.FixType == nmea.FixInvalid {
			a.clearPositionInfo()
			return nmea.FixInvalid, nil
		}
		if !a.updateFixTime(v.Time) {
			return nmea.FixInvalid, nil
		}
		a.mergeGGA(v)
		a.thisTick.Insert(nmea.TypeGGA)
	case nmea.GLL:
		// GLL refreshes the state but never counts toward validity.
		t := v.Time
		if !a.updateFixTime(&t) {
			return nmea.FixInvalid, nil
		}
		a.mergeGLL(v)
		return nmea.FixInvalid, nil
	case nmea.TXT:
		a.mergeTXT(v)
		return nmea.FixInvalid, nil
	default:
		return nmea.FixInvalid, nil
	}
	if a.fixType == nil || *a.fixType == nmea.FixInvalid {
		return nmea.FixInvalid, nil
	}
	if a.required.SubsetOf(a.thisTick) {
		return *a.fixType, nil
	}
	return nmea.FixInvalid, nil
}

func (a *Aggregator) mergeGGA(d nmea.GGA) {
	a.fixTime = d.Time
	a.latitude = d.Latitude
	a.longitude = d.Longitude
	ft := d.FixType
	a.fixType = &ft
	a.fixSatellites = d.Satellites
	a.hdop = d.HDOP
	a.altitude = d.Altitude
	a.geoidSeparation = d.GeoidSeparation
}

func (a *Aggregator) mergeRMC(d nmea.RMC) {
	a.fixTime = d.Time
	a.fixDate = d.Date
	ft := nmea.FixInvalid
	switch d.Status {
	case nmea.StatusValid:
		ft = nmea.FixGPS
	case nmea.StatusValidDifferential:
		ft = nmea.FixDGPS
	}
	a.fixType = &ft
	a.latitude = d.Latitude
	a.longitude = d.Longitude
	a.speedKnots = d.SpeedKnots
	a.courseTrue = d.CourseTrue
}

func (a *Aggregator) mergeGNS(d nmea.GNS) {
	a.fixTime = d.Time
	ft := d.FaaModes.FixType()
	a.fixType = &ft
	a.latitude = d.Latitude
	a.longitude = d.Longitude
	a.altitude = d.Altitude
	a.hdop = d.HDOP
	a.geoidSeparation = d.GeoidSeparation
}

func (a *Aggregator) mergeGLL(d nmea.GLL) {
	a.latitude = d.Latitude
	a.longitude = d.Longitude
	t := d.Time
	a.fixTime = &t
	var ft nmea.FixType
	switch {
	case d.FaaMode != nil:
		ft = d.FaaMode.FixType()
	case d.Valid:
		ft = nmea.FixGPS
	default:
		ft = nmea.FixInvalid
	}
	a.fixType = &ft
}

func (a *Aggregator) mergeGSA(d nmea.GSA) {
	a.fixSatellitePRNs = d.FixSatellites
	a.hdop = d.HDOP
	a.vdop = d.VDOP
	a.pdop = d.PDOP
}

func (a *Aggregator) mergeGSV(d nmea.GSV) {
	s := &a.scans[d.Gnss]
	if d.TotalSentences > s.maxLen {
		s.maxLen = d.TotalSentences
	}
	s.data = append(s.data, d.Satellites)
	if len(s.data) > s.maxLen {
		s.data = s.data[1:]
	}
}

func (a *Aggregator) mergeVTG(d nmea.VTG) {
	a.speedKnots = d.SpeedKnots
	a.courseTrue = d.CourseTrue
}

func (a *Aggregator) mergeTXT(d nmea.TXT) {
	t := d
	a.lastTxt = &t
}

// newTick drops everything contributed by the previous fix time. The
// satellite scans, the required set and the last fix time survive.
func (a *Aggregator) newTick() {
	scans := a.scans
	required := a.required
	lastFixTime := a.lastFixTime
	*a = Aggregator{
		scans:       scans,
		required:    required,
		lastFixTime: lastFixTime,
	}
}

func (a *Aggregator) clearPositionInfo() {
	a.lastFixTime = nil
	a.newTick()
}

// updateFixTime starts a new tick when the sentence carries a fix
// time different from the current one. A sentence without a fix time
// invalidates the accumulated position entirely.
func (a *Aggregator) updateFixTime(t *nmea.Time) bool {
	switch {
	case a.lastFixTime != nil && t != nil:
		if *a.lastFixTime != *t {
			a.newTick()
			v := *t
			a.lastFixTime = &v
		}
	case a.lastFixTime == nil && t != nil:
		v := *t
		a.lastFixTime = &v
	default:
		a.clearPositionInfo()
		return false
	}
	return true
}

// satsPack is the ring of recent GSV sentences for one constellation.
// maxLen tracks the largest scan announced so far, so a full scan is
// retained even while the next one is being received.
type satsPack struct {
	data   [][]nmea.Satellite
	maxLen int
}

func (a *Aggregator) String() string {
	return fmt.Sprintf("fix at %v: lat %v lon %v alt %v, %d satellites",
		a.fixTime, fmtPtr(a.latitude), fmtPtr(a.longitude), fmtPtr(a.altitude), len(a.Satellites()))
}

func fmtPtr(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.6f", *v)
}
