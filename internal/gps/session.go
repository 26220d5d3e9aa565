package gps

import (
	"time"

	"nmea-hub/internal/fix"
	"nmea-hub/internal/nmea"
)

// session accumulates decoded sentences from one receiver connection and
// turns the aggregator state into publishable snapshots.
type session struct {
	agg *fix.Aggregator

	source string
	device string
	baud   int
	addr   string

	sentences uint64
	rejected  uint64
	fixes     uint64

	lastFixWall time.Time
}

func newSession(cfg Config) (*session, error) {
	required := cfg.Required
	if len(required) == 0 {
		required = []nmea.SentenceType{nmea.TypeRMC}
	}
	agg, err := fix.New(required...)
	if err != nil {
		return nil, err
	}
	return &session{agg: agg, source: cfg.Source, device: cfg.Device, baud: cfg.Baud, addr: cfg.Addr}, nil
}

// apply feeds one raw line into the aggregator. The returned error covers
// envelope and decode failures; the line still counts toward the totals.
func (st *session) apply(now time.Time, line string) error {
	st.sentences++
	ft, err := st.agg.IngestForFix(line)
	if err != nil {
		st.rejected++
		return err
	}
	if ft.IsValid() {
		st.fixes++
		st.lastFixWall = now
	}
	return nil
}

func (st *session) snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Enabled:   true,
		Source:    st.source,
		Device:    st.device,
		Baud:      st.baud,
		Addr:      st.addr,
		Sentences: st.sentences,
		Rejected:  st.rejected,
		Fixes:     st.fixes,
	}

	a := st.agg
	if ft := a.FixType(); ft != nil {
		snap.Valid = ft.IsValid()
		snap.FixType = ft.String()
	}
	snap.LatDeg = a.Latitude()
	snap.LonDeg = a.Longitude()
	snap.AltM = a.Altitude()
	snap.GeoidSepM = a.GeoidSeparation()
	snap.EllipsoidAltM = a.GeoidAltitude()
	snap.SpeedKt = a.SpeedKnots()
	snap.TrackDeg = a.CourseTrue()
	snap.Satellites = a.FixSatellites()
	snap.HDOP = a.HDOP()
	snap.VDOP = a.VDOP()
	snap.PDOP = a.PDOP()
	snap.FixPRNs = a.FixSatellitePRNs()
	snap.SatsInView = len(a.Satellites())

	if t := a.FixTime(); t != nil {
		snap.FixTimeUTC = t.String()
	}
	if d := a.FixDate(); d != nil {
		snap.FixDate = d.String()
	}
	if txt := a.LastTxt(); txt != nil {
		snap.LastText = txt.Text
	}
	if !st.lastFixWall.IsZero() {
		snap.FixAgeSec = now.Sub(st.lastFixWall).Seconds()
	}
	return snap
}
