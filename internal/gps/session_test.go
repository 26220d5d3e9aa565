package gps

import (
	"context"
	"strings"
	"testing"
	"time"

	"nmea-hub/internal/nmea"
)

func newTestSession(t *testing.T, required ...nmea.SentenceType) *session {
	t.Helper()
	st, err := newSession(Config{Source: "serial", Device: "/dev/ttyACM0", Baud: 9600, Required: required})
	if err != nil {
		t.Fatalf("newSession() error: %v", err)
	}
	return st
}

func TestSession_SingleGGAFix(t *testing.T) {
	st := newTestSession(t, nmea.TypeGGA)
	now := time.Date(2026, 8, 29, 9, 27, 50, 0, time.UTC)

	if err := st.apply(now, "$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76"); err != nil {
		t.Fatalf("apply() error: %v", err)
	}
	snap := st.snapshot(now)

	if !snap.Valid {
		t.Fatalf("snapshot not valid: %+v", snap)
	}
	if snap.FixType != "gps" {
		t.Fatalf("fix_type=%q want gps", snap.FixType)
	}
	if snap.LatDeg == nil || snap.LonDeg == nil {
		t.Fatalf("expected lat/lon present")
	}
	wantLat := 53 + 21.6802/60
	wantLon := -(6 + 30.3372/60)
	if d := *snap.LatDeg - wantLat; d > 1e-9 || d < -1e-9 {
		t.Fatalf("lat=%v want %v", *snap.LatDeg, wantLat)
	}
	if d := *snap.LonDeg - wantLon; d > 1e-9 || d < -1e-9 {
		t.Fatalf("lon=%v want %v", *snap.LonDeg, wantLon)
	}
	if snap.AltM == nil || *snap.AltM != 61.7 {
		t.Fatalf("alt=%v want 61.7", snap.AltM)
	}
	if snap.EllipsoidAltM == nil || *snap.EllipsoidAltM != 61.7+55.2 {
		t.Fatalf("ellipsoid alt=%v want %v", snap.EllipsoidAltM, 61.7+55.2)
	}
	if snap.Satellites == nil || *snap.Satellites != 8 {
		t.Fatalf("satellites=%v want 8", snap.Satellites)
	}
	if snap.FixTimeUTC != "09:27:50" {
		t.Fatalf("fix_time_utc=%q want 09:27:50", snap.FixTimeUTC)
	}
	if snap.Fixes != 1 || snap.Sentences != 1 || snap.Rejected != 0 {
		t.Fatalf("counters=%d/%d/%d want 1/1/0", snap.Fixes, snap.Sentences, snap.Rejected)
	}
}

func TestSession_RequiredSetGatesFix(t *testing.T) {
	st := newTestSession(t, nmea.TypeGGA, nmea.TypeRMC)
	now := time.Now().UTC()

	if err := st.apply(now, "$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76"); err != nil {
		t.Fatalf("apply(GGA) error: %v", err)
	}
	if st.snapshot(now).Fixes != 0 {
		t.Fatalf("fix reported before required set complete")
	}

	if err := st.apply(now, "$GPRMC,092750.000,A,5321.6802,N,00630.3372,W,0.02,31.66,280511,,,A*43"); err != nil {
		t.Fatalf("apply(RMC) error: %v", err)
	}
	snap := st.snapshot(now)
	if snap.Fixes != 1 {
		t.Fatalf("fixes=%d want 1", snap.Fixes)
	}
	if snap.SpeedKt == nil || *snap.SpeedKt != 0.02 {
		t.Fatalf("speed=%v want 0.02", snap.SpeedKt)
	}
	if snap.FixDate != "0011-05-28" {
		t.Fatalf("fix_date=%q want 0011-05-28", snap.FixDate)
	}
}

func TestSession_BadChecksumCountsRejected(t *testing.T) {
	st := newTestSession(t, nmea.TypeGGA)
	now := time.Now().UTC()

	err := st.apply(now, "$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*77")
	if err == nil {
		t.Fatalf("expected checksum error")
	}
	snap := st.snapshot(now)
	if snap.Sentences != 1 || snap.Rejected != 1 {
		t.Fatalf("counters=%d/%d want 1/1", snap.Sentences, snap.Rejected)
	}
}

func TestSession_SatellitesInView(t *testing.T) {
	st := newTestSession(t, nmea.TypeRMC)
	now := time.Now().UTC()

	lines := []string{
		"$GPGSV,3,1,11,10,63,137,17,07,61,098,15,05,59,290,20,08,54,157,30*70",
		"$GPGSV,3,2,11,02,39,223,19,13,28,070,17,26,23,252,,04,14,186,14*79",
		"$GPGSV,3,3,11,29,09,301,24,16,09,020,,36,,,*76",
	}
	for _, l := range lines {
		if err := st.apply(now, l); err != nil {
			t.Fatalf("apply(%q) error: %v", l, err)
		}
	}
	if got := st.snapshot(now).SatsInView; got != 11 {
		t.Fatalf("sats_in_view=%d want 11", got)
	}
}

func TestReadLoop_PublishesSnapshots(t *testing.T) {
	s := New(Config{Enable: true, Source: "serial", Device: "test", Required: []nmea.SentenceType{nmea.TypeGGA}})
	st, err := newSession(Config{Source: "serial", Device: "test", Required: []nmea.SentenceType{nmea.TypeGGA}})
	if err != nil {
		t.Fatalf("newSession() error: %v", err)
	}

	feed := strings.Join([]string{
		"noise without a dollar prefix",
		"$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76",
		"",
	}, "\r\n")

	s.readLoop(context.Background(), strings.NewReader(feed), st)

	snap := s.Snapshot()
	if !snap.Valid {
		t.Fatalf("snapshot not valid after read loop: %+v", snap)
	}
	if snap.Fixes != 1 {
		t.Fatalf("fixes=%d want 1", snap.Fixes)
	}
	if snap.LastError == "" || !strings.Contains(snap.LastError, "read stopped") {
		t.Fatalf("expected EOF recorded in last_error, got %q", snap.LastError)
	}
}

func TestService_DisabledStartIsNoop(t *testing.T) {
	s := New(Config{Enable: false})
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	snap := s.Snapshot()
	if snap.Enabled {
		t.Fatalf("snapshot reports enabled for disabled service")
	}
	s.Close()
}
