package nmea

import (
	"errors"
	"math"
	"testing"
	"time"
)

func decodeAs[T Data](t *testing.T, payload string) T {
	t.Helper()
	d, err := Decode(nmeaLine(payload))
	if err != nil {
		t.Fatalf("decode %q: %v", payload, err)
	}
	v, ok := d.(T)
	if !ok {
		t.Fatalf("decode %q: unexpected type %T", payload, d)
	}
	return v
}

func approx(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: expected %v, got nil", name, want)
	}
	if math.Abs(*got-want) > 1e-7 {
		t.Fatalf("%s: expected %v, got %v", name, want, *got)
	}
}

func TestDecodeGGA_EndToEnd(t *testing.T) {
	d, err := Decode("$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	g, ok := d.(GGA)
	if !ok {
		t.Fatalf("unexpected type %T", d)
	}
	if g.Time == nil || *g.Time != (Time{Hour: 9, Minute: 27, Second: 50}) {
		t.Fatalf("unexpected time %v", g.Time)
	}
	approx(t, "lat", g.Latitude, 53.0+21.6802/60)
	approx(t, "lon", g.Longitude, -(6.0 + 30.3372/60))
	if g.FixType != FixGPS {
		t.Fatalf("expected gps fix, got %s", g.FixType)
	}
	if g.Satellites == nil || *g.Satellites != 8 {
		t.Fatalf("expected 8 satellites, got %v", g.Satellites)
	}
	approx(t, "hdop", g.HDOP, 1.03)
	approx(t, "altitude", g.Altitude, 61.7)
	approx(t, "geoidSeparation", g.GeoidSeparation, 55.2)
}

func TestDecodeGGA_EmptyPosition(t *testing.T) {
	g := decodeAs[GGA](t, "GPGGA,,,,,,0,,,,,,,,")
	if g.Time != nil || g.Latitude != nil || g.Longitude != nil {
		t.Fatalf("expected empty fields, got %+v", g)
	}
	if g.FixType != FixInvalid {
		t.Fatalf("expected invalid fix, got %s", g.FixType)
	}
}

func TestDecodeGGA_UnrecognizedQualityIsInvalid(t *testing.T) {
	g := decodeAs[GGA](t, "GPGGA,133605.0,5521.75946,N,03731.93769,E,9,08,2.2,211.5,M,13.1,M,,0")
	if g.FixType != FixInvalid {
		t.Fatalf("expected invalid fix for quality 9, got %s", g.FixType)
	}
}

func TestDecodeGGA_PartialPositionFails(t *testing.T) {
	_, err := Decode(nmeaLine("GPGGA,092750.000,5321.6802,N,,,1,8,1.03,61.7,M,55.2,M,,"))
	if err == nil {
		t.Fatalf("expected error for half-empty position block")
	}
}

func TestDecodeRMC(t *testing.T) {
	r := decodeAs[RMC](t, "GPRMC,225446.33,A,4916.45,N,12311.12,W,000.5,054.7,191194,020.3,E,A")
	if r.Time == nil || *r.Time != (Time{Hour: 22, Minute: 54, Second: 46, Nanosecond: 330000000}) {
		t.Fatalf("unexpected time %v", r.Time)
	}
	if r.Status != StatusValid {
		t.Fatalf("expected valid status")
	}
	approx(t, "lat", r.Latitude, 49.0+16.45/60)
	approx(t, "lon", r.Longitude, -(123.0 + 11.12/60))
	approx(t, "speed", r.SpeedKnots, 0.5)
	approx(t, "course", r.CourseTrue, 54.7)
	if r.Date == nil || *r.Date != (Date{Day: 19, Month: 11, Year: 94}) {
		t.Fatalf("unexpected date %v", r.Date)
	}
	approx(t, "variation", r.MagneticVariation, 20.3)
	if r.FaaMode == nil || *r.FaaMode != FaaAutonomous {
		t.Fatalf("expected autonomous mode, got %v", r.FaaMode)
	}
}

func TestDecodeRMC_RawTwoDigitYear(t *testing.T) {
	// A 1970s-style date field stays exactly as transmitted, no
	// century windowing.
	r := decodeAs[RMC](t, "GPRMC,225446,A,4916.45,N,12311.12,W,000.5,054.7,010170,,")
	if r.Date == nil || r.Date.Year != 70 {
		t.Fatalf("expected raw year 70, got %v", r.Date)
	}
}

func TestDecodeRMC_VoidWithoutPosition(t *testing.T) {
	r := decodeAs[RMC](t, "GPRMC,,V,,,,,,,,,,N")
	if r.Status != StatusInvalid {
		t.Fatalf("expected void status")
	}
	if r.Latitude != nil || r.Longitude != nil {
		t.Fatalf("expected no position")
	}
}

func TestDecodeGLL(t *testing.T) {
	g := decodeAs[GLL](t, "GPGLL,4916.45,N,12311.12,W,225444,A")
	approx(t, "lat", g.Latitude, 49.0+16.45/60)
	approx(t, "lon", g.Longitude, -(123.0 + 11.12/60))
	if g.Time != (Time{Hour: 22, Minute: 54, Second: 44}) {
		t.Fatalf("unexpected time %v", g.Time)
	}
	if !g.Valid {
		t.Fatalf("expected valid")
	}
}

func TestDecodeGNS(t *testing.T) {
	g := decodeAs[GNS](t, "GNGNS,112257.00,3844.24011,N,00908.43828,W,AN,03,10.5,287.0,,,")
	if g.Time == nil || *g.Time != (Time{Hour: 11, Minute: 22, Second: 57}) {
		t.Fatalf("unexpected time %v", g.Time)
	}
	if g.FaaModes.First != FaaAutonomous {
		t.Fatalf("expected autonomous first mode")
	}
	if g.FaaModes.Second == nil || *g.FaaModes.Second != FaaDataNotValid {
		t.Fatalf("expected not-valid second mode")
	}
	if g.FaaModes.FixType() != FixGPS {
		t.Fatalf("expected gps fix from first mode")
	}
	if g.Satellites != 3 {
		t.Fatalf("expected 3 satellites, got %d", g.Satellites)
	}
	approx(t, "hdop", g.HDOP, 10.5)
	approx(t, "altitude", g.Altitude, 287.0)
}

func TestDecodeGSA(t *testing.T) {
	g := decodeAs[GSA](t, "GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1")
	if g.Mode != GSAAutomatic || g.Fix != GSAFix3D {
		t.Fatalf("unexpected mode/fix: %+v", g)
	}
	want := []int{4, 5, 9, 12, 24}
	if len(g.FixSatellites) != len(want) {
		t.Fatalf("unexpected prns: %v", g.FixSatellites)
	}
	for i, p := range want {
		if g.FixSatellites[i] != p {
			t.Fatalf("unexpected prns: %v", g.FixSatellites)
		}
	}
	approx(t, "pdop", g.PDOP, 2.5)
	approx(t, "hdop", g.HDOP, 1.3)
	approx(t, "vdop", g.VDOP, 2.1)
}

func TestDecodeGSA_EmptyTail(t *testing.T) {
	// Some receivers send GSA with neither satellites nor DOPs.
	g := decodeAs[GSA](t, "GPGSA,A,1,,,,,,,,,,,,,,,")
	if len(g.FixSatellites) != 0 {
		t.Fatalf("expected no satellites, got %v", g.FixSatellites)
	}
	if g.PDOP != nil || g.HDOP != nil || g.VDOP != nil {
		t.Fatalf("expected no DOP values, got %+v", g)
	}
}

func TestDecodeGSV(t *testing.T) {
	g := decodeAs[GSV](t, "GPGSV,2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45")
	if g.Gnss != GPS {
		t.Fatalf("expected GPS, got %s", g.Gnss)
	}
	if g.TotalSentences != 2 || g.SentenceIndex != 1 || g.SatellitesInView != 8 {
		t.Fatalf("unexpected counters: %+v", g)
	}
	if len(g.Satellites) != 4 {
		t.Fatalf("expected 4 satellites, got %d", len(g.Satellites))
	}
	s := g.Satellites[0]
	if s.PRN != 1 || s.Gnss != GPS {
		t.Fatalf("unexpected satellite: %+v", s)
	}
	approx(t, "elevation", s.Elevation, 40)
	approx(t, "azimuth", s.Azimuth, 83)
	approx(t, "snr", s.SNR, 46)
}

func TestDecodeGSV_EmptySlotAndShortTail(t *testing.T) {
	g := decodeAs[GSV](t, "GLGSV,3,3,09,88,07,028")
	if g.Gnss != GLONASS {
		t.Fatalf("expected GLONASS, got %s", g.Gnss)
	}
	if len(g.Satellites) != 1 || g.Satellites[0].PRN != 88 {
		t.Fatalf("unexpected satellites: %+v", g.Satellites)
	}
	if g.Satellites[0].SNR != nil {
		t.Fatalf("expected missing snr")
	}

	g = decodeAs[GSV](t, "GPGSV,3,3,11,22,42,067,42,24,14,311,43,27,05,244,00,,,,")
	if len(g.Satellites) != 3 {
		t.Fatalf("expected 3 satellites, got %+v", g.Satellites)
	}
}

func TestDecodeGSV_UnknownTalker(t *testing.T) {
	_, err := Decode(nmeaLine("XXGSV,1,1,00"))
	var te *TalkerError
	if !errors.As(err, &te) {
		t.Fatalf("expected TalkerError, got %v", err)
	}
}

func TestDecodeGSV_PackIndex(t *testing.T) {
	_, err := Decode(nmeaLine("GPGSV,2,3,08,01,40,083,46"))
	var pe *PackIndexError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PackIndexError, got %v", err)
	}
	if _, err := Decode(nmeaLine("GPGSV,16,1,60")); err == nil {
		t.Fatalf("expected error for oversized scan")
	}
}

func TestDecodeGSV_TalkerConstellations(t *testing.T) {
	cases := []struct {
		talker string
		want   GnssType
	}{
		{"GA", Galileo},
		{"GP", GPS},
		{"GL", GLONASS},
		{"BD", BeiDou},
		{"GB", BeiDou},
		{"GI", NavIC},
		{"GQ", QZSS},
		{"PQ", QZSS},
		{"QZ", QZSS},
	}
	for _, tc := range cases {
		g := decodeAs[GSV](t, tc.talker+"GSV,1,1,04,01,40,083,46")
		if g.Gnss != tc.want {
			t.Fatalf("talker %s: expected %s, got %s", tc.talker, tc.want, g.Gnss)
		}
	}
}

func TestDecodeVTG(t *testing.T) {
	v := decodeAs[VTG](t, "GPVTG,360.0,T,348.7,M,000.2,N,000.4,K,A")
	approx(t, "course", v.CourseTrue, 360.0)
	approx(t, "courseMagnetic", v.CourseMagnetic, 348.7)
	approx(t, "speed", v.SpeedKnots, 0.2)
}

func TestDecodeVTG_KPHFallback(t *testing.T) {
	v := decodeAs[VTG](t, "GPVTG,360.0,T,348.7,M,,N,1.852,K,A")
	approx(t, "speed", v.SpeedKnots, 1.0)
}

func TestDecodeTXT(t *testing.T) {
	x := decodeAs[TXT](t, "GPTXT,01,01,02,u-blox ag - www.u-blox.com")
	if x.Count != 1 || x.Seq != 1 || x.TextID != 2 {
		t.Fatalf("unexpected counters: %+v", x)
	}
	if x.Text != "u-blox ag - www.u-blox.com" {
		t.Fatalf("unexpected text %q", x.Text)
	}
}

func TestDecodeZDA(t *testing.T) {
	z := decodeAs[ZDA](t, "GPZDA,160012.71,11,03,2004,-1,00")
	if z.Time == nil || z.Time.Hour != 16 || z.Time.Nanosecond != 710000000 {
		t.Fatalf("unexpected time %v", z.Time)
	}
	d := z.Date()
	if d == nil || *d != (Date{Day: 11, Month: 3, Year: 2004}) {
		t.Fatalf("unexpected date %v", d)
	}
	if z.LocalZoneHours == nil || *z.LocalZoneHours != -1 {
		t.Fatalf("unexpected zone hours %v", z.LocalZoneHours)
	}
}

func TestDecodeAAM(t *testing.T) {
	a := decodeAs[AAM](t, "GPAAM,A,A,0.10,N,WPTNME")
	if !a.ArrivalCircleEntered || !a.PerpendicularPassed {
		t.Fatalf("unexpected flags: %+v", a)
	}
	approx(t, "radius", a.CircleRadius, 0.1)
	if a.WaypointID == nil || *a.WaypointID != "WPTNME" {
		t.Fatalf("unexpected waypoint %v", a.WaypointID)
	}
}

func TestDecodeBWC(t *testing.T) {
	b := decodeAs[BWC](t, "GPBWC,220516,5130.02,N,00046.34,W,213.8,T,218.0,M,0004.6,N,EGLM")
	if b.Time == nil || *b.Time != (Time{Hour: 22, Minute: 5, Second: 16}) {
		t.Fatalf("unexpected time %v", b.Time)
	}
	approx(t, "lat", b.Latitude, 51.0+30.02/60)
	approx(t, "bearingTrue", b.BearingTrue, 213.8)
	approx(t, "bearingMagnetic", b.BearingMagnetic, 218.0)
	approx(t, "distance", b.DistanceNM, 4.6)
	if b.WaypointID == nil || *b.WaypointID != "EGLM" {
		t.Fatalf("unexpected waypoint %v", b.WaypointID)
	}
}

func TestDecodeBODAndBWW(t *testing.T) {
	b := decodeAs[BOD](t, "GPBOD,097.0,T,103.2,M,POINTB,POINTA")
	approx(t, "bearingTrue", b.BearingTrue, 97.0)
	if b.ToWaypointID == nil || *b.ToWaypointID != "POINTB" {
		t.Fatalf("unexpected to waypoint %v", b.ToWaypointID)
	}
	w := decodeAs[BWW](t, "GPBWW,097.0,T,103.2,M,POINTB,POINTA")
	approx(t, "bearingMagnetic", w.BearingMagnetic, 103.2)
	if w.FromWaypointID == nil || *w.FromWaypointID != "POINTA" {
		t.Fatalf("unexpected from waypoint %v", w.FromWaypointID)
	}
}

func TestDecodeWNC(t *testing.T) {
	w := decodeAs[WNC](t, "GPWNC,002.3,N,004.3,K,POINTB,POINTA")
	approx(t, "nm", w.DistanceNM, 2.3)
	approx(t, "km", w.DistanceKM, 4.3)
}

func TestDecodeAPA(t *testing.T) {
	a := decodeAs[APA](t, "GPAPA,A,A,0.10,R,N,V,V,011,M,DEST")
	if !a.Valid || !a.CycleLockValid {
		t.Fatalf("unexpected status flags: %+v", a)
	}
	approx(t, "crossTrackError", a.CrossTrackError, 0.1)
	if a.SteerDirection == nil || *a.SteerDirection != SteerRight {
		t.Fatalf("unexpected steer direction %v", a.SteerDirection)
	}
	if a.CrossTrackUnits == nil || *a.CrossTrackUnits != XTENauticalMiles {
		t.Fatalf("unexpected units %v", a.CrossTrackUnits)
	}
	if a.ArrivalCircleEntered || a.PerpendicularPassed {
		t.Fatalf("unexpected waypoint flags: %+v", a)
	}
	approx(t, "bearing", a.BearingOriginToDest, 11)
	if a.BearingReference == nil || *a.BearingReference != BearingMagnetic {
		t.Fatalf("unexpected bearing reference %v", a.BearingReference)
	}
	if a.WaypointID == nil || *a.WaypointID != "DEST" {
		t.Fatalf("unexpected waypoint %v", a.WaypointID)
	}
}

func TestDecodeAPB(t *testing.T) {
	b := decodeAs[APB](t, "GPAPB,A,A,0.10,R,N,V,V,011,M,DEST,011,M,011,M,A")
	approx(t, "crossTrackError", b.CrossTrackError, 0.1)
	if b.SteerDirection == nil || *b.SteerDirection != SteerRight {
		t.Fatalf("unexpected steer direction %v", b.SteerDirection)
	}
	if b.WaypointID == nil || *b.WaypointID != "DEST" {
		t.Fatalf("unexpected waypoint %v", b.WaypointID)
	}
	approx(t, "bearingPosition", b.BearingPositionToDest, 11)
	if b.BearingPositionRef == nil || *b.BearingPositionRef != BearingMagnetic {
		t.Fatalf("unexpected position bearing reference %v", b.BearingPositionRef)
	}
	approx(t, "headingToSteer", b.HeadingToSteer, 11)
	if b.HeadingToSteerRef == nil || *b.HeadingToSteerRef != BearingMagnetic {
		t.Fatalf("unexpected heading reference %v", b.HeadingToSteerRef)
	}
	if b.FaaMode == nil || *b.FaaMode != FaaAutonomous {
		t.Fatalf("unexpected faa mode %v", b.FaaMode)
	}
}

func TestDecodeAPB_WithoutFaaMode(t *testing.T) {
	b := decodeAs[APB](t, "GPAPB,A,A,0.10,L,N,V,V,011,M,DEST,011,M,011,M")
	if b.SteerDirection == nil || *b.SteerDirection != SteerLeft {
		t.Fatalf("unexpected steer direction %v", b.SteerDirection)
	}
	if b.FaaMode != nil {
		t.Fatalf("unexpected faa mode %v", b.FaaMode)
	}
}

func TestDecodeDepth(t *testing.T) {
	k := decodeAs[DBK](t, "SDDBK,1330.5,f,0405.5,M,0221.6,F")
	approx(t, "feet", k.DepthFeet, 1330.5)
	approx(t, "meters", k.DepthMeters, 405.5)
	approx(t, "fathoms", k.DepthFathoms, 221.6)

	s := decodeAs[DBS](t, "SDDBS,,,2.2,M,,")
	if s.DepthFeet != nil || s.DepthFathoms != nil {
		t.Fatalf("unexpected depths: %+v", s)
	}
	approx(t, "meters", s.DepthMeters, 2.2)

	p := decodeAs[DPT](t, "SDDPT,2.4,0.5,10.0")
	approx(t, "depth", p.Depth, 2.4)
	approx(t, "offset", p.Offset, 0.5)
	approx(t, "range", p.MaxRangeScale, 10.0)
}

func TestDecodeWeather(t *testing.T) {
	m := decodeAs[MDA](t, "WIMDA,29.92,I,1.0133,B,23.5,C,,,54.3,,12.1,C,15.0,T,18.0,M,10.1,N,5.2,M")
	approx(t, "inhg", m.PressureInHg, 29.92)
	approx(t, "bar", m.PressureBar, 1.0133)
	approx(t, "airTemp", m.AirTemp, 23.5)
	approx(t, "humidity", m.RelativeHumidity, 54.3)
	approx(t, "windKnots", m.WindSpeedKnots, 10.1)

	w := decodeAs[MTW](t, "INMTW,17.9,C")
	approx(t, "waterTemp", w.Temperature, 17.9)

	v := decodeAs[MWV](t, "WIMWV,041.1,R,01.0,N,A")
	approx(t, "direction", v.WindDirection, 41.1)
	if v.Reference == nil || *v.Reference != MWVRelative {
		t.Fatalf("expected relative reference")
	}
	approx(t, "speed", v.WindSpeed, 1.0)
	if v.SpeedUnit == nil || *v.SpeedUnit != MWVKnots {
		t.Fatalf("expected knots")
	}
	if !v.Valid {
		t.Fatalf("expected valid")
	}
}

func TestDecodeHeading(t *testing.T) {
	h := decodeAs[HDT](t, "HEHDT,274.07,T")
	approx(t, "heading", h.Heading, 274.07)

	v := decodeAs[VHW](t, "VWVHW,100.5,T,105.5,M,10.5,N,19.4,K")
	approx(t, "headingTrue", v.HeadingTrue, 100.5)
	approx(t, "headingMagnetic", v.HeadingMagnetic, 105.5)
	approx(t, "speedKnots", v.SpeedKnots, 10.5)
	approx(t, "speedKPH", v.SpeedKPH, 19.4)
}

func TestDecodeAccuracy(t *testing.T) {
	g := decodeAs[GBS](t, "GPGBS,125027,23.43,13.91,34.01,05,,-11.67,3.71")
	if g.Time == nil || g.Time.Hour != 12 {
		t.Fatalf("unexpected time %v", g.Time)
	}
	approx(t, "latError", g.LatError, 23.43)
	approx(t, "lonError", g.LonError, 13.91)
	if g.FailedPRN == nil || *g.FailedPRN != 5 {
		t.Fatalf("unexpected failed prn %v", g.FailedPRN)
	}
	approx(t, "bias", g.BiasEstimate, -11.67)

	s := decodeAs[GST](t, "GPGST,182141.000,15.5,15.3,7.2,21.8,0.9,0.5,0.8")
	approx(t, "rms", s.ResidualRMS, 15.5)
	approx(t, "semiMajor", s.SemiMajorError, 15.3)
	approx(t, "latSigma", s.LatStdDev, 0.9)
	approx(t, "altSigma", s.AltStdDev, 0.8)
}

func TestDecodeTTM(t *testing.T) {
	m := decodeAs[TTM](t, "RATTM,23,13.88,137.2,T,15.0,026.8,T,14.01,6.3,N,TGT23,T,,175550.24,A")
	if m.TargetNumber == nil || *m.TargetNumber != 23 {
		t.Fatalf("unexpected target %v", m.TargetNumber)
	}
	approx(t, "distance", m.Distance, 13.88)
	if m.BearingAngle == nil || *m.BearingAngle != TTMAngleTrue {
		t.Fatalf("expected true bearing")
	}
	approx(t, "timeToCPA", m.TimeToCPA, 6.3)
	if m.Name == nil || *m.Name != "TGT23" {
		t.Fatalf("unexpected name %v", m.Name)
	}
	if m.Status == nil || *m.Status != TTMStatusTracking {
		t.Fatalf("expected tracking status")
	}
	if m.Time == nil || *m.Time != (Time{Hour: 17, Minute: 55, Second: 50, Nanosecond: 240000000}) {
		t.Fatalf("unexpected time %v", m.Time)
	}
	if m.Acquisition == nil || *m.Acquisition != TTMAcquisitionAutomatic {
		t.Fatalf("expected automatic acquisition")
	}
}

func TestDecodeRMZ(t *testing.T) {
	z := decodeAs[RMZ](t, "PGRMZ,2282,f,3")
	approx(t, "altitude", z.Altitude, 2282)
	if z.FixDimension == nil || *z.FixDimension != 3 {
		t.Fatalf("unexpected fix dimension %v", z.FixDimension)
	}

	_, err := Decode(nmeaLine("GPRMZ,2282,f,3"))
	var te *TalkerError
	if !errors.As(err, &te) {
		t.Fatalf("expected TalkerError, got %v", err)
	}
}

func TestDecodeTransit(t *testing.T) {
	f := decodeAs[ZFO](t, "GPZFO,145832.12,042359.17,WPT01")
	if f.Time == nil || f.Time.Hour != 14 {
		t.Fatalf("unexpected time %v", f.Time)
	}
	want := 4*time.Hour + 23*time.Minute + 59*time.Second + 170*time.Millisecond
	if f.FromOrigin == nil || *f.FromOrigin != want {
		t.Fatalf("unexpected duration %v", f.FromOrigin)
	}
	if f.WaypointID == nil || *f.WaypointID != "WPT01" {
		t.Fatalf("unexpected waypoint %v", f.WaypointID)
	}

	g := decodeAs[ZTG](t, "GPZTG,145832,002359,WPT02")
	if g.TimeToGo == nil || *g.TimeToGo != 23*time.Minute+59*time.Second {
		t.Fatalf("unexpected duration %v", g.TimeToGo)
	}
}

func TestDecodeALM(t *testing.T) {
	a := decodeAs[ALM](t, "GPALM,1,1,15,1159,00,441d,4e,16be,fd5e,a10c9f,4a2da4,686e81,58cbe1,0a4,001")
	if a.PRN == nil || *a.PRN != 15 {
		t.Fatalf("unexpected prn %v", a.PRN)
	}
	if a.GPSWeek == nil || *a.GPSWeek != 1159 {
		t.Fatalf("unexpected week %v", a.GPSWeek)
	}
	if a.Eccentricity == nil || *a.Eccentricity != 0x441d {
		t.Fatalf("unexpected eccentricity %v", a.Eccentricity)
	}
	if a.ClockParameterF1 == nil || *a.ClockParameterF1 != 0x001 {
		t.Fatalf("unexpected f1 %v", a.ClockParameterF1)
	}

	if _, err := Decode(nmeaLine("GPALM,1,1,33,1159,00,441d,4e,16be,fd5e,a10c9f,4a2da4,686e81,58cbe1,0a4,001")); err == nil {
		t.Fatalf("expected error for prn 33")
	}
}

func TestDecode_TextTooLong(t *testing.T) {
	long := "GPAAM,A,A,0.10,N,WPT" + "0123456789012345678901234567890123456789012345678901234567890123"
	_, err := Decode(nmeaLine(long))
	var tl *TextLengthError
	if !errors.As(err, &tl) {
		t.Fatalf("expected TextLengthError, got %v", err)
	}
}

func TestSentenceTypeNames_RoundTrip(t *testing.T) {
	for typ := TypeAAM; typ < numSentenceTypes; typ++ {
		name := typ.String()
		if len(name) != 3 {
			t.Fatalf("type %d has malformed name %q", typ, name)
		}
		if got := SentenceTypeOf(name); got != typ {
			t.Fatalf("lookup of %q returned %v, want %v", name, got, typ)
		}
	}
	for _, typ := range []SentenceType{TypeAPA, TypeAPB, TypeMDA, TypeGGA, TypeRMC} {
		if !Supported.Contains(typ) {
			t.Fatalf("expected %v in the supported set", typ)
		}
	}
}
