package nmea

// ZDA: Time and Date
// Fields:
//
//	1: time (hhmmss.sss)
//	2: day (01..31)
//	3: month (01..12)
//	4: year (four digits)
//	5: local zone offset, hours (signed)
//	6: local zone offset, minutes
type ZDA struct {
	Time             *Time
	Day              *int
	Month            *int
	Year             *int
	LocalZoneHours   *int
	LocalZoneMinutes *int
}

func (ZDA) SentenceType() SentenceType { return TypeZDA }

// Date assembles the calendar date when all three components are
// present. ZDA is the only sentence carrying a four-digit year.
func (d ZDA) Date() *Date {
	if d.Day == nil || d.Month == nil || d.Year == nil {
		return nil
	}
	return &Date{Day: *d.Day, Month: *d.Month, Year: *d.Year}
}

func parseZDA(s Sentence) (Data, error) {
	if err := expect(s, TypeZDA); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d ZDA
	d.Time = r.optTimeOfDay("time")
	d.Day = r.optUintIn("day", 1, 31)
	d.Month = r.optUintIn("month", 1, 12)
	d.Year = r.optUintIn("year", 0, 9999)
	d.LocalZoneHours = r.optSignedIn("localZoneHours", -13, 13)
	d.LocalZoneMinutes = r.optUintIn("localZoneMinutes", 0, 59)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if d.LocalZoneHours != nil && *d.LocalZoneHours < 0 && d.LocalZoneMinutes != nil {
		v := -*d.LocalZoneMinutes
		d.LocalZoneMinutes = &v
	}
	return d, nil
}
