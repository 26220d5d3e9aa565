package nmea

import "time"

// Transit timer sentences: ZFO and ZTG share a layout.

// ZFO: UTC and Time from Origin Waypoint
// Fields:
//
//	1: observation time (hhmmss.sss)
//	2: elapsed time from origin (hhmmss.sss)
//	3: origin waypoint ID
type ZFO struct {
	Time       *Time
	FromOrigin *time.Duration
	WaypointID *string
}

func (ZFO) SentenceType() SentenceType { return TypeZFO }

func parseZFO(s Sentence) (Data, error) {
	if err := expect(s, TypeZFO); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d ZFO
	d.Time = r.optTimeOfDay("time")
	d.FromOrigin = r.optDuration("fromOrigin")
	d.WaypointID = r.optText("waypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// ZTG: UTC and Time to Destination Waypoint
// Fields:
//
//	1: observation time (hhmmss.sss)
//	2: time to go (hhmmss.sss)
//	3: destination waypoint ID
type ZTG struct {
	Time       *Time
	TimeToGo   *time.Duration
	WaypointID *string
}

func (ZTG) SentenceType() SentenceType { return TypeZTG }

func parseZTG(s Sentence) (Data, error) {
	if err := expect(s, TypeZTG); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d ZTG
	d.Time = r.optTimeOfDay("time")
	d.TimeToGo = r.optDuration("timeToGo")
	d.WaypointID = r.optText("waypointID")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
