package nmea

// Meteorological sentences: MDA, MTW, MWV.

// MDA: Meteorological Composite
// Fields:
//
//	1: barometric pressure, inches of mercury
//	2: I
//	3: barometric pressure, bars
//	4: B
//	5: air temperature, degrees C
//	6: C
//	7: water temperature, degrees C
//	8: C
//	9: relative humidity, percent
//	10: absolute humidity, percent
//	11: dew point, degrees C
//	12: C
//	13: wind direction, degrees true
//	14: T
//	15: wind direction, degrees magnetic
//	16: M
//	17: wind speed, knots
//	18: N
//	19: wind speed, meters/second
//	20: M
type MDA struct {
	PressureInHg     *float64
	PressureBar      *float64
	AirTemp          *float64
	WaterTemp        *float64
	RelativeHumidity *float64
	AbsoluteHumidity *float64
	DewPoint         *float64
	WindDirTrue      *float64
	WindDirMagnetic  *float64
	WindSpeedKnots   *float64
	WindSpeedMPS     *float64
}

func (MDA) SentenceType() SentenceType { return TypeMDA }

func parseMDA(s Sentence) (Data, error) {
	if err := expect(s, TypeMDA); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d MDA
	d.PressureInHg = r.optFloat("pressureInHg")
	r.unit("pressureInHgUnits", 'I')
	d.PressureBar = r.optFloat("pressureBar")
	r.unit("pressureBarUnits", 'B')
	d.AirTemp = r.optFloat("airTemp")
	r.unit("airTempUnits", 'C')
	d.WaterTemp = r.optFloat("waterTemp")
	r.unit("waterTempUnits", 'C')
	d.RelativeHumidity = r.optFloat("relativeHumidity")
	d.AbsoluteHumidity = r.optFloat("absoluteHumidity")
	d.DewPoint = r.optFloat("dewPoint")
	r.unit("dewPointUnits", 'C')
	d.WindDirTrue = r.optFloat("windDirTrue")
	r.unit("windDirTrueUnits", 'T')
	d.WindDirMagnetic = r.optFloat("windDirMagnetic")
	r.unit("windDirMagneticUnits", 'M')
	d.WindSpeedKnots = r.optFloat("windSpeedKnots")
	r.unit("windSpeedKnotsUnits", 'N')
	d.WindSpeedMPS = r.optFloat("windSpeedMPS")
	r.unit("windSpeedMPSUnits", 'M')
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// MTW: Mean Temperature of Water
// Fields:
//
//	1: water temperature, degrees C
//	2: C
type MTW struct {
	Temperature *float64
}

func (MTW) SentenceType() SentenceType { return TypeMTW }

func parseMTW(s Sentence) (Data, error) {
	if err := expect(s, TypeMTW); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d MTW
	d.Temperature = r.optFloat("temperature")
	r.unit("temperatureUnits", 'C')
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// MWVReference says what the MWV wind angle is measured against.
type MWVReference uint8

const (
	MWVRelative MWVReference = iota
	MWVTrue
)

// MWVSpeedUnit is the unit of the MWV wind speed field.
type MWVSpeedUnit uint8

const (
	MWVKPH MWVSpeedUnit = iota
	MWVMPS
	MWVKnots
)

// MWV: Wind Speed and Angle
// Fields:
//
//	1: wind angle, degrees (0..359)
//	2: reference (R=relative, T=true)
//	3: wind speed
//	4: speed units (K=km/h, M=m/s, N=knots)
//	5: status (A=valid)
type MWV struct {
	WindDirection *float64
	Reference     *MWVReference
	WindSpeed     *float64
	SpeedUnit     *MWVSpeedUnit
	Valid         bool
}

func (MWV) SentenceType() SentenceType { return TypeMWV }

func parseMWV(s Sentence) (Data, error) {
	if err := expect(s, TypeMWV); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d MWV
	d.WindDirection = r.optFloat("windDirection")
	if c, ok := r.optChar("reference", "RT"); ok {
		ref := MWVRelative
		if c == 'T' {
			ref = MWVTrue
		}
		d.Reference = &ref
	}
	d.WindSpeed = r.optFloat("windSpeed")
	if c, ok := r.optChar("speedUnits", "KMN"); ok {
		var u MWVSpeedUnit
		switch c {
		case 'K':
			u = MWVKPH
		case 'M':
			u = MWVMPS
		case 'N':
			u = MWVKnots
		}
		d.SpeedUnit = &u
	}
	if c, ok := r.optChar("status", "AV"); ok {
		d.Valid = c == 'A'
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
