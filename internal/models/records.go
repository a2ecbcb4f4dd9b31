package models

import "time"

// ObservationRecord is one normalized per-station current-conditions record.
// Nil fields mark data the feed did not publish for that station.
type ObservationRecord struct {
	Name          string
	Temperature   *string
	Humidity      *string
	Pressure      *string
	WindDirection *string
	WindSpeed     *string
	Description   *string
	SymbolCode    *string
}

// ObservationField selects one field of an ObservationRecord for generic
// lookups. Sensor entities address fields through this enum rather than by
// string key.
type ObservationField int

const (
	FieldTemperature ObservationField = iota
	FieldHumidity
	FieldPressure
	FieldWindDirection
	FieldWindSpeed
	FieldDescription
	FieldSymbolCode
)

// Value returns the selected field of the record.
func (r *ObservationRecord) Value(field ObservationField) *string {
	switch field {
	case FieldTemperature:
		return r.Temperature
	case FieldHumidity:
		return r.Humidity
	case FieldPressure:
		return r.Pressure
	case FieldWindDirection:
		return r.WindDirection
	case FieldWindSpeed:
		return r.WindSpeed
	case FieldDescription:
		return r.Description
	case FieldSymbolCode:
		return r.SymbolCode
	default:
		return nil
	}
}

// SeaTemperatureRecord is one normalized per-station sea-temperature reading.
// Temperature holds the last non-empty hourly cell of the station's pivot row;
// ObservedAt is that cell's hour combined with the feed date at UTC+2. Both
// are nil when the station reported no readings.
type SeaTemperatureRecord struct {
	Station     string
	Temperature *string
	ObservedAt  *time.Time
}

// ForecastRecord is one flattened per-(city, date, hour) forecast timeslot.
// Records of one city keep feed document order, which is not guaranteed to be
// chronological; time-series consumers sort by resolved instant.
type ForecastRecord struct {
	City          string
	Date          string
	Hour          string
	Temperature2m *string
	SymbolCode    *string
	Wind          *string
	Precipitation *string
}

// Alert is one weather-warning entry from the RSS alerts feed.
type Alert struct {
	Title       string
	Description string
	Link        string
	Published   *time.Time
}
