package models

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"meteocast/internal/conditions"
	"meteocast/internal/logger"
)

// MeteoData is the normalized model built from one fetch cycle. It owns one
// collection per feed and is immutable after construction: a new fetch cycle
// replaces the whole instance, it never merges into an existing one.
type MeteoData struct {
	FetchedAt       time.Time
	Observations    []ObservationRecord
	SeaTemperatures []SeaTemperatureRecord
	Forecasts       []ForecastRecord
	Alerts          []Alert

	decoder *conditions.Decoder
}

// NewMeteoData assembles a normalized model from parsed feed collections.
// The decoder is the injected condition table lookup used by the condition
// accessors.
func NewMeteoData(
	observations []ObservationRecord,
	seaTemps []SeaTemperatureRecord,
	forecasts []ForecastRecord,
	alerts []Alert,
	decoder *conditions.Decoder,
) *MeteoData {
	if decoder == nil {
		decoder = conditions.NewDefaultDecoder()
	}
	return &MeteoData{
		FetchedAt:       time.Now(),
		Observations:    observations,
		SeaTemperatures: seaTemps,
		Forecasts:       forecasts,
		Alerts:          alerts,
		decoder:         decoder,
	}
}

func (m *MeteoData) findObservation(location string) *ObservationRecord {
	for i := range m.Observations {
		if m.Observations[i].Name == location {
			return &m.Observations[i]
		}
	}
	return nil
}

func (m *MeteoData) findSeaTemperature(station string) *SeaTemperatureRecord {
	for i := range m.SeaTemperatures {
		if m.SeaTemperatures[i].Station == station {
			return &m.SeaTemperatures[i]
		}
	}
	return nil
}

// Current returns one field of the observation record for a location, or nil
// if the location is unknown or the field was absent from the feed.
func (m *MeteoData) Current(location string, field ObservationField) *string {
	rec := m.findObservation(location)
	if rec == nil {
		return nil
	}
	return rec.Value(field)
}

// CurrentTemperature returns the current temperature of the location.
func (m *MeteoData) CurrentTemperature(location string) *string {
	return m.Current(location, FieldTemperature)
}

// CurrentHumidity returns the current relative humidity of the location.
func (m *MeteoData) CurrentHumidity(location string) *float64 {
	return parseOptionalFloat(m.Current(location, FieldHumidity))
}

// CurrentPressure returns the current air pressure of the location.
func (m *MeteoData) CurrentPressure(location string) *string {
	return m.Current(location, FieldPressure)
}

// CurrentWindSpeed returns the current wind speed of the location.
func (m *MeteoData) CurrentWindSpeed(location string) *float64 {
	return parseOptionalFloat(m.Current(location, FieldWindSpeed))
}

// CurrentWindDirection returns the current wind direction of the location.
func (m *MeteoData) CurrentWindDirection(location string) *string {
	return m.Current(location, FieldWindDirection)
}

// CurrentCondition decodes the location's current symbol code. Unknown codes
// are logged and reported as conditions.Unknown; the rest of the record stays
// usable.
func (m *MeteoData) CurrentCondition(location string) conditions.Condition {
	code := m.Current(location, FieldSymbolCode)
	if code == nil {
		return conditions.Unknown
	}
	return m.decode(*code)
}

func (m *MeteoData) decode(code string) conditions.Condition {
	if !m.decoder.Known(code) {
		logger.Warnf("Unknown DHMZ weather symbol: %s", code)
		return conditions.Unknown
	}
	return m.decoder.Decode(code)
}

// Locations returns the station names present in the observation feed, in
// feed order.
func (m *MeteoData) Locations() []string {
	names := make([]string, 0, len(m.Observations))
	for _, rec := range m.Observations {
		names = append(names, rec.Name)
	}
	return names
}

// SeaStations returns the station names present in the sea-temperature feed,
// in feed order.
func (m *MeteoData) SeaStations() []string {
	names := make([]string, 0, len(m.SeaTemperatures))
	for _, rec := range m.SeaTemperatures {
		names = append(names, rec.Station)
	}
	return names
}

// SeaTemperature returns the latest sea-temperature reading of the station,
// or nil if the station is unknown or reported no readings.
func (m *MeteoData) SeaTemperature(station string) *string {
	rec := m.findSeaTemperature(station)
	if rec == nil {
		return nil
	}
	return rec.Temperature
}

// SeaObservationTime returns the instant of the station's latest reading.
func (m *MeteoData) SeaObservationTime(station string) *time.Time {
	rec := m.findSeaTemperature(station)
	if rec == nil {
		return nil
	}
	return rec.ObservedAt
}

// ForecastRegions returns the distinct city names present in the forecast
// feed, sorted. Set semantics: duplicates collapse.
func (m *MeteoData) ForecastRegions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, rec := range m.Forecasts {
		if !seen[rec.City] {
			seen[rec.City] = true
			regions = append(regions, rec.City)
		}
	}
	sort.Strings(regions)
	return regions
}

// ForecastForRegion returns the region's forecast records in feed document
// order.
func (m *MeteoData) ForecastForRegion(region string) []ForecastRecord {
	var recs []ForecastRecord
	for _, rec := range m.Forecasts {
		if rec.City == region {
			recs = append(recs, rec)
		}
	}
	return recs
}

// ForecastDates returns the region's timeslots as ISO-8601 strings with a
// trailing "Z". The raw date+hour is naive local time and is labeled UTC
// without conversion; the upstream integration has always published it that
// way and consumers depend on it, so the mislabeling is kept.
func (m *MeteoData) ForecastDates(region string) []string {
	var dates []string
	for _, rec := range m.ForecastForRegion(region) {
		if ts, ok := forecastInstant(rec); ok {
			dates = append(dates, ts.Format("2006-01-02T15:04:05")+"Z")
		} else {
			dates = append(dates, rec.Date+" "+rec.Hour)
		}
	}
	return dates
}

// ForecastConditions decodes the region's symbol codes in feed document
// order. Unknown or absent codes yield conditions.Unknown entries so the
// result stays aligned with ForecastDates.
func (m *MeteoData) ForecastConditions(region string) []conditions.Condition {
	var decoded []conditions.Condition
	for _, rec := range m.ForecastForRegion(region) {
		if rec.SymbolCode == nil {
			decoded = append(decoded, conditions.Unknown)
			continue
		}
		decoded = append(decoded, m.decode(*rec.SymbolCode))
	}
	return decoded
}

// DailyForecast is one reduced per-day forecast entry.
type DailyForecast struct {
	Date          time.Time
	TempMin       *float64
	TempMax       *float64
	Condition     conditions.Condition
	Temperature2m *string
	Wind          *string
	Precipitation *string
}

// DailyForecasts reduces the region's hourly records to one entry per day:
// records are grouped by date and sorted by resolved instant, the entry
// nearest 12:00 represents the day, and the day's min/max 2m temperatures are
// attached. Ties on distance to noon go to the later timeslot.
func (m *MeteoData) DailyForecasts(region string) []DailyForecast {
	type slot struct {
		at  time.Time
		rec ForecastRecord
	}

	byDay := make(map[time.Time][]slot)
	for _, rec := range m.ForecastForRegion(region) {
		at, ok := forecastInstant(rec)
		if !ok {
			logger.Warnf("Skipping forecast slot with unparseable time: %q %q", rec.Date, rec.Hour)
			continue
		}
		day := at.Truncate(24 * time.Hour)
		byDay[day] = append(byDay[day], slot{at: at, rec: rec})
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var daily []DailyForecast
	for _, day := range days {
		slots := byDay[day]
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].at.Before(slots[j].at) })

		noon := day.Add(12 * time.Hour)
		picked := slots[0]
		best := absDuration(noon.Sub(picked.at))
		for _, s := range slots[1:] {
			if d := absDuration(noon.Sub(s.at)); d <= best {
				best = d
				picked = s
			}
		}

		var tempMin, tempMax *float64
		for _, s := range slots {
			t := parseOptionalFloat(s.rec.Temperature2m)
			if t == nil {
				continue
			}
			if tempMin == nil || *t < *tempMin {
				v := *t
				tempMin = &v
			}
			if tempMax == nil || *t > *tempMax {
				v := *t
				tempMax = &v
			}
		}

		entry := DailyForecast{
			Date:          picked.at,
			TempMin:       tempMin,
			TempMax:       tempMax,
			Temperature2m: picked.rec.Temperature2m,
			Wind:          picked.rec.Wind,
			Precipitation: picked.rec.Precipitation,
		}
		if picked.rec.SymbolCode != nil {
			entry.Condition = m.decode(*picked.rec.SymbolCode)
		}
		daily = append(daily, entry)
	}
	return daily
}

// forecastInstant resolves a record's date+hour attributes to an instant.
// The feed writes dates as "29.08.2026." and hours as bare integers; the
// result carries the naive local reading stamped as UTC (see ForecastDates).
func forecastInstant(rec ForecastRecord) (time.Time, bool) {
	day, err := time.Parse("02.01.2006", strings.TrimSuffix(strings.TrimSpace(rec.Date), "."))
	if err != nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(rec.Hour))
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	return day.Add(time.Duration(hour) * time.Hour), true
}

func parseOptionalFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return nil
	}
	return &v
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
