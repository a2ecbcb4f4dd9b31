package fetchers

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meteocast/internal/logger"
	"meteocast/internal/models"
)

// The sea-temperature feed stamps its readings in local Croatian summer time;
// the feed convention is a fixed UTC+2 offset, not a DST-aware zone.
var seaZone = time.FixedZone("UTC+2", 2*60*60)

// hourlyReading pairs one hour label of the pivot header with the reading in
// the same column of a station row.
type hourlyReading struct {
	Hour  string
	Value string
}

// ParseSeaTemperatures parses the sea-temperature pivot feed. The first
// Podatci row is the header whose Termin cells are hour labels; every later
// row is one station. Per station, the last non-empty reading in column order
// is retained (later columns are more recent hours), with its timestamp
// resolved from the feed date and that column's hour label at UTC+2. Stations
// with no readings are still emitted, with nil reading and timestamp.
func ParseSeaTemperatures(data []byte) ([]models.SeaTemperatureRecord, error) {
	var feed models.SeaTemperatureFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, malformedWrap("sea-temperature", "not well-formed XML", err)
	}

	dateStr := strings.TrimSpace(feed.Date)
	if dateStr == "" {
		return nil, malformed("sea-temperature", "no Datum element")
	}
	day, err := time.ParseInLocation("02.01.2006", strings.TrimSuffix(dateStr, "."), seaZone)
	if err != nil {
		return nil, malformedWrap("sea-temperature", fmt.Sprintf("unparseable Datum %q", dateStr), err)
	}

	if len(feed.Rows) == 0 {
		return nil, malformed("sea-temperature", "no Podatci rows")
	}
	hours := feed.Rows[0].Cells
	if len(hours) == 0 {
		return nil, malformed("sea-temperature", "hour-label row has no Termin cells")
	}

	records := make([]models.SeaTemperatureRecord, 0, len(feed.Rows)-1)
	for i, row := range feed.Rows[1:] {
		if row.Name == nil || strings.TrimSpace(*row.Name) == "" {
			return nil, malformed("sea-temperature", fmt.Sprintf("station row %d has no GradIme", i+1))
		}
		rec := models.SeaTemperatureRecord{Station: strings.TrimSpace(*row.Name)}
		if latest, ok := latestReading(zipReadings(hours, row.Cells)); ok {
			value := latest.Value
			rec.Temperature = &value
			if at, ok := hourInstant(day, latest.Hour); ok {
				rec.ObservedAt = &at
			} else {
				logger.Warnf("Sea station %q has unparseable hour label %q", rec.Station, latest.Hour)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// zipReadings pairs the header's hour labels with a station row's cells in
// one pass. Cells beyond the header and labels beyond the row are dropped.
func zipReadings(hours, cells []string) []hourlyReading {
	n := len(hours)
	if len(cells) < n {
		n = len(cells)
	}
	pairs := make([]hourlyReading, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, hourlyReading{
			Hour:  strings.TrimSpace(hours[i]),
			Value: strings.TrimSpace(cells[i]),
		})
	}
	return pairs
}

// latestReading reduces a station's readings to the last non-empty one.
// Later columns represent more recent hours, so later entries overwrite
// earlier ones.
func latestReading(pairs []hourlyReading) (hourlyReading, bool) {
	var latest hourlyReading
	found := false
	for _, p := range pairs {
		if p.Value != "" {
			latest = p
			found = true
		}
	}
	return latest, found
}

// hourInstant combines the feed date with an hour label like "7" or "14".
func hourInstant(day time.Time, hour string) (time.Time, bool) {
	h, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, false
	}
	return day.Add(time.Duration(h) * time.Hour), true
}
