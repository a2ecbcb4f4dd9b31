package fetchers

import (
	"encoding/xml"
	"fmt"
	"strings"

	"meteocast/internal/models"
)

// ParseForecast parses the three-day forecast feed, flattening the city/day
// nesting into one record per (city, date, hour) timeslot with the city name
// denormalized onto each record. Missing structural attributes (city ime, day
// datum/sat) fail the feed; missing child fields become nil.
func ParseForecast(data []byte) ([]models.ForecastRecord, error) {
	var feed models.ForecastFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, malformedWrap("forecast", "not well-formed XML", err)
	}
	if len(feed.Cities) == 0 {
		return nil, malformed("forecast", "no grad elements")
	}

	var records []models.ForecastRecord
	for i, city := range feed.Cities {
		name := strings.TrimSpace(city.Name)
		if name == "" {
			return nil, malformed("forecast", fmt.Sprintf("grad element %d has no ime attribute", i))
		}
		for j, day := range city.Days {
			if strings.TrimSpace(day.Date) == "" || strings.TrimSpace(day.Hour) == "" {
				return nil, malformed("forecast",
					fmt.Sprintf("dan element %d of %q missing datum/sat attributes", j, name))
			}
			records = append(records, models.ForecastRecord{
				City:          name,
				Date:          strings.TrimSpace(day.Date),
				Hour:          strings.TrimSpace(day.Hour),
				Temperature2m: day.Temperature2m,
				SymbolCode:    day.SymbolCode,
				Wind:          day.Wind,
				Precipitation: day.Precipitation,
			})
		}
	}
	return records, nil
}
