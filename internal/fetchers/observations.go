package fetchers

import (
	"encoding/xml"
	"fmt"
	"strings"

	"meteocast/internal/models"
)

// ParseObservations parses the current-conditions feed into one record per
// Grad element. A city missing its GradIme or Podatci container fails the
// whole feed; a present city missing individual data fields yields nil fields
// on an otherwise complete record.
func ParseObservations(data []byte) ([]models.ObservationRecord, error) {
	var feed models.ObservationFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, malformedWrap("observations", "not well-formed XML", err)
	}
	if len(feed.Cities) == 0 {
		return nil, malformed("observations", "no Grad elements")
	}

	records := make([]models.ObservationRecord, 0, len(feed.Cities))
	for i, city := range feed.Cities {
		if city.Name == nil || strings.TrimSpace(*city.Name) == "" {
			return nil, malformed("observations", fmt.Sprintf("Grad element %d has no GradIme", i))
		}
		if city.Data == nil {
			return nil, malformed("observations", fmt.Sprintf("Grad %q has no Podatci", strings.TrimSpace(*city.Name)))
		}
		records = append(records, models.ObservationRecord{
			Name:          strings.TrimSpace(*city.Name),
			Temperature:   city.Data.Temperature,
			Humidity:      city.Data.Humidity,
			Pressure:      city.Data.Pressure,
			WindDirection: city.Data.WindDirection,
			WindSpeed:     city.Data.WindSpeed,
			Description:   city.Data.Description,
			SymbolCode:    city.Data.SymbolCode,
		})
	}
	return records, nil
}
