package models

import (
	"reflect"
	"testing"
	"time"

	"meteocast/internal/conditions"
)

func strPtr(s string) *string { return &s }

func testModel() *MeteoData {
	observations := []ObservationRecord{
		{
			Name:          "Zagreb",
			Temperature:   strPtr("21.5"),
			Humidity:      strPtr("55"),
			Pressure:      strPtr("1013.2"),
			WindDirection: strPtr("NE"),
			WindSpeed:     strPtr("2.2"),
			SymbolCode:    strPtr("1"),
		},
		{
			Name:        "Split",
			Temperature: strPtr("26.0"),
			SymbolCode:  strPtr("77"), // not in the table
		},
	}

	observedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	seaTemps := []SeaTemperatureRecord{
		{Station: "Crikvenica", Temperature: strPtr("12.5"), ObservedAt: &observedAt},
		{Station: "Dubrovnik"},
	}

	forecasts := []ForecastRecord{
		{City: "Split", Date: "29.08.2026.", Hour: "9", Temperature2m: strPtr("24"), SymbolCode: strPtr("1")},
		{City: "Split", Date: "29.08.2026.", Hour: "15", Temperature2m: strPtr("29"), SymbolCode: strPtr("2")},
		{City: "Split", Date: "30.08.2026.", Hour: "12", Temperature2m: strPtr("27"), SymbolCode: strPtr("12")},
		{City: "Zagreb", Date: "29.08.2026.", Hour: "12", Temperature2m: strPtr("22"), SymbolCode: strPtr("4")},
	}

	return NewMeteoData(observations, seaTemps, forecasts, nil, conditions.NewDefaultDecoder())
}

func TestCurrentFieldLookup(t *testing.T) {
	data := testModel()

	if temp := data.CurrentTemperature("Zagreb"); temp == nil || *temp != "21.5" {
		t.Errorf("Expected temperature 21.5, got %v", temp)
	}
	if hum := data.CurrentHumidity("Zagreb"); hum == nil || *hum != 55 {
		t.Errorf("Expected humidity 55, got %v", hum)
	}
	if speed := data.CurrentWindSpeed("Zagreb"); speed == nil || *speed != 2.2 {
		t.Errorf("Expected wind speed 2.2, got %v", speed)
	}
	if cond := data.CurrentCondition("Zagreb"); cond != conditions.Sunny {
		t.Errorf("Expected sunny, got %q", cond)
	}
}

func TestCurrentNullPropagation(t *testing.T) {
	data := testModel()

	// Unknown location: nil, never a panic.
	if v := data.Current("Atlantis", FieldTemperature); v != nil {
		t.Errorf("Expected nil for unknown location, got %v", v)
	}
	if v := data.CurrentHumidity("Atlantis"); v != nil {
		t.Errorf("Expected nil humidity for unknown location, got %v", v)
	}

	// Known location, absent field: nil field, record still present.
	if v := data.Current("Split", FieldHumidity); v != nil {
		t.Errorf("Expected nil humidity for Split, got %v", v)
	}
	if v := data.Current("Split", FieldTemperature); v == nil || *v != "26.0" {
		t.Errorf("Expected Split temperature 26.0, got %v", v)
	}
}

func TestUnknownSymbolCodeIsSoft(t *testing.T) {
	data := testModel()

	if cond := data.CurrentCondition("Split"); cond != conditions.Unknown {
		t.Errorf("Expected Unknown for unmapped code, got %q", cond)
	}
	// The rest of the record stays usable.
	if temp := data.CurrentTemperature("Split"); temp == nil || *temp != "26.0" {
		t.Errorf("Expected temperature 26.0, got %v", temp)
	}
}

func TestKeyListings(t *testing.T) {
	data := testModel()

	wantLocations := []string{"Zagreb", "Split"}
	if got := data.Locations(); !reflect.DeepEqual(got, wantLocations) {
		t.Errorf("Locations() = %v, want %v", got, wantLocations)
	}

	wantStations := []string{"Crikvenica", "Dubrovnik"}
	if got := data.SeaStations(); !reflect.DeepEqual(got, wantStations) {
		t.Errorf("SeaStations() = %v, want %v", got, wantStations)
	}

	wantRegions := []string{"Split", "Zagreb"}
	if got := data.ForecastRegions(); !reflect.DeepEqual(got, wantRegions) {
		t.Errorf("ForecastRegions() = %v, want %v", got, wantRegions)
	}

	for _, listing := range [][]string{data.Locations(), data.SeaStations(), data.ForecastRegions()} {
		seen := make(map[string]bool)
		for _, key := range listing {
			if seen[key] {
				t.Errorf("Duplicate key %q in listing %v", key, listing)
			}
			seen[key] = true
		}
	}
}

func TestSeaLookups(t *testing.T) {
	data := testModel()

	if temp := data.SeaTemperature("Crikvenica"); temp == nil || *temp != "12.5" {
		t.Errorf("Expected 12.5, got %v", temp)
	}
	if at := data.SeaObservationTime("Crikvenica"); at == nil || at.Hour() != 12 {
		t.Errorf("Expected 12:00 observation, got %v", at)
	}
	if temp := data.SeaTemperature("Dubrovnik"); temp != nil {
		t.Errorf("Expected nil reading, got %v", *temp)
	}
	if temp := data.SeaTemperature("Bermuda"); temp != nil {
		t.Errorf("Expected nil for unknown station, got %v", *temp)
	}
	if at := data.SeaObservationTime("Bermuda"); at != nil {
		t.Errorf("Expected nil time for unknown station, got %v", at)
	}
}

func TestForecastDatesKeepUTCLabelQuirk(t *testing.T) {
	data := testModel()

	want := []string{
		"2026-08-29T09:00:00Z",
		"2026-08-29T15:00:00Z",
		"2026-08-30T12:00:00Z",
	}
	if got := data.ForecastDates("Split"); !reflect.DeepEqual(got, want) {
		t.Errorf("ForecastDates(Split) = %v, want %v", got, want)
	}
}

func TestForecastConditionsDocumentOrder(t *testing.T) {
	data := testModel()

	want := []conditions.Condition{conditions.Sunny, conditions.PartlyCloudy, conditions.Rainy}
	if got := data.ForecastConditions("Split"); !reflect.DeepEqual(got, want) {
		t.Errorf("ForecastConditions(Split) = %v, want %v", got, want)
	}

	if got := data.ForecastConditions("Nowhere"); len(got) != 0 {
		t.Errorf("Expected no conditions for unknown region, got %v", got)
	}
}

func TestDailyForecastsNearestNoon(t *testing.T) {
	data := testModel()

	daily := data.DailyForecasts("Split")
	if len(daily) != 2 {
		t.Fatalf("Expected 2 daily entries, got %d", len(daily))
	}

	// 09:00 and 15:00 are equidistant from noon; the tie goes to the later
	// timeslot.
	first := daily[0]
	if first.Date.Hour() != 15 {
		t.Errorf("Expected 15:00 slot picked for day one, got %02d:00", first.Date.Hour())
	}
	if first.Condition != conditions.PartlyCloudy {
		t.Errorf("Expected partlycloudy, got %q", first.Condition)
	}
	if first.TempMin == nil || *first.TempMin != 24 {
		t.Errorf("Expected min temp 24, got %v", first.TempMin)
	}
	if first.TempMax == nil || *first.TempMax != 29 {
		t.Errorf("Expected max temp 29, got %v", first.TempMax)
	}

	second := daily[1]
	if second.Date.Day() != 30 || second.Date.Hour() != 12 {
		t.Errorf("Unexpected second-day slot: %v", second.Date)
	}
	if second.Condition != conditions.Rainy {
		t.Errorf("Expected rainy, got %q", second.Condition)
	}
}

func TestModelValueEquality(t *testing.T) {
	a := testModel()
	b := testModel()

	if !reflect.DeepEqual(a.Observations, b.Observations) ||
		!reflect.DeepEqual(a.SeaTemperatures, b.SeaTemperatures) ||
		!reflect.DeepEqual(a.Forecasts, b.Forecasts) {
		t.Error("Models built from the same inputs differ")
	}
}
