package models

// Wire types for the DHMZ XML feeds. Field pointers distinguish an absent
// element from an empty one: parsers tolerate missing data fields but not
// missing structural containers.

// ObservationFeed is the current-conditions document (hrvatska_n.xml).
type ObservationFeed struct {
	Header *ObservationHeader `xml:"DatumTermin"`
	Cities []ObservationCity  `xml:"Grad"`
}

// ObservationHeader carries the feed-wide observation date and hour.
type ObservationHeader struct {
	Date string `xml:"Datum"`
	Hour string `xml:"Termin"`
}

// ObservationCity is one per-station record in the observation feed.
type ObservationCity struct {
	Name *string          `xml:"GradIme"`
	Data *ObservationData `xml:"Podatci"`
}

// ObservationData is the fixed-name data block inside a Grad element.
type ObservationData struct {
	Temperature   *string `xml:"Temp"`
	Humidity      *string `xml:"Vlaga"`
	Pressure      *string `xml:"Tlak"`
	WindDirection *string `xml:"VjetarSmjer"`
	WindSpeed     *string `xml:"VjetarBrzina"`
	Description   *string `xml:"Vrijeme"`
	SymbolCode    *string `xml:"VrijemeZnak"`
}

// ForecastFeed is the three-day forecast document (3d_graf_i_simboli.xml).
type ForecastFeed struct {
	Cities []ForecastCity `xml:"grad"`
}

// ForecastCity groups the per-timeslot entries of one city.
type ForecastCity struct {
	Name string        `xml:"ime,attr"`
	Days []ForecastDay `xml:"dan"`
}

// ForecastDay is one (date, hour) timeslot of a city's forecast.
type ForecastDay struct {
	Date          string  `xml:"datum,attr"`
	Hour          string  `xml:"sat,attr"`
	Temperature2m *string `xml:"t_2m"`
	SymbolCode    *string `xml:"simbol"`
	Wind          *string `xml:"vjetar"`
	Precipitation *string `xml:"oborina"`
}

// SeaTemperatureFeed is the sea-temperature document (more_n.xml). The rows
// form a pivot table: the first Podatci row holds hour labels in its Termin
// cells, every later row holds one station's hourly readings.
type SeaTemperatureFeed struct {
	Date string   `xml:"Datum"`
	Rows []SeaRow `xml:"Podatci"`
}

// SeaRow is one row of the sea-temperature pivot table.
type SeaRow struct {
	Name  *string  `xml:"GradIme"`
	Cells []string `xml:"Termin"`
}
