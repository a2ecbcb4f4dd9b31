package conditions

// Condition is one of the fixed weather-state labels consumed by downstream
// display logic. The set is a public vocabulary: removing or renaming a member
// is a breaking change for every consumer mapping conditions to icons.
type Condition string

const (
	ClearNight     Condition = "clear-night"
	Cloudy         Condition = "cloudy"
	Fog            Condition = "fog"
	Hail           Condition = "hail"
	Lightning      Condition = "lightning"
	LightningRainy Condition = "lightning-rainy"
	PartlyCloudy   Condition = "partlycloudy"
	Pouring        Condition = "pouring"
	Rainy          Condition = "rainy"
	Snowy          Condition = "snowy"
	SnowyRainy     Condition = "snowy-rainy"
	Sunny          Condition = "sunny"
	Windy          Condition = "windy"
	WindyVariant   Condition = "windy-variant"
	Exceptional    Condition = "exceptional"

	// Unknown is returned for symbol codes not present in the table.
	Unknown Condition = ""
)

// TableEntry binds one condition to the set of raw DHMZ symbol codes that
// decode to it. The table is ordered: if an edit ever places the same code
// under two conditions, the first entry wins.
type TableEntry struct {
	Condition Condition
	Codes     []string
}

// DefaultTable is the DHMZ symbol table. Codes are the numeric day symbols
// published in the feeds; an "n" suffix marks the night variant.
var DefaultTable = []TableEntry{
	{ClearNight, []string{"1n"}},
	{Cloudy, []string{"5", "6", "5n", "6n"}},
	{Fog, []string{
		"7", "8", "9", "10", "11", "39", "40", "41", "42",
		"7n", "8n", "9n", "10n", "11n", "39n", "40n", "41n", "42n",
	}},
	{Hail, nil},
	{Lightning, []string{"15", "25", "29", "15n", "25n", "29n"}},
	{LightningRainy, []string{
		"16", "17", "18", "30", "31",
		"16n", "17n", "18n", "30n", "31n",
	}},
	{PartlyCloudy, []string{"2", "3", "4", "2n", "3n", "4n"}},
	{Pouring, []string{"14", "28", "32", "14n", "28n", "32n"}},
	{Rainy, []string{"12", "13", "26", "27", "12n", "13n", "26n", "27n"}},
	{Snowy, []string{
		"22", "23", "24", "36", "37", "38",
		"22n", "23n", "24n", "36n", "37n", "38n",
	}},
	{SnowyRainy, []string{
		"19", "20", "21", "33", "34", "35",
		"19n", "20n", "21n", "33n", "34n", "35n",
	}},
	{Sunny, []string{"1"}},
	{Windy, nil},
	{WindyVariant, nil},
	{Exceptional, []string{"-"}},
}

// Decoder resolves raw symbol codes to conditions via a reverse lookup built
// once at construction. It is immutable and safe for concurrent use.
type Decoder struct {
	byCode map[string]Condition
}

// NewDecoder builds a decoder from an ordered condition table. Earlier entries
// take precedence when a code appears more than once.
func NewDecoder(table []TableEntry) *Decoder {
	byCode := make(map[string]Condition)
	for _, entry := range table {
		for _, code := range entry.Codes {
			if _, ok := byCode[code]; !ok {
				byCode[code] = entry.Condition
			}
		}
	}
	return &Decoder{byCode: byCode}
}

// NewDefaultDecoder builds a decoder over the DHMZ symbol table.
func NewDefaultDecoder() *Decoder {
	return NewDecoder(DefaultTable)
}

// Decode returns the condition for a raw symbol code, or Unknown if the code
// is not in the table. Unknown is a soft outcome: callers log it and carry on.
func (d *Decoder) Decode(code string) Condition {
	return d.byCode[code]
}

// Known reports whether a raw symbol code is present in the table.
func (d *Decoder) Known(code string) bool {
	_, ok := d.byCode[code]
	return ok
}
