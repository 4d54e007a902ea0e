package taxonomy

// Country describes one supported market. Name stays in the catalog's source
// language; Currency is the symbol used when formatting salaries.
type Country struct {
	Code                string
	Name                string
	Currency            string
	RefugeeSupport      bool
	WorkWithoutLanguage bool
}

// Countries maps ISO-ish lowercase codes to market metadata.
var Countries = map[string]Country{
	"de": {"de", "Германия", "€", true, true},
	"gb": {"gb", "Великобритания", "£", true, true},
	"pl": {"pl", "Польша", "PLN", true, true},
	"nl": {"nl", "Нидерланды", "€", true, true},
	"fr": {"fr", "Франция", "€", true, false},
	"at": {"at", "Австрия", "€", true, true},
	"us": {"us", "США", "$", true, true},
	"ca": {"ca", "Канада", "C$", true, true},
	"au": {"au", "Австралия", "A$", true, true},
	"it": {"it", "Италия", "€", true, true},
	"es": {"es", "Испания", "€", true, true},
	"ch": {"ch", "Швейцария", "CHF", true, true},
	"be": {"be", "Бельгия", "€", true, true},
	"se": {"se", "Швеция", "SEK", true, true},
	"no": {"no", "Норвегия", "NOK", true, true},
	"dk": {"dk", "Дания", "DKK", true, true},
	"cz": {"cz", "Чехия", "CZK", true, true},
	"sk": {"sk", "Словакия", "€", true, true},
}

// countryLanguages lists which language blocks each market activates, in
// selection order. English always leads.
var countryLanguages = map[string][]Language{
	"de": {English, German},
	"fr": {English, French},
	"es": {English, Spanish},
	"it": {English, Italian},
	"nl": {English, Dutch},
	"pl": {English, Polish},
	"cz": {English, Czech},
	"gb": {English},
	"us": {English},
	"ca": {English, French},
	"au": {English},
	"at": {English, German},
	"ch": {English, German, French},
	"be": {English, Dutch, French},
	"se": {English},
	"no": {English},
	"dk": {English},
	"sk": {English, Czech},
}

// ActiveLanguages returns the language blocks used for a country code, or
// the English-only fallback for unknown codes.
func ActiveLanguages(code string) []Language {
	if langs, ok := countryLanguages[code]; ok {
		return langs
	}
	return []Language{English}
}

// Supported reports whether the country code is in the market table.
func Supported(code string) bool {
	_, ok := Countries[code]
	return ok
}

// CountryName returns the display name for a code, or the code itself when
// unknown.
func CountryName(code string) string {
	if c, ok := Countries[code]; ok {
		return c.Name
	}
	return code
}
