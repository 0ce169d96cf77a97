package covid

import "github.com/five82/covidboard/internal/diseasesh"

// Worldwide is the sentinel selection code for the global summary.
const Worldwide = "worldwide"

// DropdownOption is one entry of the country picker.
type DropdownOption struct {
	Label string
	Code  string
}

// WorldwideOption is always the first picker entry.
var WorldwideOption = DropdownOption{Label: "Worldwide", Code: Worldwide}

// DropdownOptions builds picker entries in API order, after the worldwide sentinel.
func DropdownOptions(records []diseasesh.Country) []DropdownOption {
	out := make([]DropdownOption, 0, len(records)+1)
	out = append(out, WorldwideOption)
	for _, rec := range records {
		out = append(out, DropdownOption{Label: rec.Name, Code: rec.Code()})
	}
	return out
}
