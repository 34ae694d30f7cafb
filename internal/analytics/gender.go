package analytics

import "strings"

// Gender classifies a category label for the gender-balance ratio.
type Gender int

const (
	GenderUnclassified Gender = iota
	GenderFemale
	GenderMale
)

// ClassifyGender infers gender from the category label, e.g. "Varsity
// Girls" or "JV Boys". Labels matching neither word are Unclassified and
// excluded from ratio denominators; an unrecognized label is not an error.
func ClassifyGender(category string) Gender {
	switch {
	case strings.Contains(category, "Girls"):
		return GenderFemale
	case strings.Contains(category, "Boys"):
		return GenderMale
	default:
		return GenderUnclassified
	}
}
