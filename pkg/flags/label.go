package flags

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labeler returns a function applying the configured label casing to flag and
// color names. A cases.Caser is not safe for concurrent use, so each call
// builds its own and the returned function must stay on one goroutine.
func (c *Config) Labeler() func(string) string {
	var caser cases.Caser
	switch c.LabelCase {
	case CaseTitle:
		caser = cases.Title(language.English)
	case CaseUpper:
		caser = cases.Upper(language.English)
	default:
		return func(s string) string { return s }
	}
	return caser.String
}
