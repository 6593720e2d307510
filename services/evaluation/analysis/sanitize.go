package analysis

import "strings"

var sanitizer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
)

// SanitizeText replaces smart quotes and other typographic characters with
// their plain equivalents so reference text survives the trip to the speech
// collaborator.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer.Replace(text))
}
