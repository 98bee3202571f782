package costs

import (
	"strings"
	"unicode"

	"github.com/gessotrack/backend/pkg/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Filter restricts the cost entries returned by ListByProject.
type Filter struct {
	Type models.CostType

	// Description is a glob pattern matched against the description,
	// ignoring case and accents. A pattern without * matches anywhere
	// in the description.
	Description string
}

func (f Filter) matchDescription(description string) bool {
	pattern := fold(strings.TrimSpace(f.Description))
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	return glob.Glob(pattern, fold(description))
}

// fold lowercases s and strips diacritics, "Gesso Acartonado Pó" becomes
// "gesso acartonado po".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}

	return strings.ToLower(folded)
}
