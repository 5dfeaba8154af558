package beadchart

import (
	"strings"

	"github.com/mstrand/beadchart/wordchart"
)

// Warning is a non-fatal issue reported by a terminal operation. It is the
// wordchart warning type re-exposed at the package root so most callers
// never import the core package directly.
type Warning = wordchart.Warning

// FormatWarnings renders warnings one per line for display or logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
