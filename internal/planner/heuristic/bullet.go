package heuristic

import (
	"iter"
	"regexp"
	"strings"
)

// ws is any whitespace, Unicode space separators included. Plain \s only covers ASCII.
const ws = `[\s\p{Z}\x{FEFF}]`

var bulletLineRe = regexp.MustCompile(`^[•\-*]` + ws + `+(.+)$`)

// BulletLines yields the trimmed remainder of every line that starts with •, - or *
// followed by whitespace, in document order. Lines whose remainder is blank are skipped.
// The sequence can be ranged over any number of times.
func BulletLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			m := bulletLineRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
			if m == nil {
				continue
			}
			item := strings.TrimSpace(m[1])
			if item == "" {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// ExtractBulletLines collects BulletLines into a slice.
func ExtractBulletLines(text string) []string {
	var out []string
	for item := range BulletLines(text) {
		out = append(out, item)
	}
	return out
}
