package embed

import (
	"regexp"
	"strings"

	"embedfix/internal/templates"
)

// replaceSubmatches replaces every non-overlapping match of re in text with
// the value returned by fn. fn receives the full match followed by the
// capture groups, like FindStringSubmatch.
func replaceSubmatches(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// mustApplyTemplate fills one of the built-in templates. The templates and
// their variable sets are fixed, so an error here is a programming mistake.
func mustApplyTemplate(name string, variables map[string]string) string {
	out, err := templates.ApplyTemplate(name, variables)
	if err != nil {
		panic(err)
	}
	return out
}
