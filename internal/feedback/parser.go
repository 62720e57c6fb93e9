package feedback

import (
	"regexp"
	"strings"
)

// tagPattern matches a section tag with an optional trailing colon,
// case-insensitively.
var tagPattern = regexp.MustCompile(`(?i)\[(LEVEL|STRENGTHS|WEAKNESSES|ROADMAP|PSYCHOLOGY)\]:?`)

// ParseSections scans a reply for the five bracketed tags and captures
// each section's text up to the next '[' or end of input. Tags the reply
// omits are absent from the result; section order in the reply does not
// matter. An unrecognized reply parses to an empty map, never an error.
func ParseSections(text string) map[Section]string {
	out := make(map[Section]string)

	matches := tagPattern.FindAllStringSubmatchIndex(text, -1)
	for _, m := range matches {
		name := Section(strings.ToUpper(text[m[2]:m[3]]))

		start := m[1]
		end := len(text)
		if next := strings.IndexByte(text[start:], '['); next >= 0 {
			end = start + next
		}

		out[name] = strings.TrimSpace(text[start:end])
	}

	return out
}

// Parse wraps ParseSections into an Analysis, keeping the raw reply.
func Parse(text string) *Analysis {
	return &Analysis{
		Sections: ParseSections(text),
		Raw:      strings.TrimSpace(text),
	}
}
