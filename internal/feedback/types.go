// Package feedback builds the qualitative-analysis request sent to the
// model provider and parses the tagged sections out of its reply.
package feedback

// Section identifies one of the tagged blocks the model is asked to
// produce in its reply.
type Section string

const (
	SectionLevel      Section = "LEVEL"
	SectionStrengths  Section = "STRENGTHS"
	SectionWeaknesses Section = "WEAKNESSES"
	SectionRoadmap    Section = "ROADMAP"
	SectionPsychology Section = "PSYCHOLOGY"
)

// Sections lists all tags in their requested output order.
var Sections = []Section{
	SectionLevel,
	SectionStrengths,
	SectionWeaknesses,
	SectionRoadmap,
	SectionPsychology,
}

// Analysis is the parsed result of one feedback request.
type Analysis struct {
	// Sections holds the text of each tag found in the reply. A tag the
	// model omitted is simply absent from the map.
	Sections map[Section]string

	// Raw is the unparsed reply text, kept for the shareable report.
	Raw string
}

// Get returns the text for a section, or "" if the model omitted it.
func (a *Analysis) Get(s Section) string {
	if a == nil {
		return ""
	}
	return a.Sections[s]
}

// Has reports whether the reply contained the given section.
func (a *Analysis) Has(s Section) bool {
	if a == nil {
		return false
	}
	_, ok := a.Sections[s]
	return ok
}
