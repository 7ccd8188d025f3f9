package domain

import "strings"

// MatchKind selects how a MarkerRule is evaluated against a line.
type MatchKind string

// Rule kinds.
const (
	// MatchSubstring matches when the pattern occurs within the raw line.
	MatchSubstring MatchKind = "substring"
	// MatchTag matches when the line carries the given bracket tag, e.g. [VELLO].
	MatchTag MatchKind = "tag"
	// MatchField matches when the line carries a key=value field with the
	// given key and value, e.g. has_tables=true.
	MatchField MatchKind = "field"
)

// IsValid reports whether the kind is one of the known rule kinds.
func (k MatchKind) IsValid() bool {
	switch k {
	case MatchSubstring, MatchTag, MatchField:
		return true
	}
	return false
}

// Well-known marker labels emitted by the renderer.
const (
	LabelDecodeOK       = "decode_ok"
	LabelRenderOK       = "render_ok"
	LabelTablesDetected = "tables_detected"
	LabelLayoutAnalysis = "layout_analysis"
)

// DefaultMarkerRules returns the marker vocabulary of the chonker8-hot
// renderer: decode and render success, and table/layout detection.
func DefaultMarkerRules() []MarkerRule {
	return []MarkerRule{
		{
			Label:   LabelDecodeOK,
			Kind:    MatchSubstring,
			Pattern: "[VELLO] Successfully decoded image",
		},
		{
			Label:   LabelRenderOK,
			Kind:    MatchSubstring,
			Pattern: "Successfully rendered page!",
		},
		{
			Label: LabelTablesDetected,
			Kind:  MatchField,
			Field: "has_tables",
			Value: "true",
		},
		{
			Label:   LabelLayoutAnalysis,
			Kind:    MatchSubstring,
			Pattern: "LayoutAnalysis",
		},
	}
}

// MarkerRule binds a pattern to the semantic label it implies.
// Rules are stateless and evaluated independently per scan;
// matching is case-sensitive and line-oriented.
type MarkerRule struct {
	Label   string    `yaml:"label"`
	Kind    MatchKind `yaml:"kind"`
	Pattern string    `yaml:"pattern,omitempty"` // substring or tag name
	Field   string    `yaml:"field,omitempty"`   // field key (kind=field)
	Value   string    `yaml:"value,omitempty"`   // expected field value (kind=field)
}

// DiagnosticRecord is one line of captured output parsed into a typed
// event: an optional leading bracket tag, the remaining free text, and
// any key=value fields found on the line.
type DiagnosticRecord struct {
	Fields map[string]string
	Tag    string
	Text   string
	Line   string // the raw line, for diagnostic echo
}

// RuleMatch pairs a rule with the lines it matched.
type RuleMatch struct {
	Rule  MarkerRule
	Lines []string
}

// InspectionReport holds the outcome of scanning captured text.
// Absence of a match is a normal outcome, never an error.
type InspectionReport struct {
	Matches []RuleMatch
}

// Matched reports whether any rule with the given label matched.
func (r *InspectionReport) Matched(label string) bool {
	for _, m := range r.Matches {
		if m.Rule.Label == label {
			return true
		}
	}
	return false
}

// MatchedLines returns the lines matched by rules with the given label.
func (r *InspectionReport) MatchedLines(label string) []string {
	var lines []string
	for _, m := range r.Matches {
		if m.Rule.Label == label {
			lines = append(lines, m.Lines...)
		}
	}
	return lines
}

// Labels returns the distinct matched labels in evaluation order.
func (r *InspectionReport) Labels() []string {
	var labels []string
	for _, m := range r.Matches {
		if !contains(labels, m.Rule.Label) {
			labels = append(labels, m.Rule.Label)
		}
	}
	return labels
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// Describe returns a short human-readable form of the rule for logs.
func (r MarkerRule) Describe() string {
	switch r.Kind {
	case MatchField:
		return r.Label + " (" + r.Field + "=" + r.Value + ")"
	case MatchTag:
		return r.Label + " ([" + r.Pattern + "])"
	default:
		return r.Label + " (" + strings.TrimSpace(r.Pattern) + ")"
	}
}
