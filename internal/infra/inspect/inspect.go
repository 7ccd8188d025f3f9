// Package inspect classifies captured renderer output by marker rules.
//
// The renderer emits human-readable diagnostic lines such as
//
//	[VELLO] Successfully decoded image: 2236x2640
//	Detection: has_tables=true, method=LayoutAnalysis
//
// Each line is parsed into a typed record (bracket tag, free text,
// key=value fields) and rules match on substrings, tags, or fields.
package inspect

import (
	"strings"

	"github.com/chonker8/harness/internal/domain"
)

// Scanner implements domain.OutputInspector.
type Scanner struct{}

// NewScanner creates a new output scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Ensure Scanner implements domain.OutputInspector interface.
var _ domain.OutputInspector = (*Scanner)(nil)

// Inspect evaluates every rule independently over the text. Matching
// is case-sensitive and line-oriented; a rule matches when it hits at
// least one line. Absence of a match is a normal outcome.
func (s *Scanner) Inspect(text string, rules []domain.MarkerRule) *domain.InspectionReport {
	records := ParseRecords(text)
	report := &domain.InspectionReport{}

	for _, rule := range rules {
		var lines []string
		for _, rec := range records {
			if ruleMatches(rule, rec) {
				lines = append(lines, rec.Line)
			}
		}
		if len(lines) > 0 {
			report.Matches = append(report.Matches, domain.RuleMatch{Rule: rule, Lines: lines})
		}
	}
	return report
}

// ParseRecords splits captured text into one diagnostic record per
// non-empty line.
func ParseRecords(text string) []domain.DiagnosticRecord {
	var records []domain.DiagnosticRecord
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, parseLine(line))
	}
	return records
}

// parseLine extracts the leading bracket tag and any key=value fields.
func parseLine(line string) domain.DiagnosticRecord {
	rec := domain.DiagnosticRecord{Line: line}

	rest := strings.TrimSpace(line)
	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end > 1 {
			rec.Tag = rest[1:end]
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	rec.Text = rest

	for _, token := range strings.FieldsFunc(rest, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	}) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key == "" {
			continue
		}
		if rec.Fields == nil {
			rec.Fields = make(map[string]string)
		}
		rec.Fields[key] = value
	}
	return rec
}

func ruleMatches(rule domain.MarkerRule, rec domain.DiagnosticRecord) bool {
	switch rule.Kind {
	case domain.MatchTag:
		return rec.Tag == rule.Pattern
	case domain.MatchField:
		return rec.Fields[rule.Field] == rule.Value
	default:
		// Substring containment against the raw line, the original
		// grep semantics.
		return strings.Contains(rec.Line, rule.Pattern)
	}
}
