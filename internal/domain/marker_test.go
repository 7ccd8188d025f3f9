package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKind_IsValid(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want bool
	}{
		{MatchSubstring, true},
		{MatchTag, true},
		{MatchField, true},
		{MatchKind("regex"), false},
		{MatchKind(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.IsValid(), "kind %q", tt.kind)
	}
}

func TestInspectionReport_Matched(t *testing.T) {
	report := &InspectionReport{
		Matches: []RuleMatch{
			{
				Rule:  MarkerRule{Label: LabelDecodeOK, Kind: MatchSubstring, Pattern: "[VELLO] Successfully decoded image"},
				Lines: []string{"[VELLO] Successfully decoded image"},
			},
		},
	}

	assert.True(t, report.Matched(LabelDecodeOK))
	assert.False(t, report.Matched(LabelTablesDetected))
	assert.Equal(t, []string{"[VELLO] Successfully decoded image"}, report.MatchedLines(LabelDecodeOK))
	assert.Nil(t, report.MatchedLines(LabelTablesDetected))
}

func TestInspectionReport_Labels(t *testing.T) {
	report := &InspectionReport{
		Matches: []RuleMatch{
			{Rule: MarkerRule{Label: "a"}, Lines: []string{"x"}},
			{Rule: MarkerRule{Label: "b"}, Lines: []string{"y"}},
			{Rule: MarkerRule{Label: "a"}, Lines: []string{"z"}},
		},
	}

	assert.Equal(t, []string{"a", "b"}, report.Labels())
}

func TestDefaultMarkerRules_CoverRendererMarkers(t *testing.T) {
	labels := make([]string, 0, len(DefaultMarkerRules()))
	for _, r := range DefaultMarkerRules() {
		labels = append(labels, r.Label)
	}

	assert.Contains(t, labels, LabelDecodeOK)
	assert.Contains(t, labels, LabelRenderOK)
	assert.Contains(t, labels, LabelTablesDetected)
	assert.Contains(t, labels, LabelLayoutAnalysis)

	for _, r := range DefaultMarkerRules() {
		assert.True(t, r.Kind.IsValid(), "rule %s", r.Label)
	}
}

func TestMarkerRule_Describe(t *testing.T) {
	tests := []struct {
		name string
		rule MarkerRule
		want string
	}{
		{
			name: "substring rule",
			rule: MarkerRule{Label: "decode_ok", Kind: MatchSubstring, Pattern: "decoded image"},
			want: "decode_ok (decoded image)",
		},
		{
			name: "tag rule",
			rule: MarkerRule{Label: "vello", Kind: MatchTag, Pattern: "VELLO"},
			want: "vello ([VELLO])",
		},
		{
			name: "field rule",
			rule: MarkerRule{Label: "tables", Kind: MatchField, Field: "has_tables", Value: "true"},
			want: "tables (has_tables=true)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Describe())
		})
	}
}
