package usecase

import (
	"context"

	"github.com/chonker8/harness/internal/domain"
)

// ScanTextInput contains the parameters for scanning captured text.
type ScanTextInput struct {
	Text  string              // Captured output to scan
	Rules []domain.MarkerRule // Rules (nil = built-in vocabulary)
}

// ScanTextOutput contains the inspection report.
type ScanTextOutput struct {
	Report *domain.InspectionReport
}

// ScanText is the use case for classifying arbitrary captured output
// by marker rules. It never fails; no match is a normal outcome.
type ScanText struct {
	inspector domain.OutputInspector
}

// NewScanText creates a new ScanText use case.
func NewScanText(inspector domain.OutputInspector) *ScanText {
	return &ScanText{inspector: inspector}
}

// Execute evaluates the rules over the text.
func (uc *ScanText) Execute(_ context.Context, in ScanTextInput) (*ScanTextOutput, error) {
	rules := in.Rules
	if rules == nil {
		rules = domain.DefaultMarkerRules()
	}
	return &ScanTextOutput{Report: uc.inspector.Inspect(in.Text, rules)}, nil
}
