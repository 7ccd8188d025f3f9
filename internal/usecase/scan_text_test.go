package usecase

import (
	"context"
	"testing"

	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/infra/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanText_Execute_DefaultRules(t *testing.T) {
	uc := NewScanText(inspect.NewScanner())

	out, err := uc.Execute(context.Background(), ScanTextInput{
		Text: "[VELLO] Successfully decoded image\n",
	})

	require.NoError(t, err)
	assert.True(t, out.Report.Matched(domain.LabelDecodeOK))
	assert.False(t, out.Report.Matched(domain.LabelTablesDetected))
}

func TestScanText_Execute_CustomRules(t *testing.T) {
	uc := NewScanText(inspect.NewScanner())

	out, err := uc.Execute(context.Background(), ScanTextInput{
		Text: "pipeline stage ocr done\n",
		Rules: []domain.MarkerRule{
			{Label: "ocr_done", Kind: domain.MatchSubstring, Pattern: "stage ocr done"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ocr_done"}, out.Report.Labels())
}

func TestScanText_Execute_NoMatchIsNotAnError(t *testing.T) {
	uc := NewScanText(inspect.NewScanner())

	out, err := uc.Execute(context.Background(), ScanTextInput{Text: "quiet run\n"})

	require.NoError(t, err)
	assert.Empty(t, out.Report.Matches)
}
