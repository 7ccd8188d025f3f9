package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/infra/inspect"
	"github.com/chonker8/harness/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTables_Execute(t *testing.T) {
	// Setup: two real documents, one missing.
	dir := t.TempDir()
	withTables := filepath.Join(dir, "report.pdf")
	plain := filepath.Join(dir, "letter.pdf")
	require.NoError(t, os.WriteFile(withTables, []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(plain, []byte("%PDF"), 0o644))
	missing := filepath.Join(dir, "absent.pdf")

	runner := testutil.NewMockProcessRunner()
	runner.Results = []*domain.CommandResult{
		{Stderr: "Detection: has_tables=true, method=LayoutAnalysis\n"},
		{Stderr: "Detection: has_tables=false\n"},
	}

	uc := NewScanTables(runner, inspect.NewScanner(), testutil.NopLogger{}, domain.NewDefaultConfig())

	// Execute
	out, err := uc.Execute(context.Background(), ScanTablesInput{
		PDFs: []string{withTables, plain, missing},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Scans, 3)

	assert.True(t, out.Scans[0].HasTables)
	assert.Contains(t, out.Scans[0].Evidence, "Detection: has_tables=true, method=LayoutAnalysis")

	assert.False(t, out.Scans[1].HasTables)
	assert.Empty(t, out.Scans[1].Evidence)

	assert.True(t, out.Scans[2].Skipped)
	assert.Len(t, runner.Specs, 2, "missing documents are not run")
}

func TestScanTables_Execute_FailureDoesNotStopScan(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pdf")
	second := filepath.Join(dir, "b.pdf")
	require.NoError(t, os.WriteFile(first, []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("%PDF"), 0o644))

	runner := testutil.NewMockProcessRunner()
	runner.RunErr = domain.ErrLaunchFailure

	uc := NewScanTables(runner, inspect.NewScanner(), testutil.NopLogger{}, domain.NewDefaultConfig())

	out, err := uc.Execute(context.Background(), ScanTablesInput{PDFs: []string{first, second}})

	require.NoError(t, err)
	require.Len(t, out.Scans, 2)
	assert.NotEmpty(t, out.Scans[0].Failure)
	assert.NotEmpty(t, out.Scans[1].Failure)
}

func TestScanTables_Execute_NoDocuments(t *testing.T) {
	uc := NewScanTables(testutil.NewMockProcessRunner(), inspect.NewScanner(), testutil.NopLogger{}, domain.NewDefaultConfig())

	_, err := uc.Execute(context.Background(), ScanTablesInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no documents to scan")
}

func TestScanTables_Execute_ConfigCandidates(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "candidate.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))

	cfg := domain.NewDefaultConfig()
	cfg.Renderer.PDFCandidates = []string{pdf}

	runner := testutil.NewMockProcessRunner()
	uc := NewScanTables(runner, inspect.NewScanner(), testutil.NopLogger{}, cfg)

	out, err := uc.Execute(context.Background(), ScanTablesInput{})

	require.NoError(t, err)
	require.Len(t, out.Scans, 1)
	assert.Equal(t, pdf, out.Scans[0].PDF)
}

func TestScanTables_Execute_TimeoutRecorded(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "slow.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))

	runner := testutil.NewMockProcessRunner()
	runner.Result = &domain.CommandResult{TimedOut: true, ExitCode: -1}

	uc := NewScanTables(runner, inspect.NewScanner(), testutil.NopLogger{}, domain.NewDefaultConfig())

	out, err := uc.Execute(context.Background(), ScanTablesInput{PDFs: []string{pdf}})

	require.NoError(t, err)
	assert.True(t, out.Scans[0].TimedOut)
	assert.False(t, out.Scans[0].HasTables)
}
