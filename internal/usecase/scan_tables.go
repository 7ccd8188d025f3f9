package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chonker8/harness/internal/domain"
)

// ScanTablesInput contains the parameters for a table scan over a set
// of documents.
type ScanTablesInput struct {
	Env     map[string]string // Environment overrides for the renderer process
	PDFs    []string          // Documents to scan (empty = config candidates)
	Timeout time.Duration     // Per-document deadline (0 = config)
}

// TableScan is the outcome for one document.
type TableScan struct {
	PDF       string
	Failure   string   // Non-empty when the renderer could not be run
	Evidence  []string // Diagnostic lines behind the verdict
	HasTables bool
	Skipped   bool // File missing
	TimedOut  bool
}

// ScanTablesOutput contains the per-document outcomes in input order.
type ScanTablesOutput struct {
	Scans []TableScan
}

// ScanTables is the use case for finding documents that trigger the
// renderer's table/layout detection. Documents run strictly one at a
// time; a failure on one document never stops the scan.
type ScanTables struct {
	runner    domain.ProcessRunner
	inspector domain.OutputInspector
	logger    domain.Logger
	cfg       *domain.Config
}

// NewScanTables creates a new ScanTables use case.
func NewScanTables(
	runner domain.ProcessRunner,
	inspector domain.OutputInspector,
	logger domain.Logger,
	cfg *domain.Config,
) *ScanTables {
	return &ScanTables{
		runner:    runner,
		inspector: inspector,
		logger:    logger,
		cfg:       cfg,
	}
}

// Execute probes each document and reports which ones triggered table
// or layout-analysis markers.
func (uc *ScanTables) Execute(ctx context.Context, in ScanTablesInput) (*ScanTablesOutput, error) {
	pdfs := in.PDFs
	if len(pdfs) == 0 {
		pdfs = uc.cfg.Renderer.PDFCandidates
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no documents to scan")
	}

	timeout := in.Timeout
	if timeout == 0 {
		timeout = uc.cfg.Renderer.Timeout()
	}

	out := &ScanTablesOutput{Scans: make([]TableScan, 0, len(pdfs))}
	for _, pdf := range pdfs {
		out.Scans = append(out.Scans, uc.scanOne(ctx, pdf, in.Env, timeout))
	}
	return out, nil
}

func (uc *ScanTables) scanOne(ctx context.Context, pdf string, env map[string]string, timeout time.Duration) TableScan {
	scan := TableScan{PDF: pdf}

	if _, err := os.Stat(pdf); err != nil {
		scan.Skipped = true
		uc.logger.Warn("tables", fmt.Sprintf("skipping missing document %s", pdf))
		return scan
	}

	result, err := uc.runner.Run(ctx, domain.CommandSpec{
		Program: uc.cfg.Renderer.Binary,
		Args:    []string{pdf},
		Env:     env,
		Timeout: timeout,
	})
	if err != nil {
		scan.Failure = err.Error()
		uc.logger.Error("tables", fmt.Sprintf("%s: %v", pdf, err))
		return scan
	}

	scan.TimedOut = result.TimedOut
	report := uc.inspector.Inspect(result.Combined(), domain.DefaultMarkerRules())
	scan.HasTables = report.Matched(domain.LabelTablesDetected) || report.Matched(domain.LabelLayoutAnalysis)
	scan.Evidence = append(
		report.MatchedLines(domain.LabelTablesDetected),
		report.MatchedLines(domain.LabelLayoutAnalysis)...,
	)
	return scan
}
