package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newScanCommand creates the scan command.
func newScanCommand(c *app.Container) *cobra.Command {
	var opts struct {
		rules string
	}

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan captured output for diagnostic markers",
		Long: `Scan a file (or standard input) for renderer diagnostic markers and
echo the matching lines. Every rule is evaluated independently; a rule
that matches nothing is reported as not detected, which is a normal
outcome.

Examples:
  # Scan a captured stderr log with the built-in vocabulary
  harness scan renderer-stderr.log

  # Pipe output straight in with a custom rule set
  ./chonker8-hot doc.pdf 2>&1 | harness scan --rules rules.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readScanInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			rules := domain.DefaultMarkerRules()
			if opts.rules != "" {
				rules, err = c.LoadRules(opts.rules)
				if err != nil {
					return err
				}
			}

			uc := c.ScanTextUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ScanTextInput{
				Text:  text,
				Rules: rules,
			})
			if err != nil {
				return err
			}

			printScanReport(cmd.OutOrStdout(), rules, out.Report)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.rules, "rules", "", "YAML marker rule file (default built-in vocabulary)")

	return cmd
}

// readScanInput reads the whole scan text from the named file or stdin.
func readScanInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 - scan input path comes from the CLI user
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// printScanReport echoes each rule's verdict and matching lines.
func printScanReport(w io.Writer, rules []domain.MarkerRule, report *domain.InspectionReport) {
	for _, rule := range rules {
		if !report.Matched(rule.Label) {
			fmt.Fprintf(w, "%s %s not detected\n", noMark(), rule.Label)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", okMark(), rule.Label)
		for _, line := range report.MatchedLines(rule.Label) {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
