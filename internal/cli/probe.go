package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newProbeCommand creates the probe command.
func newProbeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		renderer string
		rules    string
		timeout  int
	}

	cmd := &cobra.Command{
		Use:   "probe <pdf>",
		Short: "Run the renderer against a document and classify its output",
		Long: `Run the external renderer against a document, capture its output,
and scan it for diagnostic markers: image decode success, page render
success, and table/layout detection.

The renderer is terminated at the deadline if it is still running;
whatever it printed up to that point is still inspected. A marker that
does not appear is a normal negative result, not a failure.

Examples:
  # Probe with the configured renderer and timeout
  harness probe document.pdf

  # Override the renderer binary and allow a longer run
  harness probe document.pdf --renderer /opt/chonker8/chonker8-hot --timeout 30

  # Use a custom marker vocabulary
  harness probe document.pdf --rules rules.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.RendererEnv()
			if err != nil {
				return err
			}

			var rules []domain.MarkerRule
			if opts.rules != "" {
				rules, err = c.LoadRules(opts.rules)
				if err != nil {
					return err
				}
			}

			uc := c.RenderProbeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RenderProbeInput{
				PDF:      args[0],
				Renderer: opts.renderer,
				Env:      env,
				Rules:    rules,
				Timeout:  time.Duration(opts.timeout) * time.Second,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printProbeSummary(w, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.renderer, "renderer", "", "renderer binary (default from config)")
	cmd.Flags().StringVar(&opts.rules, "rules", "", "YAML marker rule file (default built-in vocabulary)")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "run deadline in seconds (default from config)")

	return cmd
}

// printProbeSummary echoes the verdicts and the diagnostic lines
// behind them.
func printProbeSummary(w io.Writer, out *usecase.RenderProbeOutput) {
	status := fmt.Sprintf("exit %d in %s", out.Result.ExitCode, out.Result.Elapsed.Round(time.Millisecond))
	if out.Result.TimedOut {
		status += " (terminated at deadline)"
	}
	fmt.Fprintln(w, mutedStyle.Render(status))

	printVerdict(w, out.Decoded, "image decoded")
	printVerdict(w, out.HasTables, "tables detected")
	if out.Artifact != "" {
		fmt.Fprintf(w, "%s artifact %s\n", okMark(), pathStyle.Render(out.Artifact))
	} else {
		fmt.Fprintf(w, "%s no artifact written\n", noMark())
	}

	for _, m := range out.Report.Matches {
		for _, line := range m.Lines {
			fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render(m.Rule.Label+":"), line)
		}
	}
}

func printVerdict(w io.Writer, detected bool, what string) {
	if detected {
		fmt.Fprintf(w, "%s %s\n", okMark(), what)
	} else {
		fmt.Fprintf(w, "%s %s not detected\n", noMark(), what)
	}
}
