package cli

import (
	"fmt"
	"time"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newTablesCommand creates the tables command.
func newTablesCommand(c *app.Container) *cobra.Command {
	var opts struct {
		timeout int
	}

	cmd := &cobra.Command{
		Use:   "tables [pdf...]",
		Short: "Find documents that trigger table detection",
		Long: `Run the renderer against each document in turn and report which
ones trigger the table/layout-analysis markers. Without arguments the
configured candidate documents are scanned.

Documents are processed strictly one at a time; a missing file or a
failed run is reported and the scan continues with the next document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.RendererEnv()
			if err != nil {
				return err
			}

			uc := c.ScanTablesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ScanTablesInput{
				PDFs:    args,
				Env:     env,
				Timeout: time.Duration(opts.timeout) * time.Second,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, scan := range out.Scans {
				switch {
				case scan.Skipped:
					fmt.Fprintf(w, "%s %s (missing)\n", noMark(), pathStyle.Render(scan.PDF))
				case scan.Failure != "":
					fmt.Fprintf(w, "%s %s: %s\n", failMark(), pathStyle.Render(scan.PDF), scan.Failure)
				case scan.HasTables:
					fmt.Fprintf(w, "%s %s\n", okMark(), pathStyle.Render(scan.PDF))
					for _, line := range scan.Evidence {
						fmt.Fprintf(w, "    %s\n", line)
					}
				default:
					fmt.Fprintf(w, "%s %s no tables detected\n", noMark(), pathStyle.Render(scan.PDF))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "per-document deadline in seconds (default from config)")

	return cmd
}
