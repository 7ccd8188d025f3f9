package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newModelsCommand creates the models command group.
func newModelsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the OCR model files",
	}

	cmd.AddCommand(newModelsFetchCommand(c))
	return cmd
}

// newModelsFetchCommand creates the models fetch command.
func newModelsFetchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		dir string
	}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the TrOCR ONNX models",
		Long: `Download the TrOCR decoder and encoder ONNX models from the
configured model repository into the models directory.

A pre-existing decoder model is renamed to the backup file before the
fresh download overwrites it; any prior backup at that path is replaced.
Downloads stream in bounded chunks and are never retried or resumed: a
failure leaves a partial file behind for inspection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errOut := cmd.ErrOrStderr()
			bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

			onProgress := func(p domain.Progress) {
				if f := p.Fraction(); f >= 0 {
					fmt.Fprintf(errOut, "\r%s %d/%d bytes", bar.ViewAs(f), p.Downloaded, p.Total)
				} else {
					fmt.Fprintf(errOut, "\rdownloaded %d bytes", p.Downloaded)
				}
			}

			uc := c.FetchModelsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FetchModelsInput{
				Dir:        opts.dir,
				OnProgress: onProgress,
			})
			fmt.Fprintln(errOut)
			if err != nil {
				fmt.Fprintf(errOut, "%s %v\n", failMark(), err)
				printModelsRemediation(errOut)
				return err
			}

			w := cmd.OutOrStdout()
			if out.BackupPath != "" {
				fmt.Fprintf(w, "%s previous model moved to %s\n", okMark(), pathStyle.Render(out.BackupPath))
			}
			fmt.Fprintf(w, "%s decoder saved to %s\n", okMark(), pathStyle.Render(out.DecoderPath))
			fmt.Fprintf(w, "%s encoder saved to %s\n", okMark(), pathStyle.Render(out.EncoderPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "destination directory (default from config)")

	return cmd
}

// printModelsRemediation echoes manual download instructions after a
// failed fetch.
func printModelsRemediation(w io.Writer) {
	fmt.Fprintln(w, "Alternative: download the ONNX models manually from:")
	fmt.Fprintln(w, "  - https://huggingface.co/Xenova/trocr-small-printed")
	fmt.Fprintln(w, "  - https://huggingface.co/Xenova/trocr-base-handwritten")
	fmt.Fprintln(w, "Or convert the PyTorch model yourself:")
	fmt.Fprintln(w, "  python -m transformers.onnx --model=microsoft/trocr-base-printed models/")
}
