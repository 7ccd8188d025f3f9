package cli

import (
	"fmt"
	"time"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		timeout int
	}

	cmd := &cobra.Command{
		Use:   "show <pdf>",
		Short: "Render a document and display it in the terminal",
		Long: `Run the renderer against a document, verify that it produced the
fixed-name artifact, and display that artifact via the Kitty graphics
protocol. This is the full demo pipeline in one command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.RendererEnv()
			if err != nil {
				return err
			}

			uc := c.ShowPipelineUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowPipelineInput{
				Out:     cmd.OutOrStdout(),
				PDF:     args[0],
				Env:     env,
				Frame:   domain.GraphicsFrame{},
				Timeout: time.Duration(opts.timeout) * time.Second,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "\n%s rendered and displayed %s\n",
				okMark(), pathStyle.Render(out.Artifact))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "render deadline in seconds (default from config)")

	return cmd
}
