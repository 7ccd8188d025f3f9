package cli

import (
	"fmt"

	"github.com/chonker8/harness/internal/app"
	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/usecase"
	"github.com/spf13/cobra"
)

// newDisplayCommand creates the display command.
func newDisplayCommand(c *app.Container) *cobra.Command {
	var opts struct {
		width     int
		height    int
		placement bool
	}

	cmd := &cobra.Command{
		Use:   "display <image>",
		Short: "Show an image in a Kitty-compatible terminal",
		Long: `Emit a local image to standard output using the Kitty graphics
protocol (a=T transmit, f=100 PNG). The whole payload goes out in one
escape sequence, which works for single static images.

Examples:
  # Show the last rendered artifact
  harness display vello_render_test.png

  # Direct placement at the cursor, scaled to 400x500 source pixels
  harness display render.png --direct --width 400 --height 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame := domain.GraphicsFrame{
				Width:  opts.width,
				Height: opts.height,
			}
			if opts.placement {
				frame.Placement = domain.PlacementDirect
			}

			uc := c.DisplayImageUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DisplayImageInput{
				Out:   cmd.OutOrStdout(),
				Path:  args[0],
				Frame: frame,
			})
			if err != nil {
				return err
			}

			// The image itself went to stdout; keep the summary off it.
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%s emitted %s (%d bytes)\n",
				okMark(), pathStyle.Render(out.Path), out.ImageBytes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.placement, "direct", false, "request direct placement at the cursor (t=d)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "source width in pixels (s key)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "source height in pixels (v key)")

	return cmd
}
