package cli

import (
	"fmt"
	"os"

	"github.com/chonker8/harness/internal/app"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default harness.toml",
		Long: `Write the default configuration into the current directory. The
file documents the renderer binary path, the library search path, the
model repository URLs, and the log settings. Refuses to overwrite an
existing config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			path, err := c.WriteDefaultConfig(cwd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", okMark(), pathStyle.Render(path))
			return nil
		},
	}
}
