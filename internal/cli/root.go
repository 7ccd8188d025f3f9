// Package cli provides the command-line interface for the render harness.
package cli

import (
	"github.com/chonker8/harness/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the harness.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "harness",
		Short: "Orchestration harness for the chonker8-hot renderer",
		Long: `harness drives the external chonker8-hot PDF renderer and its
OCR models: it launches the renderer against documents, classifies the
diagnostic markers it emits, fetches the TrOCR ONNX models, and displays
rendered artifacts in Kitty-compatible terminals.

The renderer binary itself is an external collaborator; the harness only
invokes it and inspects what it prints.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(newProbeCommand(c))
	root.AddCommand(newTablesCommand(c))
	root.AddCommand(newModelsCommand(c))
	root.AddCommand(newDisplayCommand(c))
	root.AddCommand(newScanCommand(c))
	root.AddCommand(newShowCommand(c))
	root.AddCommand(newInitCommand(c))

	return root
}
