package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maibot-go/pluginkit/internal/docgen"
	"github.com/maibot-go/pluginkit/internal/manifest"
)

var docsOutput string

var docsCmd = &cobra.Command{
	Use:   "docs [manifest]",
	Short: "Generate reference documentation for a plugin",
	Long: `Generate markdown reference documentation from a plugin manifest.

The document covers the plugin's metadata, host compatibility range and the
components it declares.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := manifest.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}

		m, err := manifest.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}

		if report := manifest.Validate(m); !report.Valid() {
			return fmt.Errorf("manifest has %d error(s), run 'pluginkit validate %s' for details",
				len(report.Errors), path)
		}

		doc := docgen.Render(m, nil)
		if docsOutput == "" {
			_, err := cmd.OutOrStdout().Write(doc)
			return err
		}

		if err := os.WriteFile(docsOutput, doc, 0644); err != nil {
			return fmt.Errorf("failed to write documentation: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", docsOutput)
		return nil
	},
}

func init() {
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "write documentation to a file instead of stdout")
}
