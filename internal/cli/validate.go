package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maibot-go/pluginkit/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Validate a plugin manifest",
	Long: `Validate a plugin manifest file against the manifest schema.

Structural problems and unsatisfiable host version ranges are reported as
errors; missing optional metadata is reported as warnings. Warnings never
affect the exit status.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := manifest.DefaultFileName
		if len(args) == 1 {
			path = args[0]
		}

		_, report := manifest.ValidateFile(path)
		printReport(cmd, path, report)

		if !report.Valid() {
			return fmt.Errorf("manifest validation failed with %d error(s)", len(report.Errors))
		}
		return nil
	},
}

func printReport(cmd *cobra.Command, path string, report *manifest.Report) {
	out := cmd.OutOrStdout()
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	for _, issue := range report.Errors {
		red.Fprintf(out, "✗ %s", issue.Field)
		fmt.Fprintf(out, ": %s\n", issue.Reason)
	}
	for _, issue := range report.Warnings {
		yellow.Fprintf(out, "⚠ %s", issue.Field)
		fmt.Fprintf(out, ": %s\n", issue.Reason)
	}

	if report.Valid() {
		green.Fprintf(out, "✓ %s is valid", path)
		if n := len(report.Warnings); n > 0 {
			fmt.Fprintf(out, " (%d warning(s))", n)
		}
		fmt.Fprintln(out)
	}
}
