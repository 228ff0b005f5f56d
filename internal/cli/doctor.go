package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-ps"
	"github.com/spf13/cobra"
)

// defaultPluginPrefix is the conventional executable name prefix for plugin
// binaries built with this SDK.
const defaultPluginPrefix = "maibot-plugin-"

var doctorPrefix string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for leftover plugin processes",
	Long: `Scan the process table for plugin processes whose host has gone away.

A plugin process is considered orphaned when its executable carries the
plugin name prefix but its parent process no longer exists, which usually
means the host crashed without killing its plugins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orphans, err := findOrphanedPlugins(doctorPrefix)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(orphans) == 0 {
			color.New(color.FgGreen).Fprintf(out, "✓ no orphaned plugin processes found\n")
			return nil
		}

		color.New(color.FgYellow).Fprintf(out, "⚠ found %d orphaned plugin process(es):\n", len(orphans))
		for _, p := range orphans {
			fmt.Fprintf(out, "  pid %-8d %s\n", p.Pid(), p.Executable())
		}
		fmt.Fprintln(out, "\nKill them manually once you have confirmed no host is using them.")
		return nil
	},
}

// findOrphanedPlugins returns plugin processes that were reparented to init,
// meaning their original host process has exited.
func findOrphanedPlugins(prefix string) ([]ps.Process, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var orphans []ps.Process
	for _, p := range processes {
		if !strings.HasPrefix(p.Executable(), prefix) {
			continue
		}
		if p.PPid() == 1 {
			orphans = append(orphans, p)
		}
	}

	return orphans, nil
}

func init() {
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", defaultPluginPrefix, "executable name prefix identifying plugin processes")
}
