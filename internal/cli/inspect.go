package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maibot-go/pluginkit/internal/loader"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <plugin-binary>",
	Short: "Inspect a plugin binary over RPC",
	Long: `Start a plugin binary, connect to it over RPC and report its metadata
and the components it registers. The plugin process is torn down afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		logger.Debug("loading plugin", "path", args[0])

		loaded, err := loader.Load(args[0], globalVerbose)
		if err != nil {
			return err
		}
		defer func() {
			if err := loaded.Close(); err != nil {
				logger.Warn("plugin shutdown reported an error", "error", err)
			}
		}()

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)

		bold.Fprintf(out, "%s %s\n", loaded.Info.Name, loaded.Info.Version)
		if loaded.Info.Description != "" {
			fmt.Fprintln(out, loaded.Info.Description)
		}
		fmt.Fprintf(out, "Protocol: %s (%s)\n", loaded.Info.ProtocolVersion, loaded.Info.PluginProtocol)

		set := loaded.Plugin.Components()
		fmt.Fprintf(out, "\nComponents: %d action(s), %d command(s)\n", len(set.Actions), len(set.Commands))
		for _, a := range set.Actions {
			fmt.Fprintf(out, "  action  %-20s %s\n", a.Name, a.Description)
		}
		for _, c := range set.Commands {
			fmt.Fprintf(out, "  command %-20s %s\n", c.Name, c.Description)
		}

		return nil
	},
}
