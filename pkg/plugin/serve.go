package plugin

import (
	"os"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
)

// Serve starts the go-plugin RPC server for the given plugin implementation.
// It blocks until the host disconnects. Plugin main functions call this when
// invoked without arguments by the host.
func Serve(p Plugin) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Output: os.Stderr,
		Level:  hclog.Info,
	})

	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			Endpoint: &PluginRPC{Impl: p},
		},
		Logger: logger,
	})
}
