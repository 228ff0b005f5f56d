// Package loader implements host-side plugin discovery and connection: it
// queries a plugin binary for its metadata, checks protocol compatibility and
// attaches to it over go-plugin RPC.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/maibot-go/pluginkit/pkg/plugin"
)

// infoTimeout bounds the --plugin-info query of an untrusted binary.
const infoTimeout = 5 * time.Second

// QueryInfo runs a plugin binary with --plugin-info and parses the metadata
// it prints. No RPC connection is made.
func QueryInfo(pluginPath string) (*plugin.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), infoTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, pluginPath, "--plugin-info")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to query plugin: %w", err)
	}

	var info plugin.PluginInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse plugin info: %w", err)
	}

	return &info, nil
}

// Loaded is a running, connected plugin. Close it when done to tear down the
// plugin process.
type Loaded struct {
	// Info is the metadata reported by --plugin-info.
	Info plugin.PluginInfo

	// Plugin is the live RPC-backed plugin handle.
	Plugin plugin.Plugin

	client *goplugin.Client
}

// Close shuts the plugin down and kills its process.
func (l *Loaded) Close() error {
	err := l.Plugin.Shutdown(context.Background())
	l.client.Kill()
	return err
}

// Load queries a plugin binary, verifies protocol compatibility and connects
// to it over go-plugin RPC.
func Load(pluginPath string, verbose bool) (*Loaded, error) {
	info, err := QueryInfo(pluginPath)
	if err != nil {
		return nil, err
	}

	if info.PluginProtocol != "" && info.PluginProtocol != plugin.ProtocolGoPlugin {
		return nil, fmt.Errorf("unsupported plugin_protocol: %s", info.PluginProtocol)
	}

	if ok, err := plugin.IsCompatible(info.ProtocolVersion); !ok {
		return nil, fmt.Errorf("plugin %s is not compatible: %w", info.Name, err)
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins: map[string]goplugin.Plugin{
			plugin.Endpoint: &plugin.PluginRPC{},
		},
		Cmd:              exec.Command(pluginPath),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.Endpoint)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	handle, ok := raw.(plugin.Plugin)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin endpoint has unexpected type %T", raw)
	}

	if err := handle.Initialize(context.Background()); err != nil {
		client.Kill()
		return nil, fmt.Errorf("plugin initialization failed: %w", err)
	}

	return &Loaded{Info: *info, Plugin: handle, client: client}, nil
}
