package plugin

import (
	"context"
	"encoding/json"
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"
)

// Endpoint is the go-plugin dispense name for the plugin interface.
const Endpoint = "plugin"

// PluginRPC implements the go-plugin Plugin interface for chatbot plugins.
type PluginRPC struct {
	goplugin.Plugin
	Impl Plugin
}

// Server returns an RPC server for this plugin.
func (p *PluginRPC) Server(*goplugin.MuxBroker) (any, error) {
	return &PluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *PluginRPC) Client(_ *goplugin.MuxBroker, c *rpc.Client) (any, error) {
	return &PluginRPCClient{client: c}, nil
}

// ExecuteArgs carries a component invocation across the RPC boundary.
// The request is JSON-encoded because Params may hold arbitrary values
// that gob cannot transfer.
type ExecuteArgs struct {
	Name    string
	Request []byte
}

// PluginRPCServer is the RPC server implementation running inside the
// plugin process.
type PluginRPCServer struct {
	Impl Plugin
}

// Initialize implements the RPC method for plugin initialization.
func (s *PluginRPCServer) Initialize(_ any, _ *struct{}) error {
	return s.Impl.Initialize(context.Background())
}

// Shutdown implements the RPC method for plugin teardown.
func (s *PluginRPCServer) Shutdown(_ any, _ *struct{}) error {
	return s.Impl.Shutdown(context.Background())
}

// Components implements the RPC method for listing component registrations.
func (s *PluginRPCServer) Components(_ any, resp *[]byte) error {
	data, err := json.Marshal(s.Impl.Components())
	if err != nil {
		return err
	}
	*resp = data
	return nil
}

// ExecuteAction implements the RPC method for action execution.
func (s *PluginRPCServer) ExecuteAction(args ExecuteArgs, resp *Response) error {
	var req Request
	if err := json.Unmarshal(args.Request, &req); err != nil {
		return err
	}

	result, err := s.Impl.ExecuteAction(context.Background(), args.Name, req)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// ExecuteCommand implements the RPC method for command execution.
func (s *PluginRPCServer) ExecuteCommand(args ExecuteArgs, resp *Response) error {
	var req Request
	if err := json.Unmarshal(args.Request, &req); err != nil {
		return err
	}

	result, err := s.Impl.ExecuteCommand(context.Background(), args.Name, req)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// PluginRPCClient is the host-side RPC client. It satisfies the Plugin
// interface so host code can treat remote plugins like in-process ones.
type PluginRPCClient struct {
	client *rpc.Client
}

var _ Plugin = (*PluginRPCClient)(nil)

// Initialize calls the remote Initialize method.
func (c *PluginRPCClient) Initialize(_ context.Context) error {
	return c.client.Call("Plugin.Initialize", new(any), &struct{}{})
}

// Shutdown calls the remote Shutdown method.
func (c *PluginRPCClient) Shutdown(_ context.Context) error {
	return c.client.Call("Plugin.Shutdown", new(any), &struct{}{})
}

// Components calls the remote Components method. An RPC failure yields an
// empty set: discovery errors surface later through execution calls.
func (c *PluginRPCClient) Components() ComponentSet {
	var data []byte
	if err := c.client.Call("Plugin.Components", new(any), &data); err != nil {
		return ComponentSet{}
	}

	var set ComponentSet
	if err := json.Unmarshal(data, &set); err != nil {
		return ComponentSet{}
	}
	return set
}

// ExecuteAction calls the remote ExecuteAction method.
func (c *PluginRPCClient) ExecuteAction(_ context.Context, name string, req Request) (Response, error) {
	return c.execute("Plugin.ExecuteAction", name, req)
}

// ExecuteCommand calls the remote ExecuteCommand method.
func (c *PluginRPCClient) ExecuteCommand(_ context.Context, name string, req Request) (Response, error) {
	return c.execute("Plugin.ExecuteCommand", name, req)
}

func (c *PluginRPCClient) execute(method, name string, req Request) (Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if err := c.client.Call(method, ExecuteArgs{Name: name, Request: payload}, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}
