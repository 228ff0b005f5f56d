package plugin

import (
	"context"
)

// Plugin is the capability set the external host calls through. The host
// owns the lifecycle: it loads the manifest, initializes the plugin, asks
// for its components and decides when each one runs.
type Plugin interface {
	// Initialize prepares the plugin for use (load configuration, warm
	// caches). Called once before any component execution.
	Initialize(ctx context.Context) error

	// Shutdown releases plugin resources. Called once on unload.
	Shutdown(ctx context.Context) error

	// Components returns the declarative registration records for every
	// component the plugin offers.
	Components() ComponentSet

	// ExecuteAction runs the named action. Errors are reported to the
	// host, which converts them into a user-visible failure message.
	ExecuteAction(ctx context.Context, name string, req Request) (Response, error)

	// ExecuteCommand runs the named command with the captured pattern
	// groups in req.Args.
	ExecuteCommand(ctx context.Context, name string, req Request) (Response, error)
}

// Action is a reactive component. The host invokes it through its two-stage
// activation decision using the declarative Info record; the component
// itself only executes.
type Action interface {
	Info() ActionInfo
	Execute(ctx context.Context, req Request) (Response, error)
}

// Command is a pattern-matched component. The host matches user input
// against Info().Pattern and passes named capture groups in req.Args.
type Command interface {
	Info() CommandInfo
	Execute(ctx context.Context, req Request) (Response, error)
}
