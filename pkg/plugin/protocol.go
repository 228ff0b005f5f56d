package plugin

import (
	"fmt"

	goplugin "github.com/hashicorp/go-plugin"

	"github.com/maibot-go/pluginkit/internal/semver"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this host SDK can
	// work with.
	MinCompatibleVersion = "0.1.0"

	// ProtocolGoPlugin marks a plugin speaking the HashiCorp go-plugin RPC
	// protocol, the only transport this SDK serves.
	ProtocolGoPlugin = "go-plugin"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// Plugins built against an incompatible major version cannot connect.
//
// go-plugin's ProtocolVersion is a single uint that must match exactly; the
// full semantic version check (including MinCompatibleVersion) happens
// separately via the --plugin-info query and IsCompatible().
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  protocolMajor(),
	MagicCookieKey:   "MAIBOT_PLUGIN",
	MagicCookieValue: "maibot_plugin_host",
}

func protocolMajor() uint {
	v, err := semver.Parse(ProtocolVersion)
	if err != nil {
		// ProtocolVersion is a constant with a valid format.
		panic(fmt.Sprintf("invalid ProtocolVersion constant: %v", err))
	}
	return uint(v.Major)
}

// IsCompatible checks whether a plugin's protocol version can talk to this
// host SDK. Rules:
// - Major version must match exactly (breaking changes).
// - Minor and patch versions may be higher (backward compatible).
// - Versions below MinCompatibleVersion are rejected.
func IsCompatible(pluginVersion string) (bool, error) {
	pv, err := semver.Parse(pluginVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse plugin protocol version: %w", err)
	}

	current, err := semver.Parse(ProtocolVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse current protocol version: %w", err)
	}

	minimum, err := semver.Parse(MinCompatibleVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}

	if pv.Major != current.Major {
		return false, fmt.Errorf(
			"incompatible major version: plugin is %s, host requires %d.x.x",
			pv.String(), current.Major,
		)
	}

	if pv.Compare(minimum) < 0 {
		return false, fmt.Errorf(
			"plugin protocol version %s is too old, minimum required is %s",
			pv.String(), MinCompatibleVersion,
		)
	}

	return true, nil
}
