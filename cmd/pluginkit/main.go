// Pluginkit - developer tooling for MaiBot chatbot plugins
//
// Pluginkit validates plugin manifests, generates component reference
// documentation and inspects plugin binaries over RPC.
package main

import (
	"github.com/maibot-go/pluginkit/internal/cli"
)

func main() {
	cli.Execute()
}
