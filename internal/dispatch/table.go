package dispatch

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-hclog"

	"github.com/maibot-go/pluginkit/pkg/plugin"
)

// Table is an ordered command dispatch table. Patterns are consulted in
// registration order and ties are broken first-registered-wins.
type Table struct {
	entries []tableEntry
	logger  hclog.Logger
}

type tableEntry struct {
	info plugin.CommandInfo
	re   *regexp.Regexp
	cmd  plugin.Command
}

// NewTable creates an empty dispatch table.
func NewTable(logger hclog.Logger) *Table {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Table{logger: logger}
}

// Register compiles the command's pattern and appends it to the table.
func (t *Table) Register(cmd plugin.Command) error {
	info := cmd.Info()
	re, err := regexp.Compile(info.Pattern)
	if err != nil {
		return fmt.Errorf("command %q has invalid pattern %q: %w", info.Name, info.Pattern, err)
	}
	t.entries = append(t.entries, tableEntry{info: info, re: re, cmd: cmd})
	return nil
}

// Len returns the number of registered commands.
func (t *Table) Len() int {
	return len(t.entries)
}

// MatchResult describes a command whose pattern matched the input.
type MatchResult struct {
	Command plugin.Command
	Info    plugin.CommandInfo

	// Args holds the named capture groups; unnamed groups are dropped. A
	// pattern without named groups yields an empty map.
	Args map[string]string

	// Intercept mirrors the command's declaration: a true value stops
	// further handling after this command runs.
	Intercept bool
}

// Match returns the first registered command whose pattern matches the
// input. Pure lookup, no handler execution.
func (t *Table) Match(text string) (*MatchResult, bool) {
	for _, e := range t.entries {
		if result := matchEntry(e, text); result != nil {
			return result, true
		}
	}
	return nil, false
}

func matchEntry(e tableEntry, text string) *MatchResult {
	groups := e.re.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}

	args := make(map[string]string)
	for i, name := range e.re.SubexpNames() {
		if name != "" && i < len(groups) {
			args[name] = groups[i]
		}
	}

	return &MatchResult{
		Command:   e.cmd,
		Info:      e.info,
		Args:      args,
		Intercept: e.info.Intercept,
	}
}

// Dispatch runs every matching command against the message, in registration
// order, stopping after the first intercepting match. Handler errors are
// caught at this boundary and converted into a user-visible failure
// response; the host logs and continues, nothing propagates as a crash.
func (t *Table) Dispatch(ctx context.Context, msg plugin.Message) []plugin.Response {
	var responses []plugin.Response

	for _, e := range t.entries {
		result := matchEntry(e, msg.Text)
		if result == nil {
			continue
		}

		req := plugin.Request{Message: msg, Args: result.Args}
		resp, err := result.Command.Execute(ctx, req)
		if err != nil {
			t.logger.Error("command execution failed", "command", e.info.Name, "error", err)
			resp = plugin.Response{
				OK:      false,
				Reply:   fmt.Sprintf("command %s failed: %v", e.info.Name, err),
				Summary: "execution error",
			}
		}
		responses = append(responses, resp)

		if result.Intercept {
			break
		}
	}

	return responses
}
