// Package plugin provides the public API for MaiBot-style plugins.
// External plugins should import this package instead of internal packages.
package plugin

// ComponentKind identifies how the host invokes a component.
type ComponentKind string

const (
	// KindAction is a reactive component chosen by the host's own decision
	// logic rather than direct pattern matching.
	KindAction ComponentKind = "action"

	// KindCommand is a component invoked when user input matches a
	// registered pattern.
	KindCommand ComponentKind = "command"
)

// ActivationType describes the first-stage activation check the host applies
// before an action is even considered for use.
type ActivationType string

const (
	// ActivationAlways makes the action a candidate for every message.
	ActivationAlways ActivationType = "always"

	// ActivationKeyword activates when the message contains one of the
	// declared keywords.
	ActivationKeyword ActivationType = "keyword"

	// ActivationRandom activates with the declared probability.
	ActivationRandom ActivationType = "random"

	// ActivationLLMJudge defers the activation decision to a host-side
	// language-model judge using the declared prompt.
	ActivationLLMJudge ActivationType = "llm_judge"

	// ActivationNever disables the action entirely.
	ActivationNever ActivationType = "never"
)

// ChatMode is the host conversation mode a component is enabled in.
type ChatMode string

const (
	ChatModeAll    ChatMode = "all"
	ChatModeNormal ChatMode = "normal"
	ChatModeFocus  ChatMode = "focus"
)

// ComponentInfo is the identity shared by every component registration
// record handed to the host.
type ComponentInfo struct {
	Kind        ComponentKind `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

// ActionInfo is the declarative input to the host's two-stage activation
// decision. The plugin supplies only this record; the decision logic itself
// lives on the host side.
type ActionInfo struct {
	ComponentInfo

	// First-stage activation ("should this be considered at all").
	FocusActivation      ActivationType `json:"focus_activation"`
	NormalActivation     ActivationType `json:"normal_activation"`
	ModeEnable           ChatMode       `json:"mode_enable"`
	ParallelAction       bool           `json:"parallel_action"`
	ActivationKeywords   []string       `json:"activation_keywords,omitempty"`
	KeywordCaseSensitive bool           `json:"keyword_case_sensitive,omitempty"`
	RandomProbability    float64        `json:"random_probability,omitempty"`
	JudgePrompt          string         `json:"judge_prompt,omitempty"`

	// Second-stage inputs ("should this actually run"): the parameters the
	// action accepts and the usage-worthiness descriptions the host weighs.
	Parameters      map[string]string `json:"parameters,omitempty"`
	Require         []string          `json:"require,omitempty"`
	AssociatedTypes []string          `json:"associated_types,omitempty"`
}

// CommandInfo describes a pattern-matched component. Intercept declares
// whether a successful match stops further handling.
type CommandInfo struct {
	ComponentInfo

	Pattern   string   `json:"pattern"`
	Examples  []string `json:"examples,omitempty"`
	Intercept bool     `json:"intercept"`
}

// ComponentSet lists every component a plugin offers to the host.
type ComponentSet struct {
	Actions  []ActionInfo  `json:"actions"`
	Commands []CommandInfo `json:"commands"`
}

// Infos flattens the set into plain registration records, commands after
// actions, each in registration order.
func (s ComponentSet) Infos() []ComponentInfo {
	infos := make([]ComponentInfo, 0, len(s.Actions)+len(s.Commands))
	for _, a := range s.Actions {
		infos = append(infos, a.ComponentInfo)
	}
	for _, c := range s.Commands {
		infos = append(infos, c.ComponentInfo)
	}
	return infos
}

// Message is the inbound chat message a component is invoked against.
type Message struct {
	Text   string   `json:"text"`
	UserID string   `json:"user_id,omitempty"`
	ChatID string   `json:"chat_id,omitempty"`
	Mode   ChatMode `json:"mode,omitempty"`
}

// Request is the invocation payload the host passes to a component handler.
type Request struct {
	Message Message `json:"message"`

	// Args holds the named capture groups from a command pattern match.
	Args map[string]string `json:"args,omitempty"`

	// Params holds the action parameters the host selected during its
	// second-stage decision.
	Params map[string]any `json:"params,omitempty"`
}

// Response is the outcome of a component execution.
type Response struct {
	// OK reports whether the component considers the execution successful.
	OK bool `json:"ok"`

	// Reply is user-visible text to send back, empty for none.
	Reply string `json:"reply,omitempty"`

	// Summary is a short description for the host's action log.
	Summary string `json:"summary,omitempty"`
}

// PluginInfo is the metadata a plugin binary prints for --plugin-info
// discovery, before any RPC connection is made.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"`
}
