// Package dispatch implements the host-side reference decision logic for
// plugin components: the two-stage action activation check and pattern-based
// command dispatch. Plugins only supply declarative inputs; everything here
// runs on the host side of the boundary.
package dispatch

import (
	"context"
	"math/rand"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/maibot-go/pluginkit/pkg/plugin"
)

// Judge decides LLM-judged activations. Implementations answer the yes/no
// question posed by an action's judge prompt for a given message.
type Judge interface {
	Judge(ctx context.Context, prompt string, msg plugin.Message) (bool, error)
}

// Activator evaluates the first-stage activation check ("should this action
// be considered at all"). The random source is injected so tests can seed it.
type Activator struct {
	rng    *rand.Rand
	judge  Judge
	logger hclog.Logger
}

// NewActivator creates an activator. judge may be nil, in which case
// LLM-judged actions are never considered.
func NewActivator(rng *rand.Rand, judge Judge, logger hclog.Logger) *Activator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Activator{rng: rng, judge: judge, logger: logger}
}

// ShouldConsider reports whether the action passes its first-stage
// activation check for the given message. Judge failures are logged and
// treated as "not considered": the host logs and continues, it never retries.
func (a *Activator) ShouldConsider(ctx context.Context, info plugin.ActionInfo, msg plugin.Message) bool {
	if !modeEnabled(info.ModeEnable, msg.Mode) {
		return false
	}

	switch activationFor(info, msg.Mode) {
	case plugin.ActivationAlways:
		return true
	case plugin.ActivationNever:
		return false
	case plugin.ActivationKeyword:
		return MatchesKeyword(info, msg.Text)
	case plugin.ActivationRandom:
		return a.rng.Float64() < info.RandomProbability
	case plugin.ActivationLLMJudge:
		if a.judge == nil {
			return false
		}
		verdict, err := a.judge.Judge(ctx, info.JudgePrompt, msg)
		if err != nil {
			a.logger.Warn("activation judge failed", "action", info.Name, "error", err)
			return false
		}
		return verdict
	default:
		a.logger.Warn("unknown activation type", "action", info.Name,
			"activation", string(activationFor(info, msg.Mode)))
		return false
	}
}

// activationFor selects the declared activation type for the message's chat
// mode: focus mode uses FocusActivation, everything else NormalActivation.
func activationFor(info plugin.ActionInfo, mode plugin.ChatMode) plugin.ActivationType {
	if mode == plugin.ChatModeFocus {
		return info.FocusActivation
	}
	return info.NormalActivation
}

func modeEnabled(enabled, mode plugin.ChatMode) bool {
	if enabled == "" || enabled == plugin.ChatModeAll {
		return true
	}
	if mode == "" {
		return true
	}
	return enabled == mode
}

// MatchesKeyword reports whether the message text contains any of the
// action's activation keywords. Pure predicate, independently testable.
func MatchesKeyword(info plugin.ActionInfo, text string) bool {
	if len(info.ActivationKeywords) == 0 {
		return false
	}
	haystack := text
	if !info.KeywordCaseSensitive {
		haystack = strings.ToLower(text)
	}
	for _, kw := range info.ActivationKeywords {
		if kw == "" {
			continue
		}
		if !info.KeywordCaseSensitive {
			kw = strings.ToLower(kw)
		}
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// DefaultUseThreshold is the score above which the reference second-stage
// decision selects an action.
const DefaultUseThreshold = 0.25

// Decision is the outcome of the second-stage evaluation ("should this
// action actually run").
type Decision struct {
	Use    bool
	Score  float64
	Reason string
}

// ShouldUse performs the second-stage decision for an action that passed
// (or failed) the first stage. Both stages are pure: a real host substitutes
// its own scoring model, the contract is the same shape.
func ShouldUse(info plugin.ActionInfo, msg plugin.Message, considered bool) Decision {
	if !considered {
		return Decision{Use: false, Score: 0, Reason: "did not pass activation check"}
	}

	score := Score(info, msg)
	if score < DefaultUseThreshold {
		return Decision{Use: false, Score: score, Reason: "score below use threshold"}
	}
	return Decision{Use: true, Score: score, Reason: "selected"}
}

// Score computes a usage-worthiness score in [0, 1] from the action's
// declarative record and the message. Reference heuristic:
// a keyword hit is the strongest signal, a populated require list signals
// the author documented when the action applies, and an empty message
// scores zero.
func Score(info plugin.ActionInfo, msg plugin.Message) float64 {
	if strings.TrimSpace(msg.Text) == "" {
		return 0
	}

	score := 0.2
	if MatchesKeyword(info, msg.Text) {
		score += 0.6
	}
	if len(info.Require) > 0 {
		score += 0.1
	}
	if len(info.Parameters) > 0 {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}
