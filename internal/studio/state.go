// Package studio owns the editor-session state machine: the sketch source,
// the model selection and toggles, and the single-flight generation phase.
// State values are immutable; transitions return the successor state and the
// Session applies side effects only around them.
package studio

import "github.com/ziadkadry99/sketchpad/internal/llm"

// Phase is the generation state of a session. Overlapping generation
// requests are dropped while the session is PhaseGenerating.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGenerating
)

func (p Phase) String() string {
	if p == PhaseGenerating {
		return "generating"
	}
	return "idle"
}

// Settings are the control-bar values: toggles, model, temperature.
type Settings struct {
	AutoSave     bool    `json:"autoSave"`
	AutoGenerate bool    `json:"autoGenerate"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
}

// State is the complete transient state of one editor session. Nothing here
// survives the session; reload starts from scratch.
type State struct {
	Code       string
	LastPrompt string
	Phase      Phase
	Settings   Settings
}

// NewState returns the initial state for a session on the given model.
func NewState(model string) State {
	return State{
		Phase: PhaseIdle,
		Settings: Settings{
			Model:       model,
			Temperature: llm.DefaultTemperature(model),
		},
	}
}

// WithCode replaces the sketch source.
func (s State) WithCode(code string) State {
	s.Code = code
	return s
}

// WithModel selects a model and resets the temperature to that model's
// default.
func (s State) WithModel(model string) State {
	s.Settings.Model = model
	s.Settings.Temperature = llm.DefaultTemperature(model)
	return s
}

// WithTemperature overrides the temperature.
func (s State) WithTemperature(t float64) State {
	s.Settings.Temperature = t
	return s
}

// WithAutoSave sets the auto-save toggle.
func (s State) WithAutoSave(on bool) State {
	s.Settings.AutoSave = on
	return s
}

// WithAutoGenerate sets the auto-generate toggle.
func (s State) WithAutoGenerate(on bool) State {
	s.Settings.AutoGenerate = on
	return s
}

// BeginGeneration moves Idle to Generating and records the prompt. It
// reports false when a generation is already in flight; the caller must then
// drop the request, not queue it.
func (s State) BeginGeneration(prompt string) (State, bool) {
	if s.Phase == PhaseGenerating {
		return s, false
	}
	s.Phase = PhaseGenerating
	s.LastPrompt = prompt
	return s, true
}

// FinishGeneration returns to Idle. On success the generated code replaces
// the sketch source verbatim; on failure the source is left untouched.
// The phase reset is unconditional.
func (s State) FinishGeneration(code string, err error) State {
	s.Phase = PhaseIdle
	if err == nil {
		s.Code = code
	}
	return s
}
