package studio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/preview"
	"github.com/ziadkadry99/sketchpad/internal/sketch"
)

// ErrBusy reports a generation request dropped because one is already in
// flight. Overlapping requests are dropped, never queued.
var ErrBusy = errors.New("generation already in flight")

const (
	DefaultModel             = "gemini-2.0-flash"
	DefaultMaxTokens         = 8192
	DefaultTopP              = 0.95
	DefaultTopK              = 40
	DefaultAutoSaveDelay     = 2 * time.Second
	DefaultAutoGenerateDelay = 10 * time.Second

	downloadName      = "sketch.js"
	generationTimeout = 2 * time.Minute
)

// Config sets up a session. Zero fields fall back to the defaults above.
type Config struct {
	Provider          llm.Provider
	Model             string
	InitialCode       string
	MaxTokens         int
	TopP              float64
	TopK              int
	AutoSaveDelay     time.Duration
	AutoGenerateDelay time.Duration
}

// WithDefaults fills zero fields with the package defaults.
func (c Config) WithDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.TopP == 0 {
		c.TopP = DefaultTopP
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.AutoSaveDelay == 0 {
		c.AutoSaveDelay = DefaultAutoSaveDelay
	}
	if c.AutoGenerateDelay == 0 {
		c.AutoGenerateDelay = DefaultAutoGenerateDelay
	}
	return c
}

// Session drives one connected editor. All mutation goes through the State
// transitions under one mutex; events are sent only after the lock is
// released. send must be safe for concurrent use.
type Session struct {
	ID string

	cfg      Config
	provider llm.Provider
	send     func(Event)

	mu            sync.Mutex
	state         State
	renderer      *preview.Renderer
	autoSaveTimer *time.Timer
	autoGenTimer  *time.Timer
	pendingShot   bool
	closed        bool
}

// NewSession creates a session with its own renderer and a fresh state.
func NewSession(cfg Config, send func(Event)) *Session {
	cfg = cfg.WithDefaults()
	return &Session{
		ID:       uuid.NewString(),
		cfg:      cfg,
		provider: cfg.Provider,
		send:     send,
		state:    NewState(cfg.Model).WithCode(cfg.InitialCode),
		renderer: preview.NewRenderer(),
	}
}

// Start pushes the initial settings, code, and preview to the client.
func (s *Session) Start() {
	s.mu.Lock()
	settings := s.state.Settings
	code := s.state.Code
	doc, rendered := s.renderer.Render(code)
	s.mu.Unlock()

	s.send(Event{Type: EventSettings, Settings: &settings})
	s.send(Event{Type: EventCode, Code: code})
	if rendered {
		s.send(Event{Type: EventPreview, Document: doc})
	}
}

// SetCode replaces the sketch source with an edit from the client. The
// preview is rebuilt only when the normalized source changed; in auto-save
// mode it is rebuilt regardless and the save timer is re-armed.
func (s *Session) SetCode(code string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = s.state.WithCode(code)
	autoSave := s.state.Settings.AutoSave
	var doc string
	var rendered bool
	if autoSave {
		doc, rendered = s.renderer.Force(code), true
	} else {
		doc, rendered = s.renderer.Render(code)
	}
	s.mu.Unlock()

	if rendered {
		s.send(Event{Type: EventPreview, Document: doc})
	}
	if autoSave {
		s.scheduleAutoSave()
	}
}

// SetModel selects a model. The temperature resets to the model default and
// the effective settings are echoed back.
func (s *Session) SetModel(model string) {
	s.mu.Lock()
	s.state = s.state.WithModel(model)
	settings := s.state.Settings
	s.mu.Unlock()
	s.send(Event{Type: EventSettings, Settings: &settings})
}

// SetTemperature overrides the temperature.
func (s *Session) SetTemperature(t float64) {
	s.mu.Lock()
	s.state = s.state.WithTemperature(t)
	settings := s.state.Settings
	s.mu.Unlock()
	s.send(Event{Type: EventSettings, Settings: &settings})
}

// SetAutoSave toggles auto-save. The save cycle arms on the next render.
func (s *Session) SetAutoSave(on bool) {
	s.mu.Lock()
	s.state = s.state.WithAutoSave(on)
	if !on && s.autoSaveTimer != nil {
		s.autoSaveTimer.Stop()
	}
	settings := s.state.Settings
	s.mu.Unlock()
	s.send(Event{Type: EventSettings, Settings: &settings})
}

// SetAutoGenerate toggles the repeat loop. Turning it off cancels the
// pending timer; turning it on arms nothing until a generation succeeds.
func (s *Session) SetAutoGenerate(on bool) {
	s.mu.Lock()
	s.state = s.state.WithAutoGenerate(on)
	if !on && s.autoGenTimer != nil {
		s.autoGenTimer.Stop()
	}
	settings := s.state.Settings
	s.mu.Unlock()
	s.send(Event{Type: EventSettings, Settings: &settings})
}

// Generate runs one generation end to end: prompt to the provider, fence
// extraction, source replacement, render. It returns ErrBusy without side
// effects when a generation is already in flight. On failure the sketch
// source is left unchanged; the phase returns to Idle on every path.
func (s *Session) Generate(prompt string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("session closed")
	}
	next, ok := s.state.BeginGeneration(prompt)
	if !ok {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = next
	settings := s.state.Settings
	s.mu.Unlock()

	s.send(Event{Type: EventStatus, Phase: PhaseGenerating.String()})

	code, genErr := s.complete(prompt, settings)

	s.mu.Lock()
	s.state = s.state.FinishGeneration(code, genErr)
	autoSave := s.state.Settings.AutoSave
	repeat := genErr == nil && s.state.Settings.AutoGenerate
	var doc string
	var rendered bool
	if genErr == nil {
		if autoSave {
			doc, rendered = s.renderer.Force(code), true
		} else {
			doc, rendered = s.renderer.Render(code)
		}
	}
	s.mu.Unlock()

	if genErr != nil {
		log.Printf("session %s: generation failed: %v", s.ID, genErr)
		s.send(Event{Type: EventError, Message: genErr.Error()})
		s.send(Event{Type: EventStatus, Phase: PhaseIdle.String()})
		return genErr
	}

	s.send(Event{Type: EventCode, Code: code})
	if rendered {
		s.send(Event{Type: EventPreview, Document: doc})
	}
	s.send(Event{Type: EventStatus, Phase: PhaseIdle.String()})

	if autoSave {
		s.scheduleAutoSave()
	}
	if repeat {
		s.scheduleAutoGenerate()
	}
	return nil
}

func (s *Session) complete(prompt string, settings Settings) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: settings.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sketch.SystemInstruction},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: settings.Temperature,
		TopP:        s.cfg.TopP,
		TopK:        s.cfg.TopK,
	})
	if err != nil {
		return "", err
	}
	code, err := sketch.ExtractCode(resp.Content)
	if err != nil {
		return "", fmt.Errorf("parse model response: %w", err)
	}
	return code, nil
}

// scheduleAutoGenerate arms the repeat timer. The toggle is checked again
// when the timer fires, so switching the mode off between re-schedules
// cancels the loop.
func (s *Session) scheduleAutoGenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.state.Settings.AutoGenerate {
		return
	}
	if s.autoGenTimer != nil {
		s.autoGenTimer.Stop()
	}
	s.autoGenTimer = time.AfterFunc(s.cfg.AutoGenerateDelay, s.autoGenerateFire)
}

func (s *Session) autoGenerateFire() {
	s.mu.Lock()
	enabled := !s.closed && s.state.Settings.AutoGenerate
	prompt := s.state.LastPrompt
	s.mu.Unlock()

	if !enabled || prompt == "" {
		return
	}
	if err := s.Generate(prompt); err != nil && !errors.Is(err, ErrBusy) {
		log.Printf("session %s: auto-generate: %v", s.ID, err)
	}
}

// scheduleAutoSave arms the save timer that follows a render in auto-save
// mode. Every render resets the delay.
func (s *Session) scheduleAutoSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.state.Settings.AutoSave {
		return
	}
	if s.autoSaveTimer != nil {
		s.autoSaveTimer.Stop()
	}
	s.autoSaveTimer = time.AfterFunc(s.cfg.AutoSaveDelay, s.autoSaveFire)
}

func (s *Session) autoSaveFire() {
	s.mu.Lock()
	if s.closed || !s.state.Settings.AutoSave {
		s.mu.Unlock()
		return
	}
	s.pendingShot = true
	code := s.state.Code
	s.mu.Unlock()

	s.send(Event{Type: EventScreenshot})
	s.send(Event{Type: EventDownload, Filename: downloadName, Code: code})
}

// RequestScreenshot asks the client for a frame capture.
func (s *Session) RequestScreenshot() {
	s.mu.Lock()
	s.pendingShot = true
	s.mu.Unlock()
	s.send(Event{Type: EventScreenshot})
}

// RequestDownload asks the client to save the current code as a file.
func (s *Session) RequestDownload() {
	s.mu.Lock()
	code := s.state.Code
	s.mu.Unlock()
	s.send(Event{Type: EventDownload, Filename: downloadName, Code: code})
}

// HandleScreenshot consumes a capture result from the client. One request
// is pending at a time, latest wins; a result with no pending request is
// dropped.
func (s *Session) HandleScreenshot(image string) {
	s.mu.Lock()
	pending := s.pendingShot
	s.pendingShot = false
	s.mu.Unlock()

	if !pending {
		log.Printf("session %s: dropped unsolicited screenshot result", s.ID)
		return
	}
	log.Printf("session %s: screenshot captured (%d bytes)", s.ID, len(image))
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Renders reports how many times the preview frame was rebuilt.
func (s *Session) Renders() int {
	return s.renderer.Renders()
}

// Close stops the timers and rejects further work.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.autoSaveTimer != nil {
		s.autoSaveTimer.Stop()
	}
	if s.autoGenTimer != nil {
		s.autoGenTimer.Stop()
	}
}
