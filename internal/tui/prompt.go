package tui

import "github.com/theirongolddev/sbudget/internal/controller"

// Prompter bridges controller prompts to the dashboard. Bubble Tea cannot
// block inside a handler, so the dashboard shows its own confirm dialog
// first and records the answer here before invoking the controller.
type Prompter struct {
	answer bool
	alert  string
}

// NewPrompter returns a prompter that declines until told otherwise.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Confirm returns the recorded answer once, then resets to "no".
func (p *Prompter) Confirm(string) bool {
	ok := p.answer
	p.answer = false
	return ok
}

// Alert stores the message for the status bar.
func (p *Prompter) Alert(message string) {
	p.alert = message
}

func (p *Prompter) answerNext(ok bool) {
	p.answer = ok
}

// takeAlert returns and clears the pending alert.
func (p *Prompter) takeAlert() string {
	msg := p.alert
	p.alert = ""
	return msg
}

// ViewSink keeps the latest view pushed by the session. The App model is
// copied on every update, so it reads the view through this pointer.
type ViewSink struct {
	view    controller.View
	renders int
}

// NewViewSink returns an empty sink.
func NewViewSink() *ViewSink {
	return &ViewSink{}
}

// Render implements controller.Renderer.
func (s *ViewSink) Render(v controller.View) {
	s.view = v
	s.renders++
}
