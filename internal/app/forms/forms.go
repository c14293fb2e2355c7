// Package forms holds the editable drafts behind every resource editor: how a
// draft is seeded from a record, its blank defaults, its validation and the
// payload it produces on submit.
package forms

// Wizard tracks the step of a multi-step form. Steps are 1-based.
type Wizard struct {
	titles []string
	step   int
}

// NewWizard creates a wizard positioned on the first step.
func NewWizard(titles ...string) *Wizard {
	return &Wizard{titles: titles, step: 1}
}

// Step returns the current step.
func (w *Wizard) Step() int { return w.step }

// Steps returns the number of steps.
func (w *Wizard) Steps() int { return len(w.titles) }

// Title returns the current step title.
func (w *Wizard) Title() string {
	if w.step < 1 || w.step > len(w.titles) {
		return ""
	}
	return w.titles[w.step-1]
}

// Final reports whether the current step is the last one.
func (w *Wizard) Final() bool { return w.step >= len(w.titles) }

// Next advances one step, stopping at the last.
func (w *Wizard) Next() int {
	if !w.Final() {
		w.step++
	}
	return w.step
}

// Back returns one step, stopping at the first.
func (w *Wizard) Back() int {
	if w.step > 1 {
		w.step--
	}
	return w.step
}

// Reset returns to the first step.
func (w *Wizard) Reset() { w.step = 1 }

func float(v float64) *float64 { return &v }
