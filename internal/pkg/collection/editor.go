package collection

import "sync"

// EditorMode is the state of a page's editor region.
type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorCreate
	EditorEdit
)

func (m EditorMode) String() string {
	switch m {
	case EditorCreate:
		return "create"
	case EditorEdit:
		return "edit"
	default:
		return "closed"
	}
}

// EditorState is a snapshot of an Editor.
type EditorState[D any] struct {
	Mode     EditorMode
	RecordID int64
	Draft    D
}

// Open reports whether the editor is showing a form.
func (s EditorState[D]) Open() bool { return s.Mode != EditorClosed }

// Editor is the open/closed state machine of a form region together with its
// draft. Closed → Open(create) → Closed and Closed → Open(edit, id) → Closed.
type Editor[D any] struct {
	mu       sync.Mutex
	mode     EditorMode
	recordID int64
	draft    D
}

// ToggleCreate opens a blank create form, or closes the editor if it is open.
func (e *Editor[D]) ToggleCreate(blank D) EditorState[D] {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != EditorClosed {
		e.closeLocked()
	} else {
		e.mode, e.recordID, e.draft = EditorCreate, 0, blank
	}
	return e.stateLocked()
}

// Edit opens the form for recordID seeded with draft, replacing whatever was open.
func (e *Editor[D]) Edit(recordID int64, draft D) EditorState[D] {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode, e.recordID, e.draft = EditorEdit, recordID, draft
	return e.stateLocked()
}

// Close closes the editor and drops the draft.
func (e *Editor[D]) Close() EditorState[D] {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
	return e.stateLocked()
}

// SetDraft replaces the draft of an open editor. It is ignored when closed.
func (e *Editor[D]) SetDraft(draft D) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == EditorClosed {
		return false
	}
	e.draft = draft
	return true
}

// State returns a snapshot.
func (e *Editor[D]) State() EditorState[D] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Editor[D]) closeLocked() {
	var zero D
	e.mode, e.recordID, e.draft = EditorClosed, 0, zero
}

func (e *Editor[D]) stateLocked() EditorState[D] {
	return EditorState[D]{Mode: e.mode, RecordID: e.recordID, Draft: e.draft}
}
