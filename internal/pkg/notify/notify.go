// Package notify carries transient operator notifications (toasts) from
// services to whichever surface is rendering them.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level is the notification severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one transient message.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// Success emits a success notification.
func Success(n Notifier, message string) {
	emit(n, LevelSuccess, message)
}

// Error emits an error notification.
func Error(n Notifier, message string) {
	emit(n, LevelError, message)
}

// Info emits an informational notification.
func Info(n Notifier, message string) {
	emit(n, LevelInfo, message)
}

func emit(n Notifier, level Level, message string) {
	if n == nil || message == "" {
		return
	}
	n.Notify(Notification{Level: level, Message: message, At: time.Now()})
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) {}

// Fanout delivers each notification to all wrapped notifiers.
type Fanout []Notifier

func (f Fanout) Notify(n Notification) {
	for _, target := range f {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Log writes notifications to a zerolog logger.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Notify(n Notification) {
	event := l.Logger.Info()
	if n.Level == LevelError {
		event = l.Logger.Warn()
	}
	event.Str("kind", string(n.Level)).Msg(n.Message)
}

// Recorder buffers notifications until drained. The zero value is ready to use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// Drain returns and clears the buffered notifications.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items
	r.items = nil
	return items
}

// Messages returns the buffered messages without clearing them.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	for i, n := range r.items {
		out[i] = n.Message
	}
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
