// Package notify delivers user-visible notices raised during language
// server registration.
//
// The package implements an observer pattern: components subscribe to the
// Notifier and receive a callback for each notice. Registration emits a
// warning when a server binary is missing; the host editor (or the CLI)
// decides how to surface it.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Severity classifies a notice.
type Severity int

const (
	// SeverityInfo is an informational notice.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a degraded but non-fatal condition,
	// such as a language server binary missing from the search path.
	SeverityWarning

	// SeverityError indicates a configuration-authoring error.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a single user-visible message.
type Notice struct {
	// Severity is the notice level.
	Severity Severity

	// ServerID identifies the language server the notice concerns.
	// Empty for notices not tied to a single server.
	ServerID string

	// Message is the human-readable text.
	Message string
}

// Observer is called for each delivered notice.
type Observer func(notice Notice)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier fans notices out to subscribed observers. Delivery is
// synchronous and in subscription order is not guaranteed.
//
// The zero value is not usable; use New.
type Notifier struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
}

// New creates a new Notifier with no observers.
func New() *Notifier {
	return &Notifier{
		observers: make(map[uint64]Observer),
	}
}

// Subscribe registers an observer for all notices.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// unsubscribe removes an observer by subscription id.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	delete(n.observers, id)
	n.mu.Unlock()
}

// Notify delivers a notice to all observers.
func (n *Notifier) Notify(notice Notice) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, obs := range n.observers {
		observers = append(observers, obs)
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(notice)
	}
}

// Warningf delivers a warning-level notice for a server.
func (n *Notifier) Warningf(serverID, format string, args ...any) {
	n.Notify(Notice{
		Severity: SeverityWarning,
		ServerID: serverID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof delivers an info-level notice for a server.
func (n *Notifier) Infof(serverID, format string, args ...any) {
	n.Notify(Notice{
		Severity: SeverityInfo,
		ServerID: serverID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Recorder is an observer that collects notices for later inspection.
// It is intended for tests and for deferred display.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Observe records a notice. Pass bound to Notifier.Subscribe.
func (r *Recorder) Observe(notice Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, notice)
	r.mu.Unlock()
}

// Notices returns a copy of the recorded notices in delivery order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// ByServer returns recorded notices for one server id.
func (r *Recorder) ByServer(serverID string) []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notice
	for _, notice := range r.notices {
		if notice.ServerID == serverID {
			out = append(out, notice)
		}
	}
	return out
}

// Writer returns an observer that formats notices to w, one per line.
// Used by the CLI to route warnings to stderr.
func Writer(w io.Writer) Observer {
	return func(notice Notice) {
		if notice.ServerID != "" {
			fmt.Fprintf(w, "%s: [%s] %s\n", notice.Severity, notice.ServerID, notice.Message)
			return
		}
		fmt.Fprintf(w, "%s: %s\n", notice.Severity, notice.Message)
	}
}
