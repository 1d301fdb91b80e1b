package notify

import "time"

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Toast is one transient message with its expiry.
type Toast struct {
	Message string
	Expires time.Time
}

// Toaster retains messages for a fixed duration and drops them afterwards.
// Expired entries are pruned on read; nothing runs in the background.
type Toaster struct {
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
}

// NewToaster creates a toaster with the given message lifetime.
// A non-positive ttl falls back to DefaultTTL.
func NewToaster(ttl time.Duration) *Toaster {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toaster{ttl: ttl, now: time.Now}
}

// Notify queues the message for display.
func (t *Toaster) Notify(message string) {
	t.toasts = append(t.toasts, Toast{
		Message: message,
		Expires: t.now().Add(t.ttl),
	})
}

// Active returns the messages that have not yet expired, oldest first.
func (t *Toaster) Active() []Toast {
	now := t.now()
	live := t.toasts[:0]
	for _, toast := range t.toasts {
		if toast.Expires.After(now) {
			live = append(live, toast)
		}
	}
	t.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
