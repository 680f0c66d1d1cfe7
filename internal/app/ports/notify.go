package ports

import "chronoclicker/internal/domain/clicker"

// NotificationSink receives fire-and-forget player messages. Implementations
// must never block the caller; the store dispatches only after a state
// transform has committed.
type NotificationSink interface {
	Notify(n clicker.Notification)
}

// ConfirmPrompt gates destructive operations. Reset is a no-op when the
// prompt declines.
type ConfirmPrompt interface {
	Confirm(prompt string) bool
}
