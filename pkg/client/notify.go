package client

// Notifier receives the toast-style notifications the UI shows after every
// outcome. No failure is silently swallowed, and none is retried.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(title, message string) {}

func (NopNotifier) Error(title, message string) {}
