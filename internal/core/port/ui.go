package port

import "context"

// NotifierPort surfaces transient, non-blocking notifications to the user:
// the equivalents of success and error toasts.
type NotifierPort interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// ConfirmPort is the scoped confirmation gate: it blocks until the user
// explicitly accepts or declines, and returns the decision. Every flow that
// needs a confirmation goes through this one capability.
type ConfirmPort interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}
