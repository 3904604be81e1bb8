package usecase

import (
	"errors"

	"caribcart-client/internal/core/port"
)

// ErrDeclined reports that the user backed out at the confirmation gate.
// Nothing was sent and nothing changed.
var ErrDeclined = errors.New("submission declined")

// notifyError surfaces a failure as a transient notification, falling back
// to a generic message when the error carries none.
func notifyError(n port.NotifierPort, err error) {
	msg := err.Error()
	if msg == "" {
		msg = "something went wrong"
	}
	n.Error(msg)
}
