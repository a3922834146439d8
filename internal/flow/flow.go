// Package flow holds the server side of the product's multi-step page flows
// as explicit state machines: tagged state enums with transition methods that
// reject every (state, event) pair not in the table. Flow instances are
// value records persisted in the flow store between requests.
package flow

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition reports an event applied in a state that does not
// accept it.
var ErrInvalidTransition = errors.New("invalid flow transition")

func transitionError(flowKind, state, event string) error {
	return fmt.Errorf("%w: %s cannot %s while %s", ErrInvalidTransition, flowKind, event, state)
}
