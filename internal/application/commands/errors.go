package commands

import "fmt"

// fmtUnsupported reports a mediator dispatch reaching a handler with a
// request type it has no case for, which signals a wiring bug rather
// than a user-facing precondition failure.
func fmtUnsupported(request interface{}) error {
	return fmt.Errorf("unsupported request type: %T", request)
}
