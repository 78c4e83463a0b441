// Package synthesis holds the building blocks shared by the building and room
// orchestrators: the typed concurrent join, in-flight coalescing and record ids.
package synthesis

import (
	"errors"
	"fmt"
)

// GatewayError reports which generation call failed a synthesis. No record
// is stored when a synthesis returns one.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("synthesis failed at %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// AsGatewayError reports whether err carries a GatewayError and returns it.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
