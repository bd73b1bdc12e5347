package object

import "fmt"

// CreationError reports that the creation service produced no instance for
// the requested type. It is the only recoverable error the registry
// returns; not-found results are nil objects, never errors.
type CreationError struct {
	Type ObjectType
	Err  error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("object: create %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("object: create %s: factory produced no instance", e.Type)
}

func (e *CreationError) Unwrap() error { return e.Err }
