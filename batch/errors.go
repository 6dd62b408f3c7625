package batch

import "fmt"

// MultiError collects per-chart failures that did not stop the batch.
type MultiError []error

func (e MultiError) Error() string {
	return fmt.Sprintf("%d errors", len(e))
}

func (e MultiError) Unwrap() []error {
	return e
}

func (e *MultiError) Push(err error) {
	(*e) = append(*e, err)
}

// ErrOrNil returns nil for an empty MultiError.
func (e MultiError) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
