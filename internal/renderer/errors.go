package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidRenderer indicates a renderer that is not one of the known kinds.
var ErrInvalidRenderer = errors.New("invalid renderer")

// InvalidRendererError reports the rejected renderer identifier.
type InvalidRendererError struct {
	Name string
}

func (e *InvalidRendererError) Error() string {
	return fmt.Sprintf("%v: %q is not a chart renderer", ErrInvalidRenderer, e.Name)
}

func (e *InvalidRendererError) Unwrap() error {
	return ErrInvalidRenderer
}
