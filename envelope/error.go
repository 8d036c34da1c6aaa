package envelope

import (
	"fmt"

	"github.com/polymodel/go-polymodel/model"
)

// ModelTypeError is returned when a resolved value does not satisfy the
// envelope's type parameter.
type ModelTypeError struct {
	ID model.Identity
}

// Error returns a string representation of the type mismatch.
func (e ModelTypeError) Error() string {
	return fmt.Sprintf("resolved model %s does not satisfy the envelope's type parameter", e.ID)
}
