package taylor

import "errors"

// Common errors.
var (
	// ErrNonDifferentiable reports that an engine produced a non-finite
	// value or derivative, typically because the function is not twice
	// differentiable at the evaluation point.
	ErrNonDifferentiable = errors.New("function is not twice differentiable at this point")
)
