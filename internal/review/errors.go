package review

import "fmt"

// UnsupportedStrategyError indicates a strategy key or value outside the
// known set.
type UnsupportedStrategyError struct {
	Name string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("unsupported review strategy: %q", e.Name)
}

// ErrInvalidPlan indicates a serialized plan that does not conform to
// PlanSchema.
type ErrInvalidPlan struct {
	Err error
}

func (e *ErrInvalidPlan) Error() string {
	return fmt.Sprintf("invalid review plan: %v", e.Err)
}

func (e *ErrInvalidPlan) Unwrap() error { return e.Err }
