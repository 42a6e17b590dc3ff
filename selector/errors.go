package selector

import (
	"errors"
	"fmt"
)

// ErrCardinality is matched by every CardinalityError.
var ErrCardinality = errors.New("element, id and pseudo-element should not occur more than once inside a selector")

// ErrOrder is matched by every OrderError.
var ErrOrder = errors.New("selector parts should be arranged in order: " + CSSOrder)

// CardinalityError is flagged if a singular part is set a second time.
type CardinalityError struct {
	Kind Kind // the offending kind
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s already set: %s", e.Kind, ErrCardinality.Error())
}

// Is lets errors.Is match ErrCardinality.
func (e *CardinalityError) Is(target error) bool {
	return target == ErrCardinality
}

// OrderError is flagged if a part is introduced after a part of a
// kind which has to follow it.
type OrderError struct {
	Kind Kind // the offending kind
	Last Kind // most recently introduced kind
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s after %s: %s", e.Kind, e.Last, ErrOrder.Error())
}

// Is lets errors.Is match ErrOrder.
func (e *OrderError) Is(target error) bool {
	return target == ErrOrder
}

// Expected describes the required order of parts.
func (e *OrderError) Expected() string {
	return CSSOrder
}
