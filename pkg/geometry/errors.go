package geometry

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints is matched by every ErrInsufficientPoints via errors.Is
var ErrTooFewPoints = errors.New("too few points")

// ErrInsufficientPoints indicates a point sequence shorter than an
// operation requires
type ErrInsufficientPoints struct {
	Op   string
	Got  int
	Want int
}

func (e *ErrInsufficientPoints) Error() string {
	return fmt.Sprintf("%s: need at least %d points, got %d", e.Op, e.Want, e.Got)
}

func (e *ErrInsufficientPoints) Is(target error) bool {
	return target == ErrTooFewPoints
}

func requirePoints(op string, n, want int) error {
	if n < want {
		return &ErrInsufficientPoints{Op: op, Got: n, Want: want}
	}
	return nil
}
