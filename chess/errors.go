package chess

import (
	"errors"
	"fmt"
)

// Tagged error sentinels, checkable with errors.Is, per the error-handling
// design: well-formed internal data never fails to generate or render; only
// user-supplied FEN, move-string, and notation-style inputs are validated at
// the boundary.
var (
	ErrInvalidMoveNotation = errors.New("chess: invalid move notation style")
	ErrInvalidFen          = errors.New("chess: invalid FEN")
	ErrInvalidMove         = errors.New("chess: move is not legal in this position")
)

func invalidFen(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidFen)
}

func invalidMove(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidMove)
}

func invalidNotation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidMoveNotation)
}
