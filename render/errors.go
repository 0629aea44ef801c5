package render

import (
	"errors"
	"fmt"

	"github.com/milk9111/ledgrid/common"
)

var (
	ErrLevelNotFound   = errors.New("render: level not found")
	ErrEmptyLevel      = errors.New("render: level has no layer instances")
	ErrInvalidGridSize = errors.New("render: invalid grid size")
	ErrOutOfRange      = errors.New("render: cell out of range")
)

// LevelIndexError reports a level index outside the project. It matches
// ErrLevelNotFound with errors.Is.
type LevelIndexError struct {
	Index int
	Count int
}

func (e *LevelIndexError) Error() string {
	return fmt.Sprintf("render: level %d not found (project has %d levels)", e.Index, e.Count)
}

func (e *LevelIndexError) Is(target error) bool {
	return target == ErrLevelNotFound
}

// OutOfRangeError is the panic value of GetTile.
type OutOfRangeError struct {
	X, Y int
	Size common.Point
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("render: cell (%d, %d) out of range for %dx%d grid", e.X, e.Y, e.Size.X, e.Size.Y)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
