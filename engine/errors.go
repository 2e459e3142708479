package engine

import "errors"

// Lifecycle and command rejections
var (
	ErrInvalidTransition  = errors.New("invalid run state transition")
	ErrNoCharacter        = errors.New("no such character")
	ErrInvalidName        = errors.New("player name must be 1 to 15 characters")
	ErrTutorialIncomplete = errors.New("tutorial steps not acknowledged")
	ErrNotSelecting       = errors.New("no target selection in progress")
)

// Teleport target rejections; the selection stays open
var (
	ErrTargetBlocked     = errors.New("teleport target inside an obstacle")
	ErrTargetOutOfBounds = errors.New("teleport target outside the world")
)
