package tackle

import "errors"

// Errors returned by the board primitives. They indicate the caller asked for
// an impossible mutation; the board is left unchanged.
var (
	ErrSquareOccupied      = errors.New("square is already occupied")
	ErrSquareEmpty         = errors.New("square is empty")
	ErrGoldAlreadyPlaced   = errors.New("gold piece is already placed")
	ErrTooManyPieces       = errors.New("player already has the maximum number of pieces")
	ErrMovingGoldForbidden = errors.New("gold piece cannot be moved")
)

// Errors returned by move execution and rule-checked placement. They indicate
// an illegal move; the board is left unchanged.
var (
	ErrWrongColor              = errors.New("start square does not hold a piece of the moving player")
	ErrPathBlocked             = errors.New("path is blocked")
	ErrInvalidBlockShape       = errors.New("moved pieces do not form a rectangular block")
	ErrBlockCannotMoveSideways = errors.New("block is too narrow to move sideways")
	ErrPlaceOffBorder          = errors.New("pieces may only be placed on border squares")
	ErrGoldNotInCore           = errors.New("gold piece may only be placed in the core")
	ErrBlockedByUpperNeighbor  = errors.New("placement blocked by own piece above")
	ErrBlockedByLowerNeighbor  = errors.New("placement blocked by own piece below")
	ErrBlockedByLeftNeighbor   = errors.New("placement blocked by own piece to the left")
	ErrBlockedByRightNeighbor  = errors.New("placement blocked by own piece to the right")
)
