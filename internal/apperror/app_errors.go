package apperror

import "errors"

var (
	ErrInvalidSquare        = errors.New("invalid square")
	ErrSquareOccupied       = errors.New("square is already occupied")
	ErrGameFinished         = errors.New("game is already finished")
	ErrUnknownSymbol        = errors.New("unknown player symbol")
	ErrUnsupportedBoardSize = errors.New("unsupported board size")
	ErrInvalidCombination   = errors.New("invalid winning combination")
)
