package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	PlayerX Symbol = "X"
	PlayerO Symbol = "O"

	EmptyCell Symbol = ""
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// Symbol is a player mark. The zero value is an empty square.
type Symbol string

func (that Symbol) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's symbol.
func (that Symbol) Opponent() Symbol {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Within reports whether the square lies on a board of the given size.
func (that Square) Within(boardSize int) bool {
	return that.Row >= 0 && that.Row < boardSize && that.Col >= 0 && that.Col < boardSize
}

func (that Square) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Move struct {
	Square Square `json:"square"`
	Player Symbol `json:"player"`
}

// MoveLog is ordered most-recent-first: index 0 is the latest move.
type MoveLog []Move

// Prepend returns a new log with the move in front. The receiver is left untouched,
// so previously handed out logs stay valid snapshots.
func (that MoveLog) Prepend(move Move) MoveLog {
	updated := make(MoveLog, 0, len(that)+1)
	updated = append(updated, move)
	return append(updated, that...)
}

// Latest returns the most recent move.
func (that MoveLog) Latest() (Move, bool) {
	if len(that) == 0 {
		return Move{}, false
	}
	return that[0], true
}

// Chronological returns a copy of the log ordered oldest-first.
func (that MoveLog) Chronological() MoveLog {
	ordered := make(MoveLog, len(that))
	for i, move := range that {
		ordered[len(that)-1-i] = move
	}
	return ordered
}

// Clone returns a copy of the log in storage order.
func (that MoveLog) Clone() MoveLog {
	cloned := make(MoveLog, len(that))
	copy(cloned, that)
	return cloned
}

// Board is a square grid indexed as board[row][col].
type Board [][]Symbol

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Symbol, size)
	}
	return board
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) At(square Square) Symbol {
	return that[square.Row][square.Col]
}

func (that Board) IsEmpty(square Square) bool {
	return that.At(square) == EmptyCell
}

// WinningCombination is a line of squares that wins when uniformly occupied.
type WinningCombination []Square

type Outcome struct {
	Status string `json:"status"`
	Winner Symbol `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(winner Symbol) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsTerminal reports whether no further moves are accepted.
func (that Outcome) IsTerminal() bool {
	return that.IsWon() || that.IsDraw()
}

// ConfirmInProgress returns ErrGameFinished once the game is won or drawn.
func (that Outcome) ConfirmInProgress() error {
	if that.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.Status)
	}
	return nil
}

// GameState is a consistent snapshot of everything a caller renders.
type GameState struct {
	Board        Board       `json:"board"`
	ActivePlayer Symbol      `json:"active_player"`
	Outcome      Outcome     `json:"outcome"`
	WinnerName   string      `json:"winner_name,omitempty"`
	Moves        MoveLog     `json:"moves"`
	Players      PlayerNames `json:"players"`
}

func (that *GameState) IsDraw() bool {
	return that.Outcome.IsDraw()
}

func (that *GameState) HasWinner() bool {
	return that.Outcome.IsWon()
}
