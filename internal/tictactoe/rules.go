package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const BoardSize = 3

// WinningCombinations returns every row, then every column, then both diagonals.
func WinningCombinations(boardSize int) []entity.WinningCombination {
	combos := make([]entity.WinningCombination, 0, 2*boardSize+2)

	for row := 0; row < boardSize; row++ {
		combo := make(entity.WinningCombination, 0, boardSize)
		for col := 0; col < boardSize; col++ {
			combo = append(combo, entity.Square{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	for col := 0; col < boardSize; col++ {
		combo := make(entity.WinningCombination, 0, boardSize)
		for row := 0; row < boardSize; row++ {
			combo = append(combo, entity.Square{Row: row, Col: col})
		}
		combos = append(combos, combo)
	}

	diagonal := make(entity.WinningCombination, 0, boardSize)
	antiDiagonal := make(entity.WinningCombination, 0, boardSize)
	for i := 0; i < boardSize; i++ {
		diagonal = append(diagonal, entity.Square{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, entity.Square{Row: i, Col: boardSize - 1 - i})
	}

	return append(combos, diagonal, antiDiagonal)
}

// DeriveActivePlayer - X always moves first, then players alternate.
func DeriveActivePlayer(log entity.MoveLog) entity.Symbol {
	latest, ok := log.Latest()
	if !ok {
		return entity.PlayerX
	}
	return latest.Player.Opponent()
}

// DeriveBoard replays the log oldest to newest onto an empty grid.
func DeriveBoard(log entity.MoveLog, boardSize int) entity.Board {
	board := entity.NewBoard(boardSize)

	for i := len(log) - 1; i >= 0; i-- {
		move := log[i]
		board[move.Square.Row][move.Square.Col] = move.Player
	}

	return board
}

// DeriveWinner checks every combination in order. When several lines are
// complete the last one checked decides the winner.
func DeriveWinner(board entity.Board, combos []entity.WinningCombination) (entity.Symbol, bool) {
	winner := entity.EmptyCell

	for _, combo := range combos {
		if symbol, ok := lineOwner(board, combo); ok {
			winner = symbol
		}
	}

	return winner, winner != entity.EmptyCell
}

// DeriveWinnerName maps the winning symbol to its display name.
func DeriveWinnerName(board entity.Board, combos []entity.WinningCombination, names entity.PlayerNames) (string, bool) {
	winner, ok := DeriveWinner(board, combos)
	if !ok {
		return "", false
	}
	return names.NameOf(winner), true
}

// DeriveDraw reports a full board with no winning line.
func DeriveDraw(log entity.MoveLog, board entity.Board, combos []entity.WinningCombination) bool {
	if len(log) != board.Size()*board.Size() {
		return false
	}

	_, won := DeriveWinner(board, combos)
	return !won
}

// DeriveOutcome checks for a win before asserting a draw.
func DeriveOutcome(log entity.MoveLog, board entity.Board, combos []entity.WinningCombination) entity.Outcome {
	if winner, ok := DeriveWinner(board, combos); ok {
		return entity.Won(winner)
	}

	if DeriveDraw(log, board, combos) {
		return entity.Draw()
	}

	return entity.InProgress()
}

func lineOwner(board entity.Board, combo entity.WinningCombination) (entity.Symbol, bool) {
	if len(combo) == 0 {
		return entity.EmptyCell, false
	}

	first := board.At(combo[0])
	if first == entity.EmptyCell {
		return entity.EmptyCell, false
	}

	for _, square := range combo[1:] {
		if board.At(square) != first {
			return entity.EmptyCell, false
		}
	}

	return first, true
}
