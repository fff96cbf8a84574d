package tictactoe

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameController owns the move log. Writers are serialized; readers copy the
// current log value and derive everything else from it.
type GameController struct {
	mu sync.RWMutex

	boardSize int
	combos    []entity.WinningCombination

	log     entity.MoveLog
	players entity.PlayerNames
}

func NewGameController(boardSize int, players entity.PlayerNames) (*GameController, error) {
	return NewGameControllerWithRules(boardSize, WinningCombinations(boardSize), players)
}

// NewGameControllerWithRules uses a copy of a caller-supplied rule table. Every
// combination must hold exactly boardSize squares, all of them on the board.
func NewGameControllerWithRules(boardSize int, combos []entity.WinningCombination, players entity.PlayerNames) (*GameController, error) {
	if boardSize != BoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnsupportedBoardSize, boardSize)
	}

	rules := make([]entity.WinningCombination, 0, len(combos))
	for i, combo := range combos {
		if len(combo) != boardSize {
			return nil, fmt.Errorf("%w: combination %d has %d squares", apperror.ErrInvalidCombination, i, len(combo))
		}

		for _, square := range combo {
			if !square.Within(boardSize) {
				return nil, fmt.Errorf("%w: combination %d: %w: %s", apperror.ErrInvalidCombination, i, apperror.ErrInvalidSquare, square)
			}
		}

		rules = append(rules, append(entity.WinningCombination(nil), combo...))
	}

	names := entity.DefaultPlayerNames()
	for symbol, name := range players {
		var err error
		if names, err = names.With(symbol, name); err != nil {
			return nil, fmt.Errorf("player names: %w", err)
		}
	}

	return &GameController{
		boardSize: boardSize,
		combos:    rules,
		log:       entity.MoveLog{},
		players:   names,
	}, nil
}

// ApplyMove records a move for the active player. Rejected moves leave the log
// unchanged and return a copy of it alongside the error.
func (that *GameController) ApplyMove(row, col int) (entity.MoveLog, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.validateMove(that.log, entity.Square{Row: row, Col: col}); err != nil {
		return that.log.Clone(), fmt.Errorf("invalid move: %w", err)
	}

	that.log = that.log.Prepend(entity.Move{
		Square: entity.Square{Row: row, Col: col},
		Player: DeriveActivePlayer(that.log),
	})

	return that.log.Clone(), nil
}

// validateMove - checks the move against the board derived from log.
func (that *GameController) validateMove(log entity.MoveLog, square entity.Square) error {
	board := DeriveBoard(log, that.boardSize)

	if err := DeriveOutcome(log, board, that.combos).ConfirmInProgress(); err != nil {
		return err
	}

	if !square.Within(that.boardSize) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidSquare, square)
	}

	if !board.IsEmpty(square) {
		return fmt.Errorf("%w: %s", apperror.ErrSquareOccupied, square)
	}

	return nil
}

// Restart empties the log. Player names are kept.
func (that *GameController) Restart() entity.MoveLog {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.log = entity.MoveLog{}

	return that.log.Clone()
}

func (that *GameController) SetPlayerName(symbol entity.Symbol, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	updated, err := that.players.With(symbol, name)
	if err != nil {
		return fmt.Errorf("failed to rename player: %w", err)
	}

	that.players = updated

	return nil
}

// Log returns a copy of the log, most recent move first.
func (that *GameController) Log() entity.MoveLog {
	return that.current().Clone()
}

// History returns a copy of the log in the requested order.
func (that *GameController) History(oldestFirst bool) entity.MoveLog {
	log := that.current()
	if oldestFirst {
		return log.Chronological()
	}
	return log.Clone()
}

func (that *GameController) ActivePlayer() entity.Symbol {
	return DeriveActivePlayer(that.current())
}

func (that *GameController) Board() entity.Board {
	return DeriveBoard(that.current(), that.boardSize)
}

func (that *GameController) Winner() (entity.Symbol, bool) {
	return DeriveWinner(that.Board(), that.combos)
}

func (that *GameController) WinnerName() (string, bool) {
	log, players := that.read()
	return DeriveWinnerName(DeriveBoard(log, that.boardSize), that.combos, players)
}

func (that *GameController) IsDraw() bool {
	log := that.current()
	return DeriveDraw(log, DeriveBoard(log, that.boardSize), that.combos)
}

func (that *GameController) Outcome() entity.Outcome {
	log := that.current()
	return DeriveOutcome(log, DeriveBoard(log, that.boardSize), that.combos)
}

func (that *GameController) PlayerNames() entity.PlayerNames {
	_, players := that.read()
	return players.Clone()
}

// Snapshot derives every projection from a single log value.
func (that *GameController) Snapshot() *entity.GameState {
	log, players := that.read()

	board := DeriveBoard(log, that.boardSize)
	outcome := DeriveOutcome(log, board, that.combos)

	state := &entity.GameState{
		Board:        board,
		ActivePlayer: DeriveActivePlayer(log),
		Outcome:      outcome,
		Moves:        log.Clone(),
		Players:      players.Clone(),
	}

	if outcome.IsWon() {
		state.WinnerName = players.NameOf(outcome.Winner)
	}

	return state
}

func (that *GameController) read() (entity.MoveLog, entity.PlayerNames) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.log, that.players
}

// current returns the canonical log. Callers inside the package only derive from it.
func (that *GameController) current() entity.MoveLog {
	log, _ := that.read()
	return log
}
