package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameUseCase interface {
	SelectSquare(ctx context.Context, row, col int) (*entity.GameState, error)
	Restart(ctx context.Context) *entity.GameState
	RenamePlayer(ctx context.Context, symbol entity.Symbol, name string) (*entity.GameState, error)

	State(ctx context.Context) *entity.GameState
}

type gameController interface {
	ApplyMove(row, col int) (entity.MoveLog, error)
	Restart() entity.MoveLog
	SetPlayerName(symbol entity.Symbol, name string) error
	Snapshot() *entity.GameState
}

type gameUseCase struct {
	logger *slog.Logger

	controller gameController
}

func NewGameUseCase(logger *slog.Logger, controller gameController) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game"),
		controller: controller,
	}
}

// SelectSquare plays the active player's mark. Selecting an occupied square
// is a no-op and returns the unchanged state without an error.
func (that *gameUseCase) SelectSquare(ctx context.Context, row, col int) (*entity.GameState, error) {
	log := that.logger.With("method", "SelectSquare", "row", row, "col", col)

	moves, err := that.controller.ApplyMove(row, col)
	if err != nil {
		if errors.Is(err, apperror.ErrSquareOccupied) {
			log.DebugContext(ctx, "square already occupied, ignoring")
			return that.controller.Snapshot(), nil
		}

		log.WarnContext(ctx, "move rejected", "error", err)
		return that.controller.Snapshot(), fmt.Errorf("failed to select square: %w", err)
	}

	state := that.controller.Snapshot()

	log.InfoContext(ctx, "move applied",
		"player", moves[0].Player,
		"moves", len(moves),
		"status", state.Outcome.Status,
	)

	switch {
	case state.HasWinner():
		log.InfoContext(ctx, "game won", "winner", state.Outcome.Winner, "name", state.WinnerName)
	case state.IsDraw():
		log.InfoContext(ctx, "game drawn")
	}

	return state, nil
}

func (that *gameUseCase) Restart(ctx context.Context) *entity.GameState {
	that.controller.Restart()

	that.logger.InfoContext(ctx, "game restarted")

	return that.controller.Snapshot()
}

func (that *gameUseCase) RenamePlayer(ctx context.Context, symbol entity.Symbol, name string) (*entity.GameState, error) {
	if err := that.controller.SetPlayerName(symbol, name); err != nil {
		return nil, fmt.Errorf("failed to rename player: %w", err)
	}

	that.logger.InfoContext(ctx, "player renamed", "symbol", symbol, "name", name)

	return that.controller.Snapshot(), nil
}

func (that *gameUseCase) State(_ context.Context) *entity.GameState {
	return that.controller.Snapshot()
}
