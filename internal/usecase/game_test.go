package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, out io.Writer) GameUseCase {
	t.Helper()

	controller, err := tictactoe.NewGameController(tictactoe.BoardSize, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewGameUseCase(logger, controller)
}

func TestGameUseCase_SelectSquare(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies a move for the active player", func(t *testing.T) {
		// Given: a fresh game
		useCase := newUseCase(t, io.Discard)

		// When: selecting the centre square
		state, err := useCase.SelectSquare(ctx, 1, 1)

		// Then: X holds it and O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, state.Board[1][1])
		assert.Equal(t, entity.PlayerO, state.ActivePlayer)
		assert.Len(t, state.Moves, 1)
	})

	t.Run("Occupied square is a no-op", func(t *testing.T) {
		// Given: (0,0) already played
		useCase := newUseCase(t, io.Discard)
		_, err := useCase.SelectSquare(ctx, 0, 0)
		require.NoError(t, err)

		// When: selecting (0,0) again
		state, err := useCase.SelectSquare(ctx, 0, 0)

		// Then: no error and the log length stays at one
		require.NoError(t, err)
		assert.Len(t, state.Moves, 1)
		assert.Equal(t, entity.PlayerO, state.ActivePlayer)
	})

	t.Run("Invalid square is reported", func(t *testing.T) {
		useCase := newUseCase(t, io.Discard)

		state, err := useCase.SelectSquare(ctx, 5, 5)

		require.ErrorIs(t, err, apperror.ErrInvalidSquare)
		require.NotNil(t, state)
		assert.Empty(t, state.Moves)
	})

	t.Run("Move after a win is reported", func(t *testing.T) {
		// Given: X wins on the top row
		var buf bytes.Buffer
		useCase := newUseCase(t, &buf)
		for _, square := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}} {
			_, err := useCase.SelectSquare(ctx, square[0], square[1])
			require.NoError(t, err)
		}

		// When: O tries another square
		state, err := useCase.SelectSquare(ctx, 2, 0)

		// Then: the move is refused and the win was logged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, "Player 1", state.WinnerName)
		assert.Len(t, state.Moves, 5)
		assert.Contains(t, buf.String(), `"msg":"game won"`)
	})
}

func TestGameUseCase_Restart(t *testing.T) {
	ctx := context.Background()
	useCase := newUseCase(t, io.Discard)

	_, err := useCase.SelectSquare(ctx, 0, 0)
	require.NoError(t, err)
	_, err = useCase.RenamePlayer(ctx, entity.PlayerX, "Ada")
	require.NoError(t, err)

	state := useCase.Restart(ctx)

	assert.Empty(t, state.Moves)
	assert.Equal(t, entity.PlayerX, state.ActivePlayer)
	assert.Equal(t, "Ada", state.Players.NameOf(entity.PlayerX))
}

func TestGameUseCase_RenamePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Renames a player", func(t *testing.T) {
		useCase := newUseCase(t, io.Discard)

		state, err := useCase.RenamePlayer(ctx, entity.PlayerO, "Grace")

		require.NoError(t, err)
		assert.Equal(t, "Grace", state.Players.NameOf(entity.PlayerO))
		assert.Equal(t, "Grace", useCase.State(ctx).Players.NameOf(entity.PlayerO))
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		useCase := newUseCase(t, io.Discard)

		state, err := useCase.RenamePlayer(ctx, entity.Symbol("Z"), "Zed")

		require.ErrorIs(t, err, apperror.ErrUnknownSymbol)
		assert.Nil(t, state)
	})
}
