package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrMalformedMove = errors.New("malformed move, expected \"row col\"")

// RunApp - replays the configured move source until EOF or a signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller, err := tictactoe.NewGameController(conf.BoardSize, conf.Players.Names())
	if err != nil {
		return fmt.Errorf("could not create game controller: %w", err)
	}

	source, name, err := openMoves(conf.MovesFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = source.Close()
	}()

	log.Info("Replaying moves", "source", name, "player_x", conf.Players.X, "player_o", conf.Players.O)

	state, err := Replay(ctx, usecase.NewGameUseCase(logger, controller), source)
	if errors.Is(err, context.Canceled) {
		log.Info("Replay interrupted", "moves", len(state.Moves))
		return nil
	}
	if err != nil {
		return fmt.Errorf("replay of %s failed: %w", name, err)
	}

	log.Info("Replay finished",
		"source", name,
		"status", state.Outcome.Status,
		"winner", state.WinnerName,
		"moves", state.Moves.Chronological(),
	)

	return nil
}

// openMoves opens the moves file, or stdin when path is empty.
func openMoves(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return os.Stdin, "stdin", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open moves file: %w", err)
	}

	return file, path, nil
}

// Replay feeds one "row col" move per line into the game. Blank lines and
// lines starting with '#' are skipped, "restart" resets the game.
// Rejected moves are logged by the use case and do not stop the replay.
// A reader that is also an io.Closer is closed on cancellation, which unblocks a pending read.
func Replay(ctx context.Context, game usecase.GameUseCase, in io.Reader) (*entity.GameState, error) {
	if closer, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			_ = closer.Close()
		})
		defer stop()
	}

	scanner := bufio.NewScanner(in)
	state := game.State(ctx)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "restart":
			state = game.Restart(ctx)
			continue
		}

		row, col, err := parseMove(line)
		if err != nil {
			return state, err
		}

		state, _ = game.SelectSquare(ctx, row, col)
	}

	if ctx.Err() != nil {
		return state, ctx.Err()
	}

	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("failed to read moves: %w", err)
	}

	return state, nil
}

func parseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedMove, line)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedMove, line)
	}

	return row, col, nil
}
