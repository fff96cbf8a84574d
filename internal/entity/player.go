package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	DefaultPlayerXName = "Player 1"
	DefaultPlayerOName = "Player 2"
)

// PlayerNames maps a symbol to its display name. It has no effect on game logic.
type PlayerNames map[Symbol]string

func DefaultPlayerNames() PlayerNames {
	return PlayerNames{
		PlayerX: DefaultPlayerXName,
		PlayerO: DefaultPlayerOName,
	}
}

// NameOf returns the display name for the symbol, falling back to the symbol itself.
func (that PlayerNames) NameOf(symbol Symbol) string {
	if name, ok := that[symbol]; ok && name != "" {
		return name
	}
	return string(symbol)
}

// With returns a copy with the name of symbol replaced.
func (that PlayerNames) With(symbol Symbol, name string) (PlayerNames, error) {
	if !symbol.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownSymbol, symbol)
	}

	updated := that.Clone()
	updated[symbol] = name

	return updated, nil
}

func (that PlayerNames) Clone() PlayerNames {
	cloned := make(PlayerNames, len(that))
	for symbol, name := range that {
		cloned[symbol] = name
	}
	return cloned
}
