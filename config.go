package atomheart

import (
	"github.com/pkg/errors"

	"github.com/victorgabillon/atomheart/game"
)

// BackendKind selects the rules engine a Board runs on.
type BackendKind string

const (
	// BackendPure is the pure-Go engine. Slower, but it validates FEN input
	// strictly and detects every draw rule.
	BackendPure BackendKind = "pure"
	// BackendNative is the bitboard engine. Much faster move generation,
	// permissive FEN parsing, and no detection of insufficient material or
	// the seventy-five-move and fivefold rules.
	BackendNative BackendKind = "native"
)

// Config for a Board.
type Config struct {
	Backend BackendKind `json:"backend"`
	// SortLegalMoves makes LegalMoves return keys in ascending UCI order on
	// every backend, at the cost of a sort per position. Off, each backend
	// yields its own generation order.
	SortLegalMoves bool `json:"sort_legal_moves"`
}

// DefaultConfig runs the pure backend with deterministic move ordering.
func DefaultConfig() Config {
	return Config{Backend: BackendPure, SortLegalMoves: true}
}

// BackendFromFlag maps the legacy boolean selector onto a BackendKind.
func BackendFromFlag(useNative bool) BackendKind {
	if useNative {
		return BackendNative
	}
	return BackendPure
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendPure, BackendNative:
		return nil
	}
	return errors.Wrapf(game.ErrUnknownBackend, "%q", c.Backend)
}
