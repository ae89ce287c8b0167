// Package atomheart exposes chess boards backed by interchangeable rules
// engines. A Board is constructed from a FEN string plus the moves played
// since, talks to its engine only through canonical move keys, and reports
// every state change as an explicit modification record, so callers behave
// identically whichever backend is underneath.
package atomheart

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/victorgabillon/atomheart/backend"
	"github.com/victorgabillon/atomheart/game"
)

// Board is the top level structure and the entry point of the API. It wraps
// a rules engine behind the game.Rules contract and tracks the line of play
// since the starting FEN so the whole state can be exported and rebuilt.
type Board struct {
	id    uuid.UUID
	rules game.Rules
	conf  Config

	startFen string
	moves    []string
}

func newRules(fen string, conf Config) (game.Rules, error) {
	switch conf.Backend {
	case BackendPure:
		return backend.NewPure(fen, conf.SortLegalMoves)
	case BackendNative:
		return backend.NewNative(fen, conf.SortLegalMoves)
	}
	return nil, errors.Wrapf(game.ErrUnknownBackend, "%q", conf.Backend)
}

// CreateBoard builds a Board from an exported state. The historical moves
// are replayed one by one on the chosen backend; a move that is not legal at
// its point in the line fails the whole construction with its index.
func CreateBoard(state game.FenPlusHistory, conf Config) (*Board, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	rules, err := newRules(state.CurrentFen, conf)
	if err != nil {
		return nil, err
	}

	b := &Board{
		id:       uuid.New(),
		rules:    rules,
		conf:     conf,
		startFen: state.CurrentFen,
	}
	for i, uci := range state.HistoricalMoves {
		key, err := game.MoveKeyFromUCI(uci)
		if err != nil {
			return nil, errors.Wrapf(err, "historical move %d", i)
		}
		if _, err := b.rules.ApplyMoveKey(key); err != nil {
			return nil, errors.Wrapf(err, "historical move %d (%s)", i, uci)
		}
		b.moves = append(b.moves, key.UCI())
	}
	return b, nil
}

// NewBoard builds a Board at the standard starting position.
func NewBoard(conf Config) (*Board, error) {
	return CreateBoard(game.NewFenPlusHistory(game.StartingFEN), conf)
}

// ID returns the board's unique identity. Forks get a fresh one.
func (b *Board) ID() uuid.UUID { return b.id }

// Config returns the configuration the board was built with.
func (b *Board) Config() Config { return b.conf }

// LegalMoves returns the canonical keys of every legal move in the current
// position. Empty on a finished game.
func (b *Board) LegalMoves() []game.MoveKey {
	return b.rules.LegalMoveKeys()
}

// MoveKeyFromUCI parses a UCI string and checks it against the current legal
// moves. Malformed input yields ErrMalformedUci, a well-formed but
// unavailable move yields ErrIllegalMove.
func (b *Board) MoveKeyFromUCI(uci string) (game.MoveKey, error) {
	key, err := game.MoveKeyFromUCI(uci)
	if err != nil {
		return 0, err
	}
	for _, k := range b.rules.LegalMoveKeys() {
		if k == key {
			return key, nil
		}
	}
	return 0, errors.Wrapf(game.ErrIllegalMove, "%s", uci)
}

// PlayMoveKey applies a legal move and returns the exact set of changes it
// made to the position. Once the game has ended every move is refused with
// ErrGameOver.
func (b *Board) PlayMoveKey(k game.MoveKey) (game.BoardModification, error) {
	if b.rules.Terminal() != game.TerminalNone {
		return game.BoardModification{}, errors.Wrapf(game.ErrGameOver, "%s", b.rules.Terminal())
	}
	mod, err := b.rules.ApplyMoveKey(k)
	if err != nil {
		return game.BoardModification{}, err
	}
	b.moves = append(b.moves, k.UCI())
	return mod, nil
}

// PlayMoveUCI parses, validates and plays a move given in UCI notation.
func (b *Board) PlayMoveUCI(uci string) (game.BoardModification, error) {
	key, err := b.MoveKeyFromUCI(uci)
	if err != nil {
		return game.BoardModification{}, err
	}
	return b.PlayMoveKey(key)
}

// Terminal reports how the game has ended, or TerminalNone while it is
// still in progress.
func (b *Board) Terminal() game.TerminalKind {
	return b.rules.Terminal()
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool {
	return b.rules.IsCheck()
}

// Turn returns the side to move.
func (b *Board) Turn() game.Color {
	return b.rules.Snapshot().Turn
}

// Ply returns the number of half-moves from the start of the game, as
// encoded in the position's counters. Zero at move one with white to play.
func (b *Board) Ply() int {
	snap := b.rules.Snapshot()
	ply := (snap.FullMoveNumber - 1) * 2
	if snap.Turn == game.Black {
		ply++
	}
	return ply
}

// IsZeroing reports whether the move would reset the half-move clock, that
// is a pawn move or a capture. The key does not have to be legal.
func (b *Board) IsZeroing(k game.MoveKey) bool {
	snap := b.rules.Snapshot()
	from, to := k.From(), k.To()
	if !from.Valid() || !to.Valid() {
		return false
	}
	return snap.Pieces[from].Kind == game.Pawn || !snap.Pieces[to].Empty()
}

// Hash returns the Zobrist key of the current position. The clock counters
// do not contribute.
func (b *Board) Hash() uint64 {
	return game.HashPosition(b.rules.Snapshot())
}

// ExportFEN returns the current position in FEN notation, as printed by the
// underlying engine.
func (b *Board) ExportFEN() string {
	return b.rules.ExportFEN()
}

// ExportFenHistory returns the starting FEN plus the moves played since, the
// complete state needed to rebuild this board. The slices are copies.
func (b *Board) ExportFenHistory() game.FenPlusHistory {
	moves := make([]string, len(b.moves))
	copy(moves, b.moves)
	return game.NewFenPlusHistory(b.startFen, moves...)
}

// Fork builds an independent board at the same state, replayed from the same
// starting FEN so history dependent rules keep working on the copy.
func (b *Board) Fork() (*Board, error) {
	return CreateBoard(b.ExportFenHistory(), b.conf)
}

// Snapshot returns a backend independent copy of the current position.
func (b *Board) Snapshot() game.Position {
	return b.rules.Snapshot()
}

// String renders the current position as an ASCII diagram.
func (b *Board) String() string {
	return b.rules.Snapshot().String()
}
