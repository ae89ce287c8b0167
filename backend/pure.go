// Package backend provides the two adapters that put a concrete rules engine
// behind the game.Rules capability contract: Pure wraps the pure-Go
// notnil/chess engine, Native wraps the goosemg bitboard move generator.
// Engine-native move and board types never leave this package.
package backend

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/victorgabillon/atomheart/game"
)

// Pure adapts the notnil/chess engine. The engine keeps the whole game line
// internally, so repetition detection comes straight from it. The half-move
// clock does not: the engine zeroes its counter whenever castling rights
// change, which the fifty-move rule does not allow, so the adapter counts
// half-moves itself and splices its clock into every export.
//
// Terminal coverage: checkmate, stalemate, fifty-move, seventy-five-move and
// threefold are always detected; insufficient-material and fivefold are
// reported only once the engine has adjudicated them after a move, and read
// as none on a board freshly constructed from FEN.
type Pure struct {
	game      *chess.Game
	sortMoves bool

	// adapter-side half-move clock, see type comment
	halfmove int

	// caches for the current position
	moves []*chess.Move
	keys  []game.MoveKey
}

// NewPure constructs the adapter from a FEN string. The engine's own FEN
// validation applies; grammar errors and positions it refuses to load both
// surface as ErrInvalidFen.
func NewPure(fen string, sortMoves bool) (*Pure, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(game.ErrInvalidFen, "%q: %v", fen, err)
	}
	p := &Pure{game: chess.NewGame(opt), sortMoves: sortMoves}
	if fields := strings.Fields(p.game.Position().String()); len(fields) == 6 {
		p.halfmove, _ = strconv.Atoi(fields[4])
	}
	p.refresh()
	return p, nil
}

func pureKey(m *chess.Move) game.MoveKey {
	return game.EncodeMove(game.Square(m.S1()), game.Square(m.S2()), pureKind(m.Promo()))
}

func pureKind(t chess.PieceType) game.PieceKind {
	switch t {
	case chess.Pawn:
		return game.Pawn
	case chess.Knight:
		return game.Knight
	case chess.Bishop:
		return game.Bishop
	case chess.Rook:
		return game.Rook
	case chess.Queen:
		return game.Queen
	case chess.King:
		return game.King
	}
	return game.NoKind
}

func (p *Pure) refresh() {
	p.moves = p.game.ValidMoves()
	if p.sortMoves {
		slices.SortFunc(p.moves, func(a, b *chess.Move) bool {
			return pureKey(a).UCI() < pureKey(b).UCI()
		})
	}
	p.keys = p.keys[:0]
	for _, m := range p.moves {
		p.keys = append(p.keys, pureKey(m))
	}
}

// LegalMoveKeys implements game.Rules.
func (p *Pure) LegalMoveKeys() []game.MoveKey {
	out := make([]game.MoveKey, len(p.keys))
	copy(out, p.keys)
	return out
}

// ApplyMoveKey implements game.Rules. The modification is computed by
// diffing snapshots taken around the engine's own move application.
func (p *Pure) ApplyMoveKey(k game.MoveKey) (game.BoardModification, error) {
	var move *chess.Move
	for i, key := range p.keys {
		if key == k {
			move = p.moves[i]
			break
		}
	}
	if move == nil {
		return game.BoardModification{}, errors.Wrapf(game.ErrIllegalMove, "%s", k.UCI())
	}

	before := p.Snapshot()
	zeroing := before.Pieces[k.From()].Kind == game.Pawn || !before.Pieces[k.To()].Empty()
	if err := p.game.Move(move); err != nil {
		return game.BoardModification{}, errors.Wrapf(game.ErrIllegalMove, "%s: %v", k.UCI(), err)
	}
	if zeroing {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	after := p.Snapshot()
	p.refresh()
	return game.Diff(before, after), nil
}

// ExportFEN implements game.Rules. The half-move clock field carries the
// adapter's own count.
func (p *Pure) ExportFEN() string {
	fields := strings.Fields(p.game.Position().String())
	if len(fields) == 6 {
		fields[4] = strconv.Itoa(p.halfmove)
	}
	return strings.Join(fields, " ")
}

// IsCheck implements game.Rules. The engine does not expose a check query,
// so the snapshot answers it with a direct attack test.
func (p *Pure) IsCheck() bool {
	return p.Snapshot().InCheck()
}

// Terminal implements game.Rules.
func (p *Pure) Terminal() game.TerminalKind {
	switch p.game.Position().Status() {
	case chess.Checkmate:
		return game.TerminalCheckmate
	case chess.Stalemate:
		return game.TerminalStalemate
	}

	if p.game.Outcome() == chess.Draw {
		switch p.game.Method() {
		case chess.InsufficientMaterial:
			return game.TerminalInsufficientMaterial
		case chess.FivefoldRepetition:
			return game.TerminalFivefoldRepetition
		}
	}

	// Clock draws run off the adapter's own clock. Claimable draws count as
	// terminal here so that both adapters classify the same positions the
	// same way; fifty-move is checked before threefold to match the native
	// adapter's order when both apply.
	if p.halfmove >= 150 {
		return game.TerminalSeventyFiveMove
	}
	if p.halfmove >= 100 {
		return game.TerminalFiftyMove
	}
	for _, m := range p.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition {
			return game.TerminalThreefoldRepetition
		}
	}
	return game.TerminalNone
}

// Snapshot implements game.Rules, by reading the engine's FEN export back
// through the shared parser and splicing in the adapter's clock.
func (p *Pure) Snapshot() game.Position {
	// The engine's own export always parses.
	snap, _ := game.ParsePosition(p.game.Position().String())
	snap.HalfMoveClock = p.halfmove
	return snap
}
