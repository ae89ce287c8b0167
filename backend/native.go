package backend

import (
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/victorgabillon/atomheart/game"
)

// Native adapts the goosemg bitboard engine. The engine mutates a single
// board in place and keeps no game line of its own, so the adapter carries
// the Zobrist history needed for repetition detection.
//
// Terminal coverage: checkmate, stalemate, fifty-move and threefold are
// detected; the kinds this engine has no notion of (insufficient material,
// seventy-five-move, fivefold) read as none.
type Native struct {
	board     *goosemg.Board
	sortMoves bool

	// Zobrist keys of every position reached, starting position included.
	hashes []uint64

	moves []goosemg.Move
	keys  []game.MoveKey
}

// NewNative constructs the adapter from a FEN string. This engine accepts
// some strings the pure engine rejects, for example positions with no kings;
// only what it refuses to parse surfaces as ErrInvalidFen.
func NewNative(fen string, sortMoves bool) (*Native, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(game.ErrInvalidFen, "%q: %v", fen, err)
	}
	n := &Native{board: board, sortMoves: sortMoves, hashes: []uint64{board.Hash()}}
	n.refresh()
	return n, nil
}

func nativeKey(m goosemg.Move) game.MoveKey {
	promo := game.NoKind
	switch m.PromotionPiece().Type() {
	case goosemg.PieceTypeKnight:
		promo = game.Knight
	case goosemg.PieceTypeBishop:
		promo = game.Bishop
	case goosemg.PieceTypeRook:
		promo = game.Rook
	case goosemg.PieceTypeQueen:
		promo = game.Queen
	}
	return game.EncodeMove(game.Square(m.From()), game.Square(m.To()), promo)
}

func (n *Native) refresh() {
	n.moves = n.board.GenerateLegalMoves()
	if n.sortMoves {
		slices.SortFunc(n.moves, func(a, b goosemg.Move) bool {
			return nativeKey(a).UCI() < nativeKey(b).UCI()
		})
	}
	n.keys = n.keys[:0]
	for _, m := range n.moves {
		n.keys = append(n.keys, nativeKey(m))
	}
}

// LegalMoveKeys implements game.Rules.
func (n *Native) LegalMoveKeys() []game.MoveKey {
	out := make([]game.MoveKey, len(n.keys))
	copy(out, n.keys)
	return out
}

// ApplyMoveKey implements game.Rules. The key is resolved against the
// generated legal moves rather than re-parsed, so the engine always receives
// a move carrying its full metadata.
func (n *Native) ApplyMoveKey(k game.MoveKey) (game.BoardModification, error) {
	found := false
	var move goosemg.Move
	for i, key := range n.keys {
		if key == k {
			move = n.moves[i]
			found = true
			break
		}
	}
	if !found {
		return game.BoardModification{}, errors.Wrapf(game.ErrIllegalMove, "%s", k.UCI())
	}

	before := n.Snapshot()
	if ok, _ := n.board.MakeMove(move); !ok {
		return game.BoardModification{}, errors.Wrapf(game.ErrIllegalMove, "%s", k.UCI())
	}
	after := n.Snapshot()
	n.hashes = append(n.hashes, n.board.Hash())
	n.refresh()
	return game.Diff(before, after), nil
}

// ExportFEN implements game.Rules.
func (n *Native) ExportFEN() string {
	return n.board.ToFEN()
}

// IsCheck implements game.Rules.
func (n *Native) IsCheck() bool {
	return n.board.InCheck(n.board.SideToMove())
}

// Terminal implements game.Rules.
func (n *Native) Terminal() game.TerminalKind {
	switch {
	case n.board.InCheckmate():
		return game.TerminalCheckmate
	case n.board.InStalemate():
		return game.TerminalStalemate
	case n.board.IsDrawBy50():
		return game.TerminalFiftyMove
	case n.board.IsDrawByRepetition(n.hashes):
		return game.TerminalThreefoldRepetition
	}
	return game.TerminalNone
}

// Snapshot implements game.Rules. Castling rights come from the engine's
// own FEN export; it exposes no direct accessor for them.
func (n *Native) Snapshot() game.Position {
	var snap game.Position
	for sq := game.Square(0); sq < 64; sq++ {
		piece := n.board.PieceAt(goosemg.Square(sq))
		if piece == goosemg.NoPiece {
			continue
		}
		color := game.White
		if piece.Color() == goosemg.Black {
			color = game.Black
		}
		snap.Pieces[sq] = game.Piece{Color: color, Kind: nativeKind(piece.Type())}
	}

	snap.Turn = game.White
	if n.board.SideToMove() == goosemg.Black {
		snap.Turn = game.Black
	}

	if fields := strings.Fields(n.board.ToFEN()); len(fields) >= 3 {
		snap.Castling, _ = game.ParseCastlingRights(fields[2])
	}

	snap.EnPassant = game.NoSquare
	if ep := n.board.EnPassantSquare(); ep != goosemg.NoSquare {
		snap.EnPassant = game.Square(ep)
	}

	snap.HalfMoveClock = n.board.HalfmoveClock()
	snap.FullMoveNumber = n.board.FullmoveNumber()
	return snap
}

func nativeKind(t goosemg.PieceType) game.PieceKind {
	switch t {
	case goosemg.PieceTypePawn:
		return game.Pawn
	case goosemg.PieceTypeKnight:
		return game.Knight
	case goosemg.PieceTypeBishop:
		return game.Bishop
	case goosemg.PieceTypeRook:
		return game.Rook
	case goosemg.PieceTypeQueen:
		return game.Queen
	case goosemg.PieceTypeKing:
		return game.King
	}
	return game.NoKind
}
