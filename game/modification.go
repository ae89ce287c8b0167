package game

import "strings"

// ChangeKind enumerates the atomic changes a move can make to a board.
type ChangeKind uint8

const (
	// PieceRemoved takes the piece off Change.Square.
	PieceRemoved ChangeKind = iota
	// PiecePlaced puts Change.Piece on Change.Square.
	PiecePlaced
	// CastlingRevoked drops the right for (Change.Color, Change.Side).
	CastlingRevoked
	// EnPassantCleared drops the target; Change.Square holds the old target.
	EnPassantCleared
	// EnPassantSet installs Change.Square as the new target.
	EnPassantSet
	// HalfMoveReset zeroes the clock; Change.Prev holds the old value.
	HalfMoveReset
	// HalfMoveIncremented bumps the clock by one.
	HalfMoveIncremented
	// FullMoveIncremented bumps the full-move number by one.
	FullMoveIncremented
	// SideFlipped passes the move to the other color.
	SideFlipped
)

var changeKindNames = [...]string{
	PieceRemoved:        "piece-removed",
	PiecePlaced:         "piece-placed",
	CastlingRevoked:     "castling-revoked",
	EnPassantCleared:    "en-passant-cleared",
	EnPassantSet:        "en-passant-set",
	HalfMoveReset:       "half-move-reset",
	HalfMoveIncremented: "half-move-incremented",
	FullMoveIncremented: "full-move-incremented",
	SideFlipped:         "side-flipped",
}

func (k ChangeKind) String() string {
	if int(k) < len(changeKindNames) {
		return changeKindNames[k]
	}
	return "unknown"
}

// Change is one atomic modification. Which fields are meaningful depends on
// Kind; unused fields stay at their zero values.
type Change struct {
	Kind   ChangeKind
	Square Square
	Piece  Piece
	Color  Color
	Side   CastleSide
	Prev   int // previous half-move clock, for HalfMoveReset
}

func (c Change) String() string {
	switch c.Kind {
	case PieceRemoved, PiecePlaced:
		return c.Kind.String() + " " + c.Piece.String() + "@" + c.Square.String()
	case CastlingRevoked:
		return c.Kind.String() + " " + c.Color.String() + " " + c.Side.String()
	case EnPassantCleared, EnPassantSet:
		return c.Kind.String() + " " + c.Square.String()
	default:
		return c.Kind.String()
	}
}

// BoardModification is the ordered record of what a move changed. Applying
// its changes in order to the pre-move position reproduces the post-move
// position exactly, which is what makes it sufficient for incremental
// hashing and for undo.
//
// The order is fixed: piece removals (ascending square), piece placements
// (ascending square), castling revocations, en-passant clear then set,
// half-move clock, full-move number, side to move. Both adapters emit this
// order, so modification records compare equal across backends.
type BoardModification struct {
	Changes []Change
}

// Removals returns the piece-removed entries in order.
func (m BoardModification) Removals() []Change { return m.ofKind(PieceRemoved) }

// Placements returns the piece-placed entries in order.
func (m BoardModification) Placements() []Change { return m.ofKind(PiecePlaced) }

// Revocations returns the castling-revoked entries in order.
func (m BoardModification) Revocations() []Change { return m.ofKind(CastlingRevoked) }

func (m BoardModification) ofKind(kind ChangeKind) []Change {
	var out []Change
	for _, c := range m.Changes {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether the record contains a change of the given kind.
func (m BoardModification) Has(kind ChangeKind) bool {
	for _, c := range m.Changes {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

func (m BoardModification) String() string {
	parts := make([]string, len(m.Changes))
	for i, c := range m.Changes {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Apply replays the recorded changes on a position, in order, and returns the
// resulting position. The receiver is not modified.
func (p Position) Apply(m BoardModification) Position {
	out := p
	for _, c := range m.Changes {
		switch c.Kind {
		case PieceRemoved:
			out.Pieces[c.Square] = NoPiece
		case PiecePlaced:
			out.Pieces[c.Square] = c.Piece
		case CastlingRevoked:
			out.Castling = out.Castling.Without(c.Color, c.Side)
		case EnPassantCleared:
			out.EnPassant = NoSquare
		case EnPassantSet:
			out.EnPassant = c.Square
		case HalfMoveReset:
			out.HalfMoveClock = 0
		case HalfMoveIncremented:
			out.HalfMoveClock++
		case FullMoveIncremented:
			out.FullMoveNumber++
		case SideFlipped:
			out.Turn = out.Turn.Other()
		}
	}
	return out
}

// Diff computes the modification that turns before into after. It assumes the
// two positions are one legal move apart: the half-move clock either resets
// or increments, the full-move number never decreases, and castling rights
// are only ever lost.
func Diff(before, after Position) BoardModification {
	var m BoardModification

	for sq := Square(0); sq < 64; sq++ {
		b, a := before.Pieces[sq], after.Pieces[sq]
		if b == a || b.Empty() {
			continue
		}
		m.Changes = append(m.Changes, Change{Kind: PieceRemoved, Square: sq, Piece: b})
	}
	for sq := Square(0); sq < 64; sq++ {
		b, a := before.Pieces[sq], after.Pieces[sq]
		if b == a || a.Empty() {
			continue
		}
		m.Changes = append(m.Changes, Change{Kind: PiecePlaced, Square: sq, Piece: a})
	}

	lost := before.Castling &^ after.Castling
	for _, c := range []Color{White, Black} {
		for _, s := range []CastleSide{KingSide, QueenSide} {
			if lost.Has(c, s) {
				m.Changes = append(m.Changes, Change{Kind: CastlingRevoked, Color: c, Side: s})
			}
		}
	}

	if before.EnPassant != after.EnPassant {
		if before.EnPassant != NoSquare {
			m.Changes = append(m.Changes, Change{Kind: EnPassantCleared, Square: before.EnPassant})
		}
		if after.EnPassant != NoSquare {
			m.Changes = append(m.Changes, Change{Kind: EnPassantSet, Square: after.EnPassant})
		}
	}

	// Every move either resets the clock or increments it, so the two cases
	// are distinguishable from the values alone.
	if after.HalfMoveClock == before.HalfMoveClock+1 {
		m.Changes = append(m.Changes, Change{Kind: HalfMoveIncremented})
	} else if after.HalfMoveClock == 0 {
		m.Changes = append(m.Changes, Change{Kind: HalfMoveReset, Prev: before.HalfMoveClock})
	}

	if after.FullMoveNumber > before.FullMoveNumber {
		m.Changes = append(m.Changes, Change{Kind: FullMoveIncremented})
	}

	if after.Turn != before.Turn {
		m.Changes = append(m.Changes, Change{Kind: SideFlipped})
	}

	return m
}
