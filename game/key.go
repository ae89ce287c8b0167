package game

// PositionKey is a fast, comparable identifier for a position. It carries the
// same information as the FEN but as plain integers, so it can serve as a map
// key without string formatting. Building one from a snapshot is cheaper than
// exporting and comparing FEN strings.
type PositionKey struct {
	Pawns, Knights, Bishops uint64
	Rooks, Queens, Kings    uint64
	White, Black            uint64
	Turn                    Color
	Castling                CastlingRights
	EnPassant               Square
	HalfMoveClock           int
	FullMoveNumber          int
}

// PositionKeyWithoutCounters drops the move counters, so that the same
// placement reached at different points of the game compares equal. That is
// the identity the repetition draw rules count.
type PositionKeyWithoutCounters struct {
	Pawns, Knights, Bishops uint64
	Rooks, Queens, Kings    uint64
	White, Black            uint64
	Turn                    Color
	Castling                CastlingRights
	EnPassant               Square
}

// Key computes the position's fast identifier.
func (p Position) Key() PositionKey {
	var k PositionKey
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Pieces[sq]
		if piece.Empty() {
			continue
		}
		bit := uint64(1) << uint(sq)
		switch piece.Kind {
		case Pawn:
			k.Pawns |= bit
		case Knight:
			k.Knights |= bit
		case Bishop:
			k.Bishops |= bit
		case Rook:
			k.Rooks |= bit
		case Queen:
			k.Queens |= bit
		case King:
			k.Kings |= bit
		}
		if piece.Color == White {
			k.White |= bit
		} else {
			k.Black |= bit
		}
	}
	k.Turn = p.Turn
	k.Castling = p.Castling
	k.EnPassant = p.EnPassant
	k.HalfMoveClock = p.HalfMoveClock
	k.FullMoveNumber = p.FullMoveNumber
	return k
}

// WithoutCounters strips the half-move clock and full-move number.
func (k PositionKey) WithoutCounters() PositionKeyWithoutCounters {
	return PositionKeyWithoutCounters{
		Pawns: k.Pawns, Knights: k.Knights, Bishops: k.Bishops,
		Rooks: k.Rooks, Queens: k.Queens, Kings: k.Kings,
		White: k.White, Black: k.Black,
		Turn: k.Turn, Castling: k.Castling, EnPassant: k.EnPassant,
	}
}
