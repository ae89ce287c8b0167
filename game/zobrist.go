package game

import rng "github.com/leesper/go_rng"

// Zobrist tables. Keys are generated from a fixed seed so hashes are stable
// across runs and across processes, which transposition tables rely on.
// Per-right castling keys (rather than the 16 combination keys) let a single
// revocation entry update the hash with one xor.
var (
	zobristPiece     [2][7][64]uint64 // [Color][PieceKind][Square]
	zobristCastle    [4]uint64        // one per castling right
	zobristEnPassant [8]uint64        // one per file
	zobristSide      uint64           // xored in when black is to move
)

const zobristSeed int64 = 0x6C078965

func init() {
	gen := rng.NewUniformGenerator(zobristSeed)
	next := func() uint64 {
		// Int64 yields 63 bits; combine two draws for a full word.
		return uint64(gen.Int64())<<32 ^ uint64(gen.Int64())
	}
	for c := 0; c < 2; c++ {
		for k := int(Pawn); k <= int(King); k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = next()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = next()
	}
	zobristSide = next()
}

func castleKey(c Color, s CastleSide) uint64 {
	return zobristCastle[uint(c)*2+uint(s)]
}

// HashPosition computes the Zobrist hash of a position. The move counters do
// not contribute, matching the identity the repetition rules use.
func HashPosition(p Position) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Pieces[sq]
		if piece.Empty() {
			continue
		}
		h ^= zobristPiece[piece.Color][piece.Kind][sq]
	}
	for _, c := range []Color{White, Black} {
		for _, s := range []CastleSide{KingSide, QueenSide} {
			if p.Castling.Has(c, s) {
				h ^= castleKey(c, s)
			}
		}
	}
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	if p.Turn == Black {
		h ^= zobristSide
	}
	return h
}

// UpdateHash applies a modification to a position hash incrementally. For any
// legal move, UpdateHash(HashPosition(before), mod) equals
// HashPosition(after), without touching the sixty-four squares again.
func UpdateHash(h uint64, m BoardModification) uint64 {
	for _, c := range m.Changes {
		switch c.Kind {
		case PieceRemoved, PiecePlaced:
			h ^= zobristPiece[c.Piece.Color][c.Piece.Kind][c.Square]
		case CastlingRevoked:
			h ^= castleKey(c.Color, c.Side)
		case EnPassantCleared, EnPassantSet:
			h ^= zobristEnPassant[c.Square.File()]
		case SideFlipped:
			h ^= zobristSide
		}
	}
	return h
}
