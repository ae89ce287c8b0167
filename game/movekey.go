package game

import "github.com/pkg/errors"

// MoveKey is the canonical, backend-independent identifier of a move: origin
// square, destination square and optional promotion kind packed into sixteen
// bits. Two legal moves in one position never share a key, and equal keys in
// equal positions denote the same effect regardless of which engine computed
// them.
//
// Layout from the least significant bit: 6 bits destination, 6 bits origin,
// 3 bits promotion kind.
type MoveKey uint16

// EncodeMove packs origin, destination and promotion into a MoveKey. promo is
// NoKind for non-promoting moves.
func EncodeMove(from, to Square, promo PieceKind) MoveKey {
	return MoveKey(to&0x3F) | MoveKey(from&0x3F)<<6 | MoveKey(promo&0x7)<<12
}

// From returns the origin square.
func (k MoveKey) From() Square { return Square(k >> 6 & 0x3F) }

// To returns the destination square.
func (k MoveKey) To() Square { return Square(k & 0x3F) }

// Promotion returns the promotion kind, or NoKind.
func (k MoveKey) Promotion() PieceKind { return PieceKind(k >> 12 & 0x7) }

// UCI renders the key in UCI notation, e.g. "e2e4" or "e7e8q". It is the
// left inverse of MoveKeyFromUCI.
func (k MoveKey) UCI() string {
	s := k.From().String() + k.To().String()
	if p := k.Promotion(); p != NoKind {
		s += string(p.Letter())
	}
	return s
}

func (k MoveKey) String() string { return k.UCI() }

// MoveKeyFromUCI parses a 4 or 5 character UCI move string. The promotion
// letter, when present, must be one of the lowercase letters q, r, b, n.
func MoveKeyFromUCI(uci string) (MoveKey, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return 0, errors.Wrapf(ErrMalformedUci, "%q: want 4 or 5 characters, got %d", uci, len(uci))
	}
	from, ok := squareFromAlgebraic(uci[0:2])
	if !ok {
		return 0, errors.Wrapf(ErrMalformedUci, "%q: bad origin square", uci)
	}
	to, ok := squareFromAlgebraic(uci[2:4])
	if !ok {
		return 0, errors.Wrapf(ErrMalformedUci, "%q: bad destination square", uci)
	}
	promo := NoKind
	if len(uci) == 5 {
		switch uci[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return 0, errors.Wrapf(ErrMalformedUci, "%q: bad promotion letter", uci)
		}
	}
	return EncodeMove(from, to, promo), nil
}
