package game

// Square is a board coordinate in little-endian rank-file mapping: a1 is 0,
// b1 is 1, h8 is 63. Both wrapped engines use the same mapping, which keeps
// square translation at the adapter boundary a plain cast.
type Square int8

// NoSquare marks the absence of a square (for example no en-passant target).
const NoSquare Square = -1

// NewSquare builds a square from a file and rank, each in [0,7].
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file index in [0,7] (0 is the a-file).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index in [0,7] (0 is rank 1).
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// squareFromAlgebraic parses a two-character coordinate such as "e4".
func squareFromAlgebraic(alg string) (Square, bool) {
	if len(alg) != 2 {
		return NoSquare, false
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}

// Color of a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{NoKind: '.', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

// Letter returns the lowercase FEN/UCI letter for the kind.
func (k PieceKind) Letter() byte {
	if k > King {
		return '?'
	}
	return kindLetters[k]
}

// PieceKindFromLetter maps a lowercase piece letter to its kind.
func PieceKindFromLetter(b byte) (PieceKind, bool) {
	switch b {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return NoKind, false
}

// Piece pairs a color with a kind. The zero value is the empty square.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the empty square marker.
var NoPiece = Piece{}

// Empty reports whether the piece marks an empty square.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// FENChar returns the single-letter FEN encoding: uppercase for white,
// lowercase for black.
func (p Piece) FENChar() byte {
	l := p.Kind.Letter()
	if p.Color == White {
		return l - 'a' + 'A'
	}
	return l
}

// PieceFromFENChar parses a single FEN piece letter.
func PieceFromFENChar(b byte) (Piece, bool) {
	c := White
	if b >= 'a' && b <= 'z' {
		c = Black
	} else {
		b = b - 'A' + 'a'
	}
	k, ok := PieceKindFromLetter(b)
	if !ok {
		return NoPiece, false
	}
	return Piece{Color: c, Kind: k}, true
}

func (p Piece) String() string {
	if p.Empty() {
		return "-"
	}
	return string(p.FENChar())
}

// CastleSide distinguishes the king side from the queen side.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

func (s CastleSide) String() string {
	if s == KingSide {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights is a bitmask over the four castling rights, laid out the way
// the bitboard engine stores them.
type CastlingRights uint8

const (
	WhiteKingsideRight CastlingRights = 1 << iota
	WhiteQueensideRight
	BlackKingsideRight
	BlackQueensideRight
)

// right returns the bit for one (color, side) pair.
func right(c Color, s CastleSide) CastlingRights {
	shift := uint(c)*2 + uint(s)
	return CastlingRights(1) << shift
}

// Has reports whether the right for the given color and side is held.
func (r CastlingRights) Has(c Color, s CastleSide) bool { return r&right(c, s) != 0 }

// Without clears the right for the given color and side.
func (r CastlingRights) Without(c Color, s CastleSide) CastlingRights { return r &^ right(c, s) }

// With sets the right for the given color and side.
func (r CastlingRights) With(c Color, s CastleSide) CastlingRights { return r | right(c, s) }

// String renders the FEN castling field ("KQkq" subsets or "-").
func (r CastlingRights) String() string {
	if r == 0 {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if r&WhiteKingsideRight != 0 {
		buf = append(buf, 'K')
	}
	if r&WhiteQueensideRight != 0 {
		buf = append(buf, 'Q')
	}
	if r&BlackKingsideRight != 0 {
		buf = append(buf, 'k')
	}
	if r&BlackQueensideRight != 0 {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// ParseCastlingRights parses the FEN castling field.
func ParseCastlingRights(field string) (CastlingRights, bool) {
	if field == "-" {
		return 0, true
	}
	var r CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			r |= WhiteKingsideRight
		case 'Q':
			r |= WhiteQueensideRight
		case 'k':
			r |= BlackKingsideRight
		case 'q':
			r |= BlackQueensideRight
		default:
			return 0, false
		}
	}
	return r, true
}
