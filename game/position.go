package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the backend-independent snapshot of a board: piece placement
// plus the five non-placement FEN fields. Adapters export it so that
// modifications, hashes and position keys can be computed without reaching
// into engine internals.
type Position struct {
	Pieces         [64]Piece
	Turn           Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when no target
	HalfMoveClock  int
	FullMoveNumber int
}

// ParsePosition decodes a six-field FEN string. It checks the grammar only;
// whether a grammatically valid position is reachable or even possible is the
// wrapped engine's concern.
func ParsePosition(fen string) (Position, error) {
	var p Position
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, errors.Wrapf(ErrInvalidFen, "%q: want 6 fields, got %d", fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return p, errors.Wrapf(ErrInvalidFen, "%q: want 8 ranks, got %d", fen, len(ranks))
	}
	for r, rank := range ranks {
		file := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := PieceFromFENChar(ch)
			if !ok || file > 7 {
				return p, errors.Wrapf(ErrInvalidFen, "%q: bad placement rank %q", fen, rank)
			}
			// FEN lists rank 8 first
			p.Pieces[NewSquare(file, 7-r)] = piece
			file++
		}
		if file != 8 {
			return p, errors.Wrapf(ErrInvalidFen, "%q: rank %q does not span 8 files", fen, rank)
		}
	}

	switch fields[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return p, errors.Wrapf(ErrInvalidFen, "%q: turn field must be 'w' or 'b'", fen)
	}

	rights, ok := ParseCastlingRights(fields[2])
	if !ok {
		return p, errors.Wrapf(ErrInvalidFen, "%q: bad castling field %q", fen, fields[2])
	}
	p.Castling = rights

	if fields[3] == "-" {
		p.EnPassant = NoSquare
	} else {
		sq, ok := squareFromAlgebraic(fields[3])
		if !ok {
			return p, errors.Wrapf(ErrInvalidFen, "%q: bad en-passant field %q", fen, fields[3])
		}
		p.EnPassant = sq
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return p, errors.Wrapf(ErrInvalidFen, "%q: bad half-move clock %q", fen, fields[4])
	}
	p.HalfMoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return p, errors.Wrapf(ErrInvalidFen, "%q: bad full-move number %q", fen, fields[5])
	}
	p.FullMoveNumber = full

	return p, nil
}

// FEN renders the position as a six-field FEN string, the exact inverse of
// ParsePosition.
func (p Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Pieces[NewSquare(file, rank)]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))
	return sb.String()
}

// String renders an ASCII diagram, rank 8 at the top.
func (p Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			piece := p.Pieces[NewSquare(file, rank)]
			if piece.Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.FENChar())
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
