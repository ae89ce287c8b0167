package game

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// IsAttacked reports whether the square is attacked by any piece of the given
// color. Occupancy blocks sliding pieces; whether the attacker is itself
// pinned does not matter, a pinned piece still attacks.
func (p Position) IsAttacked(sq Square, by Color) bool {
	f, r := sq.File(), sq.Rank()

	at := func(file, rank int) Piece {
		if file < 0 || file > 7 || rank < 0 || rank > 7 {
			return NoPiece
		}
		return p.Pieces[NewSquare(file, rank)]
	}

	// A pawn attacks diagonally forward, so the attacker sits one rank
	// behind the square from its own point of view.
	pawnRank := r - 1
	if by == Black {
		pawnRank = r + 1
	}
	if at(f-1, pawnRank) == (Piece{Color: by, Kind: Pawn}) ||
		at(f+1, pawnRank) == (Piece{Color: by, Kind: Pawn}) {
		return true
	}

	for _, o := range knightOffsets {
		if at(f+o[0], r+o[1]) == (Piece{Color: by, Kind: Knight}) {
			return true
		}
	}
	for _, o := range kingOffsets {
		if at(f+o[0], r+o[1]) == (Piece{Color: by, Kind: King}) {
			return true
		}
	}

	for _, d := range bishopDirs {
		for df, dr := d[0], d[1]; ; df, dr = df+d[0], dr+d[1] {
			if f+df < 0 || f+df > 7 || r+dr < 0 || r+dr > 7 {
				break
			}
			piece := p.Pieces[NewSquare(f+df, r+dr)]
			if piece.Empty() {
				continue
			}
			if piece.Color == by && (piece.Kind == Bishop || piece.Kind == Queen) {
				return true
			}
			break
		}
	}
	for _, d := range rookDirs {
		for df, dr := d[0], d[1]; ; df, dr = df+d[0], dr+d[1] {
			if f+df < 0 || f+df > 7 || r+dr < 0 || r+dr > 7 {
				break
			}
			piece := p.Pieces[NewSquare(f+df, r+dr)]
			if piece.Empty() {
				continue
			}
			if piece.Color == by && (piece.Kind == Rook || piece.Kind == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// KingSquare returns the square of the given color's king, or NoSquare when
// the position has none.
func (p Position) KingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		if p.Pieces[sq] == (Piece{Color: c, Kind: King}) {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool {
	king := p.KingSquare(p.Turn)
	if king == NoSquare {
		return false
	}
	return p.IsAttacked(king, p.Turn.Other())
}
