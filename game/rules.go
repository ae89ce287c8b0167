package game

// TerminalKind classifies how a game has ended, or TerminalNone while it is
// still running.
type TerminalKind uint8

const (
	TerminalNone TerminalKind = iota
	TerminalCheckmate
	TerminalStalemate
	TerminalInsufficientMaterial
	TerminalFiftyMove
	TerminalThreefoldRepetition
	TerminalSeventyFiveMove
	TerminalFivefoldRepetition
)

var terminalNames = [...]string{
	TerminalNone:                 "none",
	TerminalCheckmate:            "checkmate",
	TerminalStalemate:            "stalemate",
	TerminalInsufficientMaterial: "insufficient-material",
	TerminalFiftyMove:            "fifty-move",
	TerminalThreefoldRepetition:  "threefold-repetition",
	TerminalSeventyFiveMove:      "seventy-five-move",
	TerminalFivefoldRepetition:   "fivefold-repetition",
}

func (t TerminalKind) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// Rules is the capability contract every backend adapter satisfies. An
// adapter owns its engine's board state exclusively; nothing outside the
// adapter mutates it, and engine-native move or board types never cross this
// boundary.
//
// Adapters are constructed from a FEN string by their package's constructor.
// None of the operations block; all are plain in-memory computation. A Rules
// value is not safe for concurrent mutation.
type Rules interface {
	// LegalMoveKeys lists every legal move in the current position. An empty
	// list means checkmate or stalemate; IsCheck distinguishes the two.
	LegalMoveKeys() []MoveKey

	// ApplyMoveKey plays the move and reports exactly what changed. It fails
	// with ErrIllegalMove when the key is not currently legal, leaving the
	// state untouched: apply is atomic, there is no partial mutation.
	ApplyMoveKey(k MoveKey) (BoardModification, error)

	// ExportFEN renders the current position. Feeding the result back to the
	// adapter's constructor reproduces the state exactly, counters included.
	ExportFEN() string

	// IsCheck reports whether the side to move is in check.
	IsCheck() bool

	// Terminal classifies the current position. Kinds an engine cannot
	// adjudicate report TerminalNone, never a false positive; each adapter
	// documents its coverage.
	Terminal() TerminalKind

	// Snapshot exports the position in the shared vocabulary, for diffing,
	// hashing and position keys.
	Snapshot() Position
}
