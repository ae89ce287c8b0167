package game

import "github.com/pkg/errors"

// Error kinds returned by the board layer. Callers match them with errors.Is;
// every failure leaves the board that produced it unchanged.
var (
	// ErrInvalidFen reports a FEN string that violates the grammar or that the
	// selected engine refuses to load.
	ErrInvalidFen = errors.New("invalid fen")

	// ErrMalformedUci reports a move string that is not 4 or 5 characters of
	// valid square/promotion notation.
	ErrMalformedUci = errors.New("malformed uci")

	// ErrIllegalMove reports a well-formed move that is not legal in the
	// current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownBackend reports a backend selector value outside the
	// recognized set.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrGameOver reports a mutating call on a board whose game has ended.
	ErrGameOver = errors.New("game over")
)
