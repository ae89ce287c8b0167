package backend

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorgabillon/atomheart/game"
)

func TestNativeStartingMoves(t *testing.T) {
	n, err := NewNative(game.StartingFEN, true)
	require.NoError(t, err)

	keys := n.LegalMoveKeys()
	assert.Len(t, keys, 20)
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return keys[i].UCI() < keys[j].UCI()
	}))
	assert.Contains(t, keys, mustKey(t, "e2e4"))
	assert.Contains(t, keys, mustKey(t, "b1c3"))
}

func TestNativeInvalidFen(t *testing.T) {
	_, err := NewNative("not a fen", true)
	assert.True(t, errors.Is(err, game.ErrInvalidFen), "got %v", err)
}

func TestNativeApplyPawnDoublePush(t *testing.T) {
	n, err := NewNative(game.StartingFEN, true)
	require.NoError(t, err)

	mod, err := n.ApplyMoveKey(mustKey(t, "e2e4"))
	require.NoError(t, err)

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", n.ExportFEN())
	assert.Equal(t, []game.Change{
		{Kind: game.PieceRemoved, Square: game.NewSquare(4, 1), Piece: game.Piece{Color: game.White, Kind: game.Pawn}},
	}, mod.Removals())
	assert.Equal(t, []game.Change{
		{Kind: game.PiecePlaced, Square: game.NewSquare(4, 3), Piece: game.Piece{Color: game.White, Kind: game.Pawn}},
	}, mod.Placements())
	assert.True(t, mod.Has(game.EnPassantSet))
}

func TestNativeApplyIllegal(t *testing.T) {
	n, err := NewNative(game.StartingFEN, true)
	require.NoError(t, err)

	before := n.ExportFEN()
	_, err = n.ApplyMoveKey(mustKey(t, "e2e5"))
	assert.True(t, errors.Is(err, game.ErrIllegalMove), "got %v", err)
	assert.Equal(t, before, n.ExportFEN())
}

func TestNativeCastling(t *testing.T) {
	n, err := NewNative(castlingFen, true)
	require.NoError(t, err)

	mod, err := n.ApplyMoveKey(mustKey(t, "e1g1"))
	require.NoError(t, err)

	assert.Len(t, mod.Removals(), 2)
	assert.Len(t, mod.Placements(), 2)
	assert.Equal(t, []game.Change{
		{Kind: game.CastlingRevoked, Color: game.White, Side: game.KingSide},
		{Kind: game.CastlingRevoked, Color: game.White, Side: game.QueenSide},
	}, mod.Revocations())
}

func TestNativeEnPassantCapture(t *testing.T) {
	n, err := NewNative("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 4", true)
	require.NoError(t, err)

	mod, err := n.ApplyMoveKey(mustKey(t, "e5d6"))
	require.NoError(t, err)

	removed := mod.Removals()
	require.Len(t, removed, 2)
	assert.Equal(t, game.NewSquare(3, 4), removed[0].Square) // the captured pawn on d5
	assert.True(t, mod.Has(game.EnPassantCleared))
}

func TestNativePromotion(t *testing.T) {
	n, err := NewNative(promotionFen, true)
	require.NoError(t, err)

	keys := n.LegalMoveKeys()
	for _, uci := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		assert.Contains(t, keys, mustKey(t, uci))
	}

	mod, err := n.ApplyMoveKey(mustKey(t, "a7a8n"))
	require.NoError(t, err)
	placed := mod.Placements()
	require.Len(t, placed, 1)
	assert.Equal(t, game.Piece{Color: game.White, Kind: game.Knight}, placed[0].Piece)
}

func TestNativeIsCheck(t *testing.T) {
	n, err := NewNative(bishopCheckFen, true)
	require.NoError(t, err)
	assert.True(t, n.IsCheck())

	n, err = NewNative(game.StartingFEN, true)
	require.NoError(t, err)
	assert.False(t, n.IsCheck())
}

func TestNativeIsCheckPinnedChecker(t *testing.T) {
	n, err := NewNative(pinnedCheckFen, true)
	require.NoError(t, err)
	assert.True(t, n.IsCheck())
	assert.Equal(t, game.TerminalNone, n.Terminal())
}

func TestNativeTerminalCheckmate(t *testing.T) {
	n, err := NewNative(game.StartingFEN, true)
	require.NoError(t, err)
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		_, err := n.ApplyMoveKey(mustKey(t, uci))
		require.NoError(t, err)
	}
	assert.Equal(t, game.TerminalCheckmate, n.Terminal())
	assert.Empty(t, n.LegalMoveKeys())
}

func TestNativeTerminalStalemate(t *testing.T) {
	n, err := NewNative(stalemateFen, true)
	require.NoError(t, err)
	assert.Equal(t, game.TerminalStalemate, n.Terminal())
}

func TestNativeTerminalFiftyMove(t *testing.T) {
	n, err := NewNative(fiftyMoveFen, true)
	require.NoError(t, err)
	assert.Equal(t, game.TerminalFiftyMove, n.Terminal())
}

func TestNativeTerminalThreefold(t *testing.T) {
	n, err := NewNative(game.StartingFEN, true)
	require.NoError(t, err)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, uci := range shuffle {
			_, err := n.ApplyMoveKey(mustKey(t, uci))
			require.NoError(t, err)
		}
	}
	assert.Equal(t, game.TerminalThreefoldRepetition, n.Terminal())
}

func TestNativeSnapshotMatchesFEN(t *testing.T) {
	for _, fen := range []string{game.StartingFEN, castlingFen, bishopCheckFen, fiftyMoveFen} {
		n, err := NewNative(fen, true)
		require.NoError(t, err)
		assert.Equal(t, fen, n.Snapshot().FEN(), fen)
	}
}
