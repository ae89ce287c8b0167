package atomheart

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorgabillon/atomheart/game"
)

var bothBackends = []BackendKind{BackendPure, BackendNative}

func newTestBoard(t *testing.T, kind BackendKind, fen string, moves ...string) *Board {
	t.Helper()
	b, err := CreateBoard(game.NewFenPlusHistory(fen, moves...), Config{Backend: kind, SortLegalMoves: true})
	require.NoError(t, err)
	return b
}

func TestCreateBoardUnknownBackend(t *testing.T) {
	_, err := CreateBoard(game.NewFenPlusHistory(game.StartingFEN), Config{Backend: "fpga"})
	assert.True(t, errors.Is(err, game.ErrUnknownBackend), "got %v", err)
}

func TestCreateBoardInvalidFen(t *testing.T) {
	for _, kind := range bothBackends {
		_, err := CreateBoard(game.NewFenPlusHistory(""), Config{Backend: kind})
		assert.True(t, errors.Is(err, game.ErrInvalidFen), "backend %s: got %v", kind, err)
	}
}

func TestCreateBoardReplaysHistory(t *testing.T) {
	for _, kind := range bothBackends {
		b := newTestBoard(t, kind, game.StartingFEN, "e2e4", "e7e5", "g1f3")
		assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
			b.ExportFEN(), "backend %s", kind)
		assert.Equal(t, game.Black, b.Turn())
		assert.Equal(t, 3, b.Ply())
	}
}

func TestCreateBoardCorruptedHistory(t *testing.T) {
	for _, kind := range bothBackends {
		_, err := CreateBoard(
			game.NewFenPlusHistory(game.StartingFEN, "e2e4", "e7e5", "e4e5"),
			Config{Backend: kind, SortLegalMoves: true})
		require.Error(t, err, "backend %s", kind)
		assert.True(t, errors.Is(err, game.ErrIllegalMove), "backend %s: got %v", kind, err)
		assert.Contains(t, err.Error(), "historical move 2")
	}
}

func TestBoardIdentity(t *testing.T) {
	a := newTestBoard(t, BackendPure, game.StartingFEN)
	b := newTestBoard(t, BackendPure, game.StartingFEN)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestPlayMoveUCI(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN)

	_, err := b.PlayMoveUCI("z9z9")
	assert.True(t, errors.Is(err, game.ErrMalformedUci), "got %v", err)

	_, err = b.PlayMoveUCI("e2e5")
	assert.True(t, errors.Is(err, game.ErrIllegalMove), "got %v", err)

	mod, err := b.PlayMoveUCI("e2e4")
	require.NoError(t, err)
	assert.True(t, mod.Has(game.SideFlipped))
	assert.Equal(t, []string{"e2e4"}, b.ExportFenHistory().HistoricalMoves)
}

func TestPlayMoveKeyAfterGameOver(t *testing.T) {
	for _, kind := range bothBackends {
		b := newTestBoard(t, kind, game.StartingFEN, "f2f3", "e7e5", "g2g4", "d8h4")
		assert.Equal(t, game.TerminalCheckmate, b.Terminal(), "backend %s", kind)
		assert.True(t, b.IsCheck(), "backend %s", kind)

		key, err := game.MoveKeyFromUCI("a2a3")
		require.NoError(t, err)
		_, err = b.PlayMoveKey(key)
		assert.True(t, errors.Is(err, game.ErrGameOver), "backend %s: got %v", kind, err)
	}
}

func TestReconstructionIdempotence(t *testing.T) {
	for _, kind := range bothBackends {
		b := newTestBoard(t, kind, game.StartingFEN, "e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4")

		rebuilt, err := CreateBoard(b.ExportFenHistory(), b.Config())
		require.NoError(t, err, "backend %s", kind)
		assert.Equal(t, b.ExportFEN(), rebuilt.ExportFEN(), "backend %s", kind)
		assert.Equal(t, b.Hash(), rebuilt.Hash(), "backend %s", kind)
		assert.Equal(t, b.LegalMoves(), rebuilt.LegalMoves(), "backend %s", kind)
		assert.NotEqual(t, b.ID(), rebuilt.ID())
	}
}

func TestForkIndependence(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN, "e2e4")
	fork, err := b.Fork()
	require.NoError(t, err)

	assert.Equal(t, b.ExportFEN(), fork.ExportFEN())
	assert.NotEqual(t, b.ID(), fork.ID())

	_, err = fork.PlayMoveUCI("e7e5")
	require.NoError(t, err)
	assert.NotEqual(t, b.ExportFEN(), fork.ExportFEN())
	assert.Equal(t, []string{"e2e4"}, b.ExportFenHistory().HistoricalMoves)
	assert.Equal(t, []string{"e2e4", "e7e5"}, fork.ExportFenHistory().HistoricalMoves)
}

func TestForkKeepsRepetitionHistory(t *testing.T) {
	// Two knight shuffles land back on the start; a fork made mid-line must
	// still see the earlier occurrences.
	b := newTestBoard(t, BackendNative, game.StartingFEN,
		"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1")
	fork, err := b.Fork()
	require.NoError(t, err)

	_, err = fork.PlayMoveUCI("f6g8")
	require.NoError(t, err)
	assert.Equal(t, game.TerminalThreefoldRepetition, fork.Terminal())
}

func TestBackendsAgreeOnState(t *testing.T) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"}
	pure := newTestBoard(t, BackendPure, game.StartingFEN, moves...)
	native := newTestBoard(t, BackendNative, game.StartingFEN, moves...)

	assert.Equal(t, pure.ExportFEN(), native.ExportFEN())
	assert.Equal(t, pure.Hash(), native.Hash())
	assert.Equal(t, pure.LegalMoves(), native.LegalMoves())
	assert.Equal(t, pure.Snapshot(), native.Snapshot())
}

func TestIsZeroing(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN, "e2e4", "d7d5")

	pawnPush, err := game.MoveKeyFromUCI("a2a3")
	require.NoError(t, err)
	capture, err := game.MoveKeyFromUCI("e4d5")
	require.NoError(t, err)
	knight, err := game.MoveKeyFromUCI("g1f3")
	require.NoError(t, err)

	assert.True(t, b.IsZeroing(pawnPush))
	assert.True(t, b.IsZeroing(capture))
	assert.False(t, b.IsZeroing(knight))
}

func TestPly(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN)
	assert.Equal(t, 0, b.Ply())

	_, err := b.PlayMoveUCI("e2e4")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Ply())

	_, err = b.PlayMoveUCI("e7e5")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Ply())
}

func TestHashTracksIncrementalUpdate(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN)
	h := b.Hash()
	for _, uci := range []string{"e2e4", "e7e5", "g1f3"} {
		mod, err := b.PlayMoveUCI(uci)
		require.NoError(t, err)
		h = game.UpdateHash(h, mod)
		assert.Equal(t, b.Hash(), h, "after %s", uci)
	}
}

func TestExportFenHistoryCopies(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN, "e2e4")
	state := b.ExportFenHistory()
	state.HistoricalMoves[0] = "a2a3"
	assert.Equal(t, []string{"e2e4"}, b.ExportFenHistory().HistoricalMoves)
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t, BackendPure, game.StartingFEN)
	assert.Contains(t, b.String(), "8 r n b q k b n r")
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.Equal(t, BackendPure, conf.Backend)
	assert.True(t, conf.SortLegalMoves)

	assert.Equal(t, BackendNative, BackendFromFlag(true))
	assert.Equal(t, BackendPure, BackendFromFlag(false))
}
