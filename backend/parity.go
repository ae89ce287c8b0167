package backend

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/victorgabillon/atomheart/game"
)

// Crosscheck replays the same line on both adapters and reports every
// divergence it finds rather than stopping at the first. At each step it
// compares the legal move-key sets, the exported FEN strings and the
// modification record produced by the move. Useful as a regression harness
// when either engine is upgraded.
func Crosscheck(fen string, uciMoves []string) error {
	pure, err := NewPure(fen, true)
	if err != nil {
		return errors.Wrap(err, "pure adapter")
	}
	native, err := NewNative(fen, true)
	if err != nil {
		return errors.Wrap(err, "native adapter")
	}

	var result *multierror.Error
	compare := func(step int) {
		pk, nk := pure.LegalMoveKeys(), native.LegalMoveKeys()
		if len(pk) != len(nk) {
			result = multierror.Append(result, errors.Errorf(
				"step %d: %d legal moves (pure) vs %d (native)", step, len(pk), len(nk)))
		} else {
			for i := range pk {
				if pk[i] != nk[i] {
					result = multierror.Append(result, errors.Errorf(
						"step %d: legal move %d: %s (pure) vs %s (native)",
						step, i, pk[i].UCI(), nk[i].UCI()))
				}
			}
		}
		if pf, nf := pure.ExportFEN(), native.ExportFEN(); pf != nf {
			result = multierror.Append(result, errors.Errorf(
				"step %d: fen %q (pure) vs %q (native)", step, pf, nf))
		}
	}

	compare(0)
	for i, uci := range uciMoves {
		key, err := game.MoveKeyFromUCI(uci)
		if err != nil {
			return errors.Wrapf(err, "move %d", i)
		}
		pm, perr := pure.ApplyMoveKey(key)
		nm, nerr := native.ApplyMoveKey(key)
		if (perr == nil) != (nerr == nil) {
			result = multierror.Append(result, errors.Errorf(
				"move %d (%s): pure err %v, native err %v", i, uci, perr, nerr))
			break
		}
		if perr != nil {
			return errors.Wrapf(perr, "move %d", i)
		}
		if pm.String() != nm.String() {
			result = multierror.Append(result, errors.Errorf(
				"move %d (%s): modification mismatch:\npure:   %s\nnative: %s",
				i, uci, pm, nm))
		}
		compare(i + 1)
	}
	return result.ErrorOrNil()
}
