package game

import (
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var validate = validator.New()

// FenPlusHistory pairs a starting FEN with the moves played from it, in UCI
// notation. It is the only exchange format for board state: replaying the
// moves from the starting FEN reconstructs the board deterministically,
// repetition history included. Treat values as immutable; the board factory
// copies the move list it is given.
type FenPlusHistory struct {
	CurrentFen      string   `yaml:"current_fen" validate:"required"`
	HistoricalMoves []string `yaml:"historical_moves,omitempty" validate:"omitempty,dive,min=4,max=5"`
}

// NewFenPlusHistory builds a history value from a starting FEN and the moves
// played from it.
func NewFenPlusHistory(fen string, moves ...string) FenPlusHistory {
	return FenPlusHistory{CurrentFen: fen, HistoricalMoves: moves}
}

// Validate checks the structure: a FEN must be present and every historical
// move must be syntactically valid UCI. Whether the moves are legal in
// sequence is only known to an engine and is checked at board construction.
func (f FenPlusHistory) Validate() error {
	if err := validate.Struct(f); err != nil {
		if strings.Contains(err.Error(), "CurrentFen") {
			return errors.Wrap(ErrInvalidFen, "missing fen")
		}
		return errors.Wrap(ErrMalformedUci, err.Error())
	}
	for i, uci := range f.HistoricalMoves {
		if _, err := MoveKeyFromUCI(uci); err != nil {
			return errors.Wrapf(err, "history move %d", i)
		}
	}
	return nil
}

// CurrentTurn parses the side to move out of the starting FEN.
func (f FenPlusHistory) CurrentTurn() (Color, error) {
	fields := strings.Fields(f.CurrentFen)
	if len(fields) < 2 {
		return White, errors.Wrapf(ErrInvalidFen, "%q: no turn field", f.CurrentFen)
	}
	switch fields[1] {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return White, errors.Wrapf(ErrInvalidFen, "%q: turn field must be 'w' or 'b'", f.CurrentFen)
}

// DumpYAML writes the history as YAML, the minimal information needed to
// reconstruct the board later.
func (f FenPlusHistory) DumpYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return errors.Wrap(enc.Encode(f), "dump fen plus history")
}

// LoadFenPlusHistory reads a YAML dump back and validates it.
func LoadFenPlusHistory(r io.Reader) (FenPlusHistory, error) {
	var f FenPlusHistory
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return f, errors.Wrap(err, "load fen plus history")
	}
	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}
