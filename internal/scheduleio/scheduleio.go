// Package scheduleio reads an input schedule: a flat list of (tick,
// character) pairs describing when each character of simulated keyboard
// input becomes available to the machine's interrupt line.
package scheduleio

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Event is one scheduled character arrival.
type Event struct {
	Tick int
	Char rune
}

// Parse reads a schedule written as a parenthesized list of tick/character
// pairs, one pair per line or comma-separated on one line, e.g.:
//
//	(1, 'h') (5, 'i')
//
// This is a purpose-built literal reader, not a general expression
// evaluator: it accepts exactly the tuple shape above and rejects anything
// else, so a malformed schedule fails fast instead of executing arbitrary
// input.
func Parse(text string) ([]Event, error) {
	var events []Event
	rest := text
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			break
		}
		closeIdx := strings.IndexByte(rest[open:], ')')
		if closeIdx < 0 {
			return nil, errors.Errorf("schedule: unterminated tuple starting at %q", rest[open:])
		}
		pair := rest[open+1 : open+closeIdx]
		rest = rest[open+closeIdx+1:]

		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("schedule: malformed tuple %q", pair)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "schedule: bad tick in %q", pair)
		}
		ch, err := parseCharLiteral(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "schedule: bad character in %q", pair)
		}
		events = append(events, Event{Tick: tick, Char: ch})
	}
	return events, nil
}

// parseCharLiteral accepts 'x' or "x": a single rune quoted either way.
func parseCharLiteral(lit string) (rune, error) {
	if len(lit) < 2 {
		return 0, errors.Errorf("literal too short: %q", lit)
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"') || lit[len(lit)-1] != quote {
		return 0, errors.Errorf("expected quoted character, got %q", lit)
	}
	body := []rune(lit[1 : len(lit)-1])
	if len(body) != 1 {
		return 0, errors.Errorf("expected exactly one character, got %q", lit)
	}
	return body[0], nil
}
