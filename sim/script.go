package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/trapdoor/config"
)

var ErrBadScript = errors.New("sim: malformed input script")

// Script is scripted input: a list of actions, each held for a number of ticks.
// Once it runs out no action is held.
type Script struct {
	steps []scriptStep
	pos   int
	left  int
}

type scriptStep struct {
	actions []cfg.ActionID
	ticks   int
}

// ParseScript reads scripts like "right:60,down+left:30,wait:10". Actions
// joined with '+' are held together.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	src = strings.TrimSpace(src)
	if src == "" {
		return s, nil
	}

	for _, part := range strings.Split(src, ",") {
		name, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing tick count: %w", part, ErrBadScript)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("step %q: bad tick count: %w", part, ErrBadScript)
		}

		var step scriptStep
		step.ticks = ticks
		for _, token := range strings.Split(name, "+") {
			action, ok := cfg.ParseAction(strings.ToLower(strings.TrimSpace(token)))
			if !ok {
				return nil, fmt.Errorf("step %q: unknown action %q: %w", part, token, ErrBadScript)
			}
			if action != cfg.ActionNone {
				step.actions = append(step.actions, action)
			}
		}
		s.steps = append(s.steps, step)
	}
	if len(s.steps) > 0 {
		s.left = s.steps[0].ticks
	}
	return s, nil
}

// Next returns the actions held for the coming tick. A nil script holds nothing.
func (s *Script) Next() []cfg.ActionID {
	if s == nil {
		return nil
	}
	for s.pos < len(s.steps) && s.left == 0 {
		s.pos++
		if s.pos < len(s.steps) {
			s.left = s.steps[s.pos].ticks
		}
	}
	if s.pos >= len(s.steps) {
		return nil
	}
	s.left--
	return s.steps[s.pos].actions
}

// Len returns the total number of ticks the script covers.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, step := range s.steps {
		n += step.ticks
	}
	return n
}
