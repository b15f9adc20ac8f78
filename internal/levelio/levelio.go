// Package levelio is the level-file tokenizer: it turns a stream of text
// lines into a sequence of named, static *level.Level values, with
// player/crates pulled out of the grid into their own fields. The core
// solver never reads this format directly; it only depends on the
// resulting level.Level.
//
// Grounded on parse() in
// _examples/bertbaron-pathfinding/examples/sokoban/main.go (rune -> bitmask
// dispatch via a map literal), generalized to ragged rows, multi-level
// streams, and a level-name header that single-level example didn't need.
package levelio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sokosolve/internal/geom"
	"sokosolve/internal/level"
)

// ParseAll reads every level in r, in order. Blank lines are skipped, a
// line starting with ';' opens a new level named by the remainder of the
// line, and grid lines use the fixed symbol set below.
func ParseAll(r io.Reader) ([]*level.Level, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var levels []*level.Level
	var cur *builder

	flush := func() error {
		if cur == nil {
			return nil
		}
		lvl, err := cur.build()
		if err != nil {
			return err
		}
		levels = append(levels, lvl)
		cur = nil
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			if err := flush(); err != nil {
				return nil, err
			}
			cur = newBuilder(strings.TrimSpace(line[1:]))
			continue
		}
		if cur == nil {
			// A grid line before any ';' header names an anonymous level.
			cur = newBuilder("")
		}
		cur.addRow(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return levels, nil
}

type builder struct {
	name string
	rows [][]byte
}

func newBuilder(name string) *builder {
	return &builder{name: name}
}

func (b *builder) addRow(line string) {
	b.rows = append(b.rows, []byte(line))
}

// build converts the accumulated raw rows into a level.Level, stripping the
// dynamic player/crate symbols out of the static grid.
func (b *builder) build() (*level.Level, error) {
	lvl := &level.Level{Name: b.name}
	lvl.Height = len(b.rows)
	lvl.Grid = make([][]level.Cell, len(b.rows))

	for row, raw := range b.rows {
		lvl.Grid[row] = make([]level.Cell, len(raw))
		if len(raw) > lvl.Width {
			lvl.Width = len(raw)
		}
		for col, ch := range raw {
			p := geom.Pos{Row: row, Col: col}
			cell, hasPlayer, hasCrate, err := classify(ch)
			if err != nil {
				return nil, fmt.Errorf("level %q: %w", b.name, err)
			}
			lvl.Grid[row][col] = cell
			if hasPlayer {
				if lvl.HasPlayer {
					return nil, fmt.Errorf("level %q: more than one player", b.name)
				}
				lvl.HasPlayer = true
				lvl.InitialPlayer = p
			}
			if hasCrate {
				lvl.InitialCrates = append(lvl.InitialCrates, p)
			}
			if cell == level.Goal {
				lvl.Goals = append(lvl.Goals, p)
			}
		}
	}
	return lvl, nil
}

// classify maps one input symbol to its static cell kind plus whether it
// also carries a player or a crate:
//
//	'#' wall, ' ' floor, '.' goal, '@' player, '$' crate,
//	'+' player-on-goal, '*' crate-on-goal
func classify(ch byte) (cell level.Cell, hasPlayer, hasCrate bool, err error) {
	switch ch {
	case '#':
		return level.Wall, false, false, nil
	case ' ':
		return level.Floor, false, false, nil
	case '.':
		return level.Goal, false, false, nil
	case '@':
		return level.Floor, true, false, nil
	case '$':
		return level.Floor, false, true, nil
	case '+':
		return level.Goal, true, false, nil
	case '*':
		return level.Goal, false, true, nil
	default:
		return 0, false, false, fmt.Errorf("invalid level character %q", ch)
	}
}
