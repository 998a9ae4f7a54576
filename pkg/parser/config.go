// Package parser implements the grammar engine: a PEG-style,
// backtracking, packrat-memoised recursive-descent recogniser that
// turns Cypher source into the ast package's typed node tree, or
// reports diagnostics via perrors.
package parser

import (
	"github.com/orneryd/ocypher/internal/cyplog"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/position"
)

// Flags is the parse-flags bitset.
type Flags uint8

const (
	Default        Flags = 0
	Single         Flags = 1 << 0 // stop after first top-level element
	OnlyStatements Flags = 1 << 1 // entry rule is `statement`, not `directive`
	OnlyParameters Flags = 1 << 2 // parse only leading CYPHER option; rest is one STRING body
)

// Config carries the options recognised by the engine.
type Config struct {
	InitialPosition   position.Position
	InitialOrdinal    uint
	ErrorColorization perrors.ColorScheme
	Logger            *cyplog.Logger
}

// DefaultConfig returns the documented defaults: origin position,
// ordinal zero, plain colorization.
func DefaultConfig() Config {
	return Config{
		InitialPosition:   position.Origin,
		InitialOrdinal:    0,
		ErrorColorization: perrors.Plain,
		Logger:            cyplog.New("parser"),
	}
}
