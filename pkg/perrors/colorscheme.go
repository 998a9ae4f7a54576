package perrors

// ColorRole names one of the 9 colorizable roles shared by error
// rendering and the AST renderer.
type ColorRole int

const (
	RoleNormal ColorRole = iota
	RoleError
	RoleErrorToken
	RoleErrorMessage
	RoleASTOrdinal
	RoleASTRange
	RoleASTIndent
	RoleASTType
	RoleASTDesc
	roleCount
)

// colorPair is an (open, close) byte-sequence pair wrapped around text
// rendered in a given role.
type colorPair struct {
	open, close string
}

// ColorScheme is a record of open/close escape pairs for each
// ColorRole. Two predefined instances exist: Plain (all empty) and
// ANSI (terminal escapes).
type ColorScheme struct {
	pairs [roleCount]colorPair
}

// Wrap surrounds s with the open/close escapes configured for role.
func (c ColorScheme) Wrap(role ColorRole, s string) string {
	p := c.pairs[role]
	return p.open + s + p.close
}

// Plain is the default, no-op color scheme.
var Plain = ColorScheme{}

// ANSI is the predefined terminal color scheme: errors in bold red,
// AST structural columns dimmed, the kind name in bold.
var ANSI = ColorScheme{pairs: [roleCount]colorPair{
	RoleNormal:       {"", ""},
	RoleError:        {"\x1b[1;31m", "\x1b[0m"},
	RoleErrorToken:   {"\x1b[1;33m", "\x1b[0m"},
	RoleErrorMessage: {"\x1b[31m", "\x1b[0m"},
	RoleASTOrdinal:   {"\x1b[2m", "\x1b[0m"},
	RoleASTRange:     {"\x1b[2m", "\x1b[0m"},
	RoleASTIndent:    {"\x1b[2m", "\x1b[0m"},
	RoleASTType:      {"\x1b[1m", "\x1b[0m"},
	RoleASTDesc:      {"", ""},
}}

// SchemeByName resolves the OCYPHER_COLOR env var values "ansi" and
// "plain" to a ColorScheme, defaulting to Plain.
func SchemeByName(name string) ColorScheme {
	if name == "ansi" {
		return ANSI
	}
	return Plain
}
