package ast

// Operator identifies one entry of the fixed Cypher operator table.
// Values carry precedence for the grammar's precedence climb and a
// printable form for rendering.
type Operator uint8

const (
	OpInvalid Operator = iota
	OpOr
	OpXor
	OpAnd
	OpNot
	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
	OpPlus
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpPow
	OpUnaryPlus
	OpUnaryMinus
	OpSubscript
	OpRegex
	OpIn
	OpStartsWith
	OpEndsWith
	OpContains
	OpIsNull
	OpIsNotNull
	OpProperty
	OpLabel
)

// OperatorInfo describes one operator's fixed precedence, associativity
// and printable form.
type OperatorInfo struct {
	Symbol       string
	Precedence   int // higher binds tighter
	RightAssoc   bool
	postfixUnary bool // IS NULL / IS NOT NULL
	prefixUnary  bool // NOT, unary +/-
}

// higher number binds tighter; mirrors the classic Cypher precedence
// table (OR < XOR < AND < NOT < comparisons < +- < */% < ^ < unary < postfix).
var operatorTable = map[Operator]OperatorInfo{
	OpOr:           {Symbol: "OR", Precedence: 1},
	OpXor:          {Symbol: "XOR", Precedence: 2},
	OpAnd:          {Symbol: "AND", Precedence: 3},
	OpNot:          {Symbol: "NOT", Precedence: 4, prefixUnary: true},
	OpEqual:        {Symbol: "=", Precedence: 5},
	OpNotEqual:     {Symbol: "<>", Precedence: 5},
	OpLess:         {Symbol: "<", Precedence: 5},
	OpGreater:      {Symbol: ">", Precedence: 5},
	OpLessEqual:    {Symbol: "<=", Precedence: 5},
	OpGreaterEqual: {Symbol: ">=", Precedence: 5},
	OpRegex:        {Symbol: "=~", Precedence: 5},
	OpIn:           {Symbol: "IN", Precedence: 5},
	OpStartsWith:   {Symbol: "STARTS WITH", Precedence: 5},
	OpEndsWith:     {Symbol: "ENDS WITH", Precedence: 5},
	OpContains:     {Symbol: "CONTAINS", Precedence: 5},
	OpIsNull:       {Symbol: "IS NULL", Precedence: 5, postfixUnary: true},
	OpIsNotNull:    {Symbol: "IS NOT NULL", Precedence: 5, postfixUnary: true},
	OpPlus:         {Symbol: "+", Precedence: 6},
	OpMinus:        {Symbol: "-", Precedence: 6},
	OpMult:         {Symbol: "*", Precedence: 7},
	OpDiv:          {Symbol: "/", Precedence: 7},
	OpMod:          {Symbol: "%", Precedence: 7},
	OpPow:          {Symbol: "^", Precedence: 8, RightAssoc: true},
	OpUnaryPlus:    {Symbol: "+", Precedence: 9, prefixUnary: true},
	OpUnaryMinus:   {Symbol: "-", Precedence: 9, prefixUnary: true},
	OpSubscript:    {Symbol: "[]", Precedence: 10},
	OpProperty:     {Symbol: ".", Precedence: 10},
	OpLabel:        {Symbol: ":", Precedence: 10},
}

// Info returns the fixed metadata for op. The zero value is returned
// (with an empty Symbol) for an unknown operator.
func (op Operator) Info() OperatorInfo { return operatorTable[op] }

func (op Operator) String() string { return operatorTable[op].Symbol }

// Precedence returns op's binding strength; higher binds tighter.
func (op Operator) Precedence() int { return operatorTable[op].Precedence }
