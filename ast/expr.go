package ast

import (
	"strings"

	"ftcc/report"
)

// Expr is the abstract interface for all expression nodes.
type Expr interface {
	Node

	// DialectString renders the expression back in its original dialect
	// form.  This is used to preserve unsupported constructs as comments in
	// the emitted output.
	DialectString() string
}

// -----------------------------------------------------------------------------

// LitKind distinguishes the kinds of literal values.
type LitKind int

const (
	LitNumber LitKind = iota
	LitString
	LitBool
)

// Literal represents a number, string, or boolean literal.
type Literal struct {
	NodeBase

	// The kind of the literal.
	Kind LitKind

	// The literal text.  String literals store their unquoted content;
	// boolean literals store `True` or `False`.
	Value string
}

func (lit *Literal) DialectString() string {
	if lit.Kind == LitString {
		return `"` + lit.Value + `"`
	}

	return lit.Value
}

// Identifier represents a bare name reference.
type Identifier struct {
	NodeBase

	// The referenced name.
	Name string
}

func (id *Identifier) DialectString() string {
	return id.Name
}

// AttrAccess represents an attribute access of the form `base.attr`.
type AttrAccess struct {
	NodeBase

	// The expression whose attribute is accessed.
	Base Expr

	// The accessed attribute name.
	Attr string

	// The span of the attribute name token.
	AttrSpan *report.TextSpan
}

func (aa *AttrAccess) DialectString() string {
	return aa.Base.DialectString() + "." + aa.Attr
}

// Call represents a call expression.
type Call struct {
	NodeBase

	// The called expression: an Identifier or AttrAccess.
	Func Expr

	// The call arguments in source order.
	Args []Expr
}

func (c *Call) DialectString() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.DialectString()
	}

	return c.Func.DialectString() + "(" + strings.Join(args, ", ") + ")"
}

// BinaryOp represents a binary operator application.  The operator is
// stored as its dialect spelling (`+`, `==`, `and`, ...).
type BinaryOp struct {
	NodeBase

	// The dialect spelling of the operator.
	Op string

	// The operands.
	Lhs, Rhs Expr
}

func (bo *BinaryOp) DialectString() string {
	return bo.Lhs.DialectString() + " " + bo.Op + " " + bo.Rhs.DialectString()
}

// UnaryOp represents a unary operator application: negation or `not`.
type UnaryOp struct {
	NodeBase

	// The dialect spelling of the operator (`-` or `not`).
	Op string

	// The operand.
	Operand Expr
}

func (uo *UnaryOp) DialectString() string {
	if uo.Op == "not" {
		return "not " + uo.Operand.DialectString()
	}

	return uo.Op + uo.Operand.DialectString()
}
