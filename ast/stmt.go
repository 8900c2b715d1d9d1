package ast

// Stmt is the abstract interface for all statement nodes.
type Stmt interface {
	Node

	// DialectString renders the statement's leading line back in its
	// original dialect form.  This is used by the emitter to preserve
	// unsupported statements as comments.
	DialectString() string
}

// Assignment represents a single assignment statement: either to a `self`
// attribute or to a local variable.
type Assignment struct {
	NodeBase

	// The assignment target: an Identifier or an AttrAccess rooted at
	// `self`.
	Target Expr

	// The assigned value.
	Value Expr
}

func (a *Assignment) DialectString() string {
	return a.Target.DialectString() + " = " + a.Value.DialectString()
}

// CondBranch is one `if` or `elif` arm of a conditional chain.
type CondBranch struct {
	// The branch condition.
	Cond Expr

	// The branch body.
	Body []Stmt
}

// IfStmt represents an if/elif/else chain.
type IfStmt struct {
	NodeBase

	// The conditional branches of the chain in source order.  The first
	// branch is the `if`; the rest are `elif` arms.
	Branches []CondBranch

	// The else body.  Nil if there is no else arm.
	Else []Stmt
}

func (ifs *IfStmt) DialectString() string {
	return "if " + ifs.Branches[0].Cond.DialectString() + ":"
}

// WhileLoop represents a while loop.
type WhileLoop struct {
	NodeBase

	// The loop condition.
	Cond Expr

	// The loop body.
	Body []Stmt
}

func (wl *WhileLoop) DialectString() string {
	return "while " + wl.Cond.DialectString() + ":"
}

// ExprStmt represents a bare expression used as a statement.
type ExprStmt struct {
	NodeBase

	// The contained expression.
	Expr Expr
}

func (es *ExprStmt) DialectString() string {
	return es.Expr.DialectString()
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	NodeBase

	// The returned value.  Nil for a bare `return`.
	Value Expr
}

func (rs *ReturnStmt) DialectString() string {
	if rs.Value == nil {
		return "return"
	}

	return "return " + rs.Value.DialectString()
}

// PassStmt represents a `pass` statement: a no-op.
type PassStmt struct {
	NodeBase
}

func (ps *PassStmt) DialectString() string {
	return "pass"
}
