package ast

import "ftcc/report"

// OpModeKind distinguishes the two kinds of annotated robot classes.
type OpModeKind int

const (
	OpModeTeleOp OpModeKind = iota
	OpModeAutonomous
)

// Annotation returns the target framework annotation name for the kind.
func (k OpModeKind) Annotation() string {
	if k == OpModeAutonomous {
		return "Autonomous"
	}

	return "TeleOp"
}

// OpModeDecl is the compile-time tag attached to a robot class by its
// `teleop` or `autonomous` decorator.  It is immutable after parsing and is
// consumed once by the emitter to produce the class header.
type OpModeDecl struct {
	// The kind of op mode being declared.
	Kind OpModeKind

	// The display name of the op mode on the driver station.
	DisplayName string

	// The op mode group.
	Group string

	// The span of the decorator.
	Span *report.TextSpan
}

// ClassDef represents a single decorated robot class.  Exactly one class is
// permitted per source file.
type ClassDef struct {
	NodeBase

	// The class name.  This becomes the emitted Java class name.
	Name string

	// The op mode declaration attached to the class.
	OpMode *OpModeDecl

	// The methods of the class in source order.
	Methods []*MethodDef
}

// MethodDef represents a single method of a robot class.  The names
// `init_hardware` and `run` are recognized roles; every other method is
// carried through as a generic private routine.
type MethodDef struct {
	NodeBase

	// The method name.
	Name string

	// The span of the method name token.
	NameSpan *report.TextSpan

	// The parameter names in declared order, excluding `self`.
	Params []string

	// The method body in source order.
	Body []Stmt
}
