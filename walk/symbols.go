package walk

import (
	"ftcc/ast"
	"ftcc/ftcapi"
	"ftcc/report"
)

// HardwareSymbol records one hardware component declared inside
// `init_hardware`.  Symbols live for the translation of one class and are
// discarded after emission.
type HardwareSymbol struct {
	// The local name of the component: the `X` of `self.X = ...`.
	Name string

	// The hardware kind mapped from the constructor name.
	Kind ftcapi.Kind

	// The hardware map configuration name.  Defaults to the local name
	// when the constructor has no string argument.
	ConfigName string

	// The declared motor direction literal, or the empty string.
	Direction string

	// The constructor arguments as parsed.  Vision portal declarations use
	// these to wire their camera and processors during initialization.
	CtorArgs []ast.Expr

	// The span of the declaring assignment.
	DefSpan *report.TextSpan

	// The declaring assignment rendered back in dialect form.  Used to
	// preserve declarations that cannot be translated as comments.
	Decl string
}

// SymbolTable is the name -> hardware component table for one robot class.
// It preserves declaration order and is read-only once `init_hardware`
// scanning completes: later methods consult but never extend it.
type SymbolTable struct {
	syms  map[string]*HardwareSymbol
	order []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: make(map[string]*HardwareSymbol)}
}

// Define records a new hardware symbol.  It returns false if a symbol with
// the same name is already defined, in which case the first declaration
// wins.
func (st *SymbolTable) Define(sym *HardwareSymbol) bool {
	if _, ok := st.syms[sym.Name]; ok {
		return false
	}

	st.syms[sym.Name] = sym
	st.order = append(st.order, sym.Name)
	return true
}

// Lookup returns the hardware symbol with the given local name.
func (st *SymbolTable) Lookup(name string) (*HardwareSymbol, bool) {
	sym, ok := st.syms[name]
	return sym, ok
}

// InOrder returns all symbols in declaration order.
func (st *SymbolTable) InOrder() []*HardwareSymbol {
	syms := make([]*HardwareSymbol, len(st.order))
	for i, name := range st.order {
		syms[i] = st.syms[name]
	}

	return syms
}

// Len returns the number of declared symbols.
func (st *SymbolTable) Len() int {
	return len(st.order)
}
