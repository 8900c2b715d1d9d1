// Package ast defines the syntax tree for the restricted robot dialect.
// Each tree exclusively owns its children: nodes are never shared between
// trees and carry no back references.
package ast

import "ftcc/report"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Span returns the text span of the node.
	Span() *report.TextSpan
}

// NodeBase is a utility base struct for all AST nodes.
type NodeBase struct {
	// The span over which the node occurs.
	span *report.TextSpan
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb NodeBase) Span() *report.TextSpan {
	return nb.span
}
