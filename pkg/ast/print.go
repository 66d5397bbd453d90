package ast

import (
	"fmt"
	"strings"
)

// Dump renders a statement as an indented tree for display, one field per
// line. Expressions are rendered in their compact node form, e.g.
// BinaryOperation(>, Identifier(id), Number(10)).
func Dump(stmt Statement) string {
	var sb strings.Builder
	switch s := stmt.(type) {
	case *SelectStatement:
		sb.WriteString("Select {\n")
		dumpExprList(&sb, "columns", s.Columns)
		fmt.Fprintf(&sb, "    from: %s\n", s.From)
		if s.Where != nil {
			fmt.Fprintf(&sb, "    where: %s\n", ExprNode(s.Where))
		}
		if len(s.OrderBy) > 0 {
			dumpExprList(&sb, "orderby", s.OrderBy)
		}
		sb.WriteString("}")

	case *CreateTableStatement:
		sb.WriteString("CreateTable {\n")
		fmt.Fprintf(&sb, "    name: %s\n", s.Name)
		sb.WriteString("    columns: [\n")
		for _, c := range s.Columns {
			fmt.Fprintf(&sb, "        %s,\n", c)
		}
		sb.WriteString("    ]\n}")

	default:
		fmt.Fprintf(&sb, "%v", stmt)
	}
	return sb.String()
}

func dumpExprList(sb *strings.Builder, field string, exprs []Expression) {
	fmt.Fprintf(sb, "    %s: [\n", field)
	for _, e := range exprs {
		fmt.Fprintf(sb, "        %s,\n", ExprNode(e))
	}
	sb.WriteString("    ]\n")
}

// ExprNode renders an expression in its node form, naming the variant of
// each node instead of re-serializing it to SQL.
func ExprNode(e Expression) string {
	switch e := e.(type) {
	case *Identifier:
		return fmt.Sprintf("Identifier(%s)", e.Name)
	case *NumberLiteral:
		return fmt.Sprintf("Number(%d)", e.Value)
	case *StringLiteral:
		return fmt.Sprintf("String(%q)", e.Value)
	case *BoolLiteral:
		return fmt.Sprintf("Bool(%v)", e.Value)
	case *UnaryOperation:
		return fmt.Sprintf("UnaryOperation(%s, %s)", e.Op, ExprNode(e.Operand))
	case *BinaryOperation:
		return fmt.Sprintf("BinaryOperation(%s, %s, %s)", e.Op, ExprNode(e.Left), ExprNode(e.Right))
	}
	return fmt.Sprintf("%v", e)
}
