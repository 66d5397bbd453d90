// Package ast defines the abstract syntax tree produced by the parser.
// Nodes are pure data: the parser allocates them, the caller owns them,
// and nothing in this module mutates a tree after it is returned.
package ast

import (
	"fmt"
	"strings"
)

// Statement is a parsed SQL statement. The concrete type is one of
// *SelectStatement and *CreateTableStatement.
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// Expression is a node of an expression tree. The concrete type is one of
// *Identifier, *NumberLiteral, *StringLiteral, *BoolLiteral,
// *UnaryOperation and *BinaryOperation. Each node exclusively owns its
// children; trees are finite and acyclic.
type Expression interface {
	fmt.Stringer
	exprNode()
}

// Operator identifies a unary or binary operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpAnd
	OpOr
	OpNot
	OpNeg // unary minus
	OpPos // unary plus
	OpAsc
	OpDesc
)

var operatorString = [...]string{
	OpAdd:            "+",
	OpSub:            "-",
	OpMul:            "*",
	OpDiv:            "/",
	OpEqual:          "=",
	OpNotEqual:       "<>",
	OpLessThan:       "<",
	OpLessOrEqual:    "<=",
	OpGreaterThan:    ">",
	OpGreaterOrEqual: ">=",
	OpAnd:            "AND",
	OpOr:             "OR",
	OpNot:            "NOT",
	OpNeg:            "-",
	OpPos:            "+",
	OpAsc:            "ASC",
	OpDesc:           "DESC",
}

func (op Operator) String() string {
	if int(op) < len(operatorString) {
		return operatorString[op]
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Identifier references a column or table by name.
type Identifier struct {
	Name string
}

// NumberLiteral is an integer literal.
type NumberLiteral struct {
	Value uint64
}

// StringLiteral is a quoted string literal. Value holds the content
// without the quotes.
type StringLiteral struct {
	Value string
}

// BoolLiteral is a TRUE or FALSE literal.
type BoolLiteral struct {
	Value bool
}

// UnaryOperation applies an operator to one operand. Besides NOT and the
// sign operators, it also represents an ORDER BY item tagged with its
// sort direction (operator ASC or DESC).
type UnaryOperation struct {
	Op      Operator
	Operand Expression
}

// BinaryOperation applies an operator to two operands.
type BinaryOperation struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (*Identifier) exprNode()      {}
func (*NumberLiteral) exprNode()   {}
func (*StringLiteral) exprNode()   {}
func (*BoolLiteral) exprNode()     {}
func (*UnaryOperation) exprNode()  {}
func (*BinaryOperation) exprNode() {}

func (e *Identifier) String() string    { return e.Name }
func (e *NumberLiteral) String() string { return fmt.Sprintf("%d", e.Value) }
func (e *StringLiteral) String() string { return "'" + e.Value + "'" }

func (e *BoolLiteral) String() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (e *UnaryOperation) String() string {
	switch e.Op {
	case OpAsc, OpDesc:
		return e.Operand.String() + " " + e.Op.String()
	case OpNot:
		return "(NOT " + e.Operand.String() + ")"
	default:
		return e.Op.String() + e.Operand.String()
	}
}

func (e *BinaryOperation) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// SelectStatement represents a SELECT statement. Where is nil when the
// statement has no WHERE clause; each OrderBy item is a *UnaryOperation
// whose operator is OpAsc or OpDesc.
type SelectStatement struct {
	Columns []Expression
	From    string
	Where   Expression
	OrderBy []Expression
}

func (*SelectStatement) stmtNode() {}

func (s *SelectStatement) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, c := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(" FROM ")
	sb.WriteString(s.From)
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Where.String())
	}
	if len(s.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range s.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.String())
		}
	}
	sb.WriteByte(';')
	return sb.String()
}

// TypeKind identifies a declared column type.
type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeBool
	TypeText
	TypeVarchar
)

// ColumnType is a declared column type; Length is meaningful for
// TypeVarchar only.
type ColumnType struct {
	Kind   TypeKind
	Length uint64
}

func (t ColumnType) String() string {
	switch t.Kind {
	case TypeInt:
		return "INT"
	case TypeBool:
		return "BOOL"
	case TypeText:
		return "TEXT"
	case TypeVarchar:
		return fmt.Sprintf("VARCHAR(%d)", t.Length)
	}
	return fmt.Sprintf("type(%d)", int(t.Kind))
}

// ConstraintKind identifies a column constraint.
type ConstraintKind int

const (
	PrimaryKey ConstraintKind = iota
	NotNull
	Unique
	Default
	Check
)

// Constraint is one column constraint. Value holds the DEFAULT literal or
// the CHECK expression and is nil for the other kinds.
type Constraint struct {
	Kind  ConstraintKind
	Value Expression
}

func (c Constraint) String() string {
	switch c.Kind {
	case PrimaryKey:
		return "PRIMARY KEY"
	case NotNull:
		return "NOT NULL"
	case Unique:
		return "UNIQUE"
	case Default:
		return "DEFAULT " + c.Value.String()
	case Check:
		return "CHECK (" + c.Value.String() + ")"
	}
	return fmt.Sprintf("constraint(%d)", int(c.Kind))
}

// ColumnDefinition is one column of a CREATE TABLE statement.
type ColumnDefinition struct {
	Name        string
	Type        ColumnType
	Constraints []Constraint
}

func (c ColumnDefinition) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte(' ')
	sb.WriteString(c.Type.String())
	for _, ct := range c.Constraints {
		sb.WriteByte(' ')
		sb.WriteString(ct.String())
	}
	return sb.String()
}

// CreateTableStatement represents a CREATE TABLE statement.
type CreateTableStatement struct {
	Name    string
	Columns []ColumnDefinition
}

func (*CreateTableStatement) stmtNode() {}

func (s *CreateTableStatement) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(s.Name)
	sb.WriteString(" (")
	for i, c := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(");")
	return sb.String()
}
