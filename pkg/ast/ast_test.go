package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionString(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		expr Expression
		want string
	}{
		{&Identifier{Name: "id"}, "id"},
		{&NumberLiteral{Value: 10}, "10"},
		{&StringLiteral{Value: "abc"}, "'abc'"},
		{&BoolLiteral{Value: true}, "TRUE"},
		{&BoolLiteral{Value: false}, "FALSE"},
		{&UnaryOperation{Op: OpNeg, Operand: &NumberLiteral{Value: 1}}, "-1"},
		{&UnaryOperation{Op: OpNot, Operand: &Identifier{Name: "a"}}, "(NOT a)"},
		{&UnaryOperation{Op: OpAsc, Operand: &Identifier{Name: "a"}}, "a ASC"},
		{&UnaryOperation{Op: OpDesc, Operand: &Identifier{Name: "a"}}, "a DESC"},
		{
			&BinaryOperation{
				Op:    OpMul,
				Left:  &BinaryOperation{Op: OpAdd, Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}},
				Right: &Identifier{Name: "c"},
			},
			"((a + b) * c)",
		},
	}

	for _, c := range cases {
		assert.Equal(c.want, c.expr.String())
	}
}

func TestSelectStatementString(t *testing.T) {
	stmt := &SelectStatement{
		Columns: []Expression{&Identifier{Name: "id"}, &Identifier{Name: "name"}},
		From:    "users",
		Where: &BinaryOperation{
			Op:    OpGreaterThan,
			Left:  &Identifier{Name: "id"},
			Right: &NumberLiteral{Value: 10},
		},
		OrderBy: []Expression{
			&UnaryOperation{Op: OpAsc, Operand: &Identifier{Name: "name"}},
		},
	}

	want := "SELECT id, name FROM users WHERE (id > 10) ORDER BY name ASC;"
	assert.Equal(t, want, stmt.String())

	stmt = &SelectStatement{
		Columns: []Expression{&Identifier{Name: "a"}},
		From:    "t",
	}
	assert.Equal(t, "SELECT a FROM t;", stmt.String())
}

func TestCreateTableStatementString(t *testing.T) {
	stmt := &CreateTableStatement{
		Name: "t",
		Columns: []ColumnDefinition{
			{
				Name:        "id",
				Type:        ColumnType{Kind: TypeInt},
				Constraints: []Constraint{{Kind: PrimaryKey}},
			},
			{
				Name: "name",
				Type: ColumnType{Kind: TypeVarchar, Length: 255},
				Constraints: []Constraint{
					{Kind: NotNull},
					{Kind: Unique},
					{Kind: Default, Value: &StringLiteral{Value: "n/a"}},
				},
			},
			{
				Name: "score",
				Type: ColumnType{Kind: TypeInt},
				Constraints: []Constraint{
					{Kind: Check, Value: &BinaryOperation{
						Op:    OpGreaterOrEqual,
						Left:  &Identifier{Name: "score"},
						Right: &NumberLiteral{Value: 0},
					}},
				},
			},
		},
	}

	want := "CREATE TABLE t (id INT PRIMARY KEY, " +
		"name VARCHAR(255) NOT NULL UNIQUE DEFAULT 'n/a', " +
		"score INT CHECK ((score >= 0)));"
	assert.Equal(t, want, stmt.String())
}

func TestDumpSelect(t *testing.T) {
	stmt := &SelectStatement{
		Columns: []Expression{&Identifier{Name: "id"}, &Identifier{Name: "name"}},
		From:    "users",
		Where: &BinaryOperation{
			Op:    OpGreaterThan,
			Left:  &Identifier{Name: "id"},
			Right: &NumberLiteral{Value: 10},
		},
		OrderBy: []Expression{
			&UnaryOperation{Op: OpAsc, Operand: &Identifier{Name: "name"}},
		},
	}

	want := `Select {
    columns: [
        Identifier(id),
        Identifier(name),
    ]
    from: users
    where: BinaryOperation(>, Identifier(id), Number(10))
    orderby: [
        UnaryOperation(ASC, Identifier(name)),
    ]
}`
	assert.Equal(t, want, Dump(stmt))
}

func TestDumpCreateTable(t *testing.T) {
	stmt := &CreateTableStatement{
		Name: "t",
		Columns: []ColumnDefinition{
			{Name: "id", Type: ColumnType{Kind: TypeInt}, Constraints: []Constraint{{Kind: PrimaryKey}}},
			{Name: "name", Type: ColumnType{Kind: TypeText}},
		},
	}

	want := `CreateTable {
    name: t
    columns: [
        id INT PRIMARY KEY,
        name TEXT,
    ]
}`
	assert.Equal(t, want, Dump(stmt))
}
