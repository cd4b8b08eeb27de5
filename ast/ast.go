package ast

// Op is a binary operator of the expression grammar.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpGT  Op = ">"
	OpLT  Op = "<"
	OpEQ  Op = "="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpAnd Op = "ET"
	OpOr  Op = "OU"
)

type Program struct {
	Statements []Statement
}

type Statement interface {
	isStatement()
	StmtLine() int
}

type AssignStmt struct {
	Name string
	Expr Expr
	Line int
}

func (AssignStmt) isStatement() {}
func (s AssignStmt) StmtLine() int { return s.Line }

type WriteStmt struct {
	Expr Expr
	Line int
}

func (WriteStmt) isStatement() {}
func (s WriteStmt) StmtLine() int { return s.Line }

type ReadStmt struct {
	Name string
	Line int
}

func (ReadStmt) isStatement() {}
func (s ReadStmt) StmtLine() int { return s.Line }

type IfStmt struct {
	Cond    Expr
	Then    []Statement
	Else    []Statement
	HasElse bool
	Line    int
}

func (IfStmt) isStatement() {}
func (s IfStmt) StmtLine() int { return s.Line }

type WhileStmt struct {
	Cond Expr
	Body []Statement
	Line int
}

func (WhileStmt) isStatement() {}
func (s WhileStmt) StmtLine() int { return s.Line }

// ForStmt always iterates upward; the comparison written between the bounds
// is not kept.
type ForStmt struct {
	Var   string
	Start Expr
	End   Expr
	Body  []Statement
	Line  int
}

func (ForStmt) isStatement() {}
func (s ForStmt) StmtLine() int { return s.Line }

type Expr interface {
	isExpr()
}

type NumberLit struct {
	Value float64
}

func (NumberLit) isExpr() {}

type StringLit struct {
	Value string
}

func (StringLit) isExpr() {}

type Ident struct {
	Name string
	Line int
}

func (Ident) isExpr() {}

type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
	Line  int
}

func (BinaryExpr) isExpr() {}
