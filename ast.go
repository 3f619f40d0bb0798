package main

// An Expr is a node of the syntax tree for one input line.
// Nodes are always pointers and every child belongs to exactly one parent.
type Expr interface {
	exprNode()
}

type WholeExpr struct {
	Value uint64
}

type StrExpr struct {
	Value string
}

type VarExpr struct {
	Name string
}

// CmdExpr runs the executable Name with the values of Args.
type CmdExpr struct {
	Name string
	Args []Expr
}

type BinExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

type LetExpr struct {
	Var string
	Val Expr
}

func (*WholeExpr) exprNode() {}
func (*StrExpr) exprNode()   {}
func (*VarExpr) exprNode()   {}
func (*CmdExpr) exprNode()   {}
func (*BinExpr) exprNode()   {}
func (*IfExpr) exprNode()    {}
func (*LetExpr) exprNode()   {}
