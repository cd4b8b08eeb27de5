package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuda/algofr/ast"
	"github.com/gosuda/algofr/parser"
)

func main() {
	tokens := flag.Bool("tokens", false, "dump tokens before the tree")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: debug_ast [-tokens] <file.algo>")
		os.Exit(2)
	}
	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	toks, err := parser.Tokenize(string(b))
	if err != nil {
		panic(err)
	}
	if *tokens {
		for _, t := range toks {
			fmt.Printf("%d:%d %s\n", t.Line, t.Column, t)
		}
		fmt.Println()
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		panic(err)
	}
	dumpBlock(os.Stdout, prog.Statements, 0)
}

func dumpBlock(w io.Writer, stmts []ast.Statement, depth int) {
	for _, st := range stmts {
		dumpStmt(w, st, depth)
	}
}

func dumpStmt(w io.Writer, st ast.Statement, depth int) {
	pad := strings.Repeat("  ", depth)
	switch s := st.(type) {
	case ast.AssignStmt:
		fmt.Fprintf(w, "%sL%d Assign %s = %s\n", pad, s.Line, s.Name, expr(s.Expr))
	case ast.WriteStmt:
		fmt.Fprintf(w, "%sL%d Write %s\n", pad, s.Line, expr(s.Expr))
	case ast.ReadStmt:
		fmt.Fprintf(w, "%sL%d Read %s\n", pad, s.Line, s.Name)
	case ast.IfStmt:
		fmt.Fprintf(w, "%sL%d If %s\n", pad, s.Line, expr(s.Cond))
		dumpBlock(w, s.Then, depth+1)
		if s.HasElse {
			fmt.Fprintf(w, "%sElse\n", pad)
			dumpBlock(w, s.Else, depth+1)
		}
	case ast.WhileStmt:
		fmt.Fprintf(w, "%sL%d While %s\n", pad, s.Line, expr(s.Cond))
		dumpBlock(w, s.Body, depth+1)
	case ast.ForStmt:
		fmt.Fprintf(w, "%sL%d For %s from %s to %s\n", pad, s.Line, s.Var, expr(s.Start), expr(s.End))
		dumpBlock(w, s.Body, depth+1)
	default:
		fmt.Fprintf(w, "%s%T\n", pad, st)
	}
}

func expr(e ast.Expr) string {
	switch x := e.(type) {
	case ast.NumberLit:
		return fmt.Sprint(x.Value)
	case ast.StringLit:
		return fmt.Sprintf("%q", x.Value)
	case ast.Ident:
		return x.Name
	case ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", expr(x.Left), x.Op, expr(x.Right))
	default:
		return fmt.Sprintf("%T", e)
	}
}
