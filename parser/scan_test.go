package parser

import (
	"errors"
	"strings"
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func sameKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeKeywordsOperatorsAndPositions(t *testing.T) {
	src := "Début\n  x ← 3.5 >= 2\nÉcrire \"a\" + x\nEcrire x <= 1 ET x > 0 OU x < 9\nFin"
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	want := []Kind{
		DEBUT, NEWLINE,
		IDENTIFIER, ASSIGN, NUMBER, GTE, NUMBER, NEWLINE,
		ECRIRE, STRING, PLUS, IDENTIFIER, NEWLINE,
		ECRIRE, IDENTIFIER, LTE, NUMBER, ET, IDENTIFIER, GT, NUMBER, OU, IDENTIFIER, LT, NUMBER, NEWLINE,
		FIN, EOF,
	}
	if got := kinds(tokens); !sameKinds(got, want) {
		t.Fatalf("unexpected kinds:\n got %v\nwant %v", got, want)
	}
	x := tokens[2]
	if x.Line != 2 || x.Column != 3 || x.Lit != "x" {
		t.Fatalf("unexpected identifier token: %+v", x)
	}
	if tokens[4].Num != 3.5 {
		t.Fatalf("unexpected number: %+v", tokens[4])
	}
	if last := tokens[len(tokens)-1]; last.Line != 5 {
		t.Fatalf("EOF should be on the last line, got %d", last.Line)
	}
}

func TestTokenizeNumberStopsAtSecondDot(t *testing.T) {
	tokens, err := Tokenize("1.2.3")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	// the second dot is an unknown character and is skipped
	if got := kinds(tokens); !sameKinds(got, []Kind{NUMBER, NUMBER, EOF}) {
		t.Fatalf("unexpected kinds: %v", got)
	}
	if tokens[0].Lit != "1.2" || tokens[1].Lit != "3" {
		t.Fatalf("unexpected literals: %q %q", tokens[0].Lit, tokens[1].Lit)
	}
}

func TestTokenizeStrings(t *testing.T) {
	tokens, err := Tokenize(`"il dit \"oui\"" 'l\'ami "x"'`)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if tokens[0].Lit != `il dit "oui"` {
		t.Fatalf("unexpected first string: %q", tokens[0].Lit)
	}
	if tokens[1].Lit != `l'ami "x"` {
		t.Fatalf("unexpected second string: %q", tokens[1].Lit)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("Début\nÉcrire \"abc\nFin")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if lexErr.Line != 2 {
		t.Fatalf("expected opening line 2, got %d", lexErr.Line)
	}
	if want := "ligne 2"; !strings.Contains(err.Error(), want) {
		t.Fatalf("message %q should contain %q", err.Error(), want)
	}
}

func TestTokenizeSkipsUnknownCharacters(t *testing.T) {
	tokens, err := Tokenize("a ; # @ b_2 éte")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if got := kinds(tokens); !sameKinds(got, []Kind{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF}) {
		t.Fatalf("unexpected kinds: %v", got)
	}
	if tokens[1].Lit != "b_2" || tokens[2].Lit != "éte" {
		t.Fatalf("unexpected identifiers: %v", tokens)
	}
}

func TestTokenizeUnicodeComparisons(t *testing.T) {
	tokens, err := Tokenize("1 ≤ 2 ≥ 3")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if got := kinds(tokens); !sameKinds(got, []Kind{NUMBER, LTE, NUMBER, GTE, NUMBER, EOF}) {
		t.Fatalf("unexpected kinds: %v", got)
	}
}

func TestKeywordTable(t *testing.T) {
	if KeywordCount() != 14 {
		t.Fatalf("expected 14 keyword kinds, got %d", KeywordCount())
	}
	for _, word := range []string{"debut", "fin", "si", "Et", "lire"} {
		tokens, err := Tokenize(word)
		if err != nil {
			t.Fatalf("tokenize failed: %v", err)
		}
		if tokens[0].Kind != IDENTIFIER {
			t.Fatalf("%q should be an identifier, keywords are case-sensitive", word)
		}
	}
}

