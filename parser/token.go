package parser

import "fmt"

type Kind int

const (
	EOF Kind = iota
	NEWLINE

	NUMBER
	STRING
	IDENTIFIER

	DEBUT
	FIN
	SI
	ALORS
	SINON
	FINSI
	TANTQUE
	FINTANTQUE
	POUR
	FINPOUR
	ECRIRE
	LIRE
	ET
	OU

	ASSIGN
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	GT
	LT
	EQ
	GTE
	LTE
)

var kindNames = [...]string{
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	IDENTIFIER: "IDENTIFIER",
	DEBUT:      "DEBUT",
	FIN:        "FIN",
	SI:         "SI",
	ALORS:      "ALORS",
	SINON:      "SINON",
	FINSI:      "FINSI",
	TANTQUE:    "TANTQUE",
	FINTANTQUE: "FINTANTQUE",
	POUR:       "POUR",
	FINPOUR:    "FINPOUR",
	ECRIRE:     "ECRIRE",
	LIRE:       "LIRE",
	ET:         "ET",
	OU:         "OU",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MULTIPLY:   "MULTIPLY",
	DIVIDE:     "DIVIDE",
	GT:         "GT",
	LT:         "LT",
	EQ:         "EQ",
	GTE:        "GTE",
	LTE:        "LTE",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords is case-sensitive. Ecrire is accepted without the accent.
var keywords = map[string]Kind{
	"Début":      DEBUT,
	"Fin":        FIN,
	"Si":         SI,
	"Alors":      ALORS,
	"Sinon":      SINON,
	"FinSi":      FINSI,
	"TantQue":    TANTQUE,
	"FinTantQue": FINTANTQUE,
	"Pour":       POUR,
	"FinPour":    FINPOUR,
	"Écrire":     ECRIRE,
	"Ecrire":     ECRIRE,
	"Lire":       LIRE,
	"ET":         ET,
	"OU":         OU,
}

// KeywordCount reports the number of distinct keyword kinds.
func KeywordCount() int {
	seen := map[Kind]struct{}{}
	for _, k := range keywords {
		seen[k] = struct{}{}
	}
	return len(seen)
}

type Token struct {
	Kind   Kind
	Lit    string
	Num    float64
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF, NEWLINE:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lit)
	}
}
