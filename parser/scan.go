package parser

import (
	"strconv"
	"strings"
)

type scanner struct {
	src    []rune
	pos    int
	line   int
	column int
}

// Tokenize turns source text into tokens. The result always ends with EOF.
// Unknown characters are dropped; only an unterminated string is an error.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{src: []rune(source), line: 1, column: 1}
	return s.scan()
}

func (s *scanner) current() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peek() rune {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) advance() rune {
	r := s.current()
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *scanner) scan() ([]Token, error) {
	tokens := make([]Token, 0, len(s.src)/3+1)
	for !s.atEnd() {
		for !s.atEnd() && isBlank(s.current()) {
			s.advance()
		}
		if s.atEnd() {
			break
		}
		line, col := s.line, s.column
		emit := func(kind Kind, lit string) {
			tokens = append(tokens, Token{Kind: kind, Lit: lit, Line: line, Column: col})
		}

		r := s.current()
		switch {
		case r == '\n':
			s.advance()
			emit(NEWLINE, "\n")
		case isDigit(r):
			lit := s.readNumber()
			n, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				n = 0
			}
			tokens = append(tokens, Token{Kind: NUMBER, Lit: lit, Num: n, Line: line, Column: col})
		case r == '←':
			s.advance()
			emit(ASSIGN, "←")
		case r == '>':
			s.advance()
			if s.current() == '=' {
				s.advance()
				emit(GTE, ">=")
			} else {
				emit(GT, ">")
			}
		case r == '<':
			s.advance()
			if s.current() == '=' {
				s.advance()
				emit(LTE, "<=")
			} else {
				emit(LT, "<")
			}
		case r == '≥':
			s.advance()
			emit(GTE, ">=")
		case r == '≤':
			s.advance()
			emit(LTE, "<=")
		case r == '=':
			s.advance()
			emit(EQ, "=")
		case r == '+':
			s.advance()
			emit(PLUS, "+")
		case r == '-':
			s.advance()
			emit(MINUS, "-")
		case r == '*':
			s.advance()
			emit(MULTIPLY, "*")
		case r == '/':
			s.advance()
			emit(DIVIDE, "/")
		case r == '"' || r == '\'':
			lit, err := s.readString()
			if err != nil {
				return nil, err
			}
			emit(STRING, lit)
		case isLetter(r):
			id := s.readIdentifier()
			kind, ok := keywords[id]
			if !ok {
				kind = IDENTIFIER
			}
			emit(kind, id)
		default:
			s.advance()
		}
	}
	tokens = append(tokens, Token{Kind: EOF, Line: s.line, Column: s.column})
	return tokens, nil
}

func (s *scanner) readNumber() string {
	var b strings.Builder
	dot := false
	for !s.atEnd() {
		r := s.current()
		if r == '.' {
			if dot {
				break
			}
			dot = true
		} else if !isDigit(r) {
			break
		}
		b.WriteRune(s.advance())
	}
	return b.String()
}

func (s *scanner) readIdentifier() string {
	var b strings.Builder
	for !s.atEnd() && isIdentPart(s.current()) {
		b.WriteRune(s.advance())
	}
	return b.String()
}

func (s *scanner) readString() (string, error) {
	quote := s.current()
	startLine, startCol := s.line, s.column
	s.advance()
	var b strings.Builder
	for !s.atEnd() && s.current() != quote {
		if s.current() == '\\' && s.peek() == quote {
			s.advance()
		}
		b.WriteRune(s.advance())
	}
	if s.atEnd() {
		return "", &LexError{Line: startLine, Column: startCol}
	}
	s.advance()
	return b.String(), nil
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter accepts ASCII letters and the Latin-1 accented range.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0xC0 && r <= 0xFF)
}

func isIdentPart(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}
