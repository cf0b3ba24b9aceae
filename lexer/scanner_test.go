package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// types mirrors lexemes the scanner produced, dropping line numbers so test
// tables stay focused on token kind and text.
func types(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = Token{Type: tok.Type, Lexeme: tok.Lexeme, Literal: tok.Literal}
	}
	return out
}

type scanCase struct {
	Input    string
	Expected []Token
}

func TestScanner_Punctuation(t *testing.T) {
	tests := []scanCase{
		{
			Input: `( ) { } , . - + ; * /`,
			Expected: []Token{
				Token{Type: LEFT_PAREN, Lexeme: "("},
				Token{Type: RIGHT_PAREN, Lexeme: ")"},
				Token{Type: LEFT_BRACE, Lexeme: "{"},
				Token{Type: RIGHT_BRACE, Lexeme: "}"},
				Token{Type: COMMA, Lexeme: ","},
				Token{Type: DOT, Lexeme: "."},
				Token{Type: MINUS, Lexeme: "-"},
				Token{Type: PLUS, Lexeme: "+"},
				Token{Type: SEMICOLON, Lexeme: ";"},
				Token{Type: STAR, Lexeme: "*"},
				Token{Type: SLASH, Lexeme: "/"},
				Token{Type: EOF, Lexeme: ""},
			},
		},
		{
			Input: `! != = == < <= > >=`,
			Expected: []Token{
				Token{Type: BANG, Lexeme: "!"},
				Token{Type: BANG_EQUAL, Lexeme: "!="},
				Token{Type: EQUAL, Lexeme: "="},
				Token{Type: EQUAL_EQUAL, Lexeme: "=="},
				Token{Type: LESS, Lexeme: "<"},
				Token{Type: LESS_EQUAL, Lexeme: "<="},
				Token{Type: GREATER, Lexeme: ">"},
				Token{Type: GREATER_EQUAL, Lexeme: ">="},
				Token{Type: EOF, Lexeme: ""},
			},
		},
	}

	for _, tc := range tests {
		s := NewScanner(tc.Input)
		tokens, errs := s.ScanTokens()
		assert.Empty(t, errs)
		assert.Equal(t, tc.Expected, types(tokens))
	}
}

func TestScanner_KeywordsAndIdentifiers(t *testing.T) {
	s := NewScanner(`and class fancyVar _under1 while break`)
	tokens, errs := s.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []Token{
		Token{Type: AND, Lexeme: "and"},
		Token{Type: CLASS, Lexeme: "class"},
		Token{Type: IDENTIFIER, Lexeme: "fancyVar"},
		Token{Type: IDENTIFIER, Lexeme: "_under1"},
		Token{Type: WHILE, Lexeme: "while"},
		Token{Type: BREAK, Lexeme: "break"},
		Token{Type: EOF, Lexeme: ""},
	}, types(tokens))
}

func TestScanner_Numbers(t *testing.T) {
	s := NewScanner(`123 1.5 .5 5.`)
	tokens, _ := s.ScanTokens()

	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 1.5, tokens[1].Literal)
	// ".5" is DOT then NUMBER 5: a leading dot is never part of a number.
	assert.Equal(t, DOT, tokens[2].Type)
	assert.Equal(t, NUMBER, tokens[3].Type)
	assert.Equal(t, 5.0, tokens[3].Literal)
	// "5." is NUMBER 5 then DOT: a trailing dot is never part of a number.
	assert.Equal(t, NUMBER, tokens[4].Type)
	assert.Equal(t, 5.0, tokens[4].Literal)
	assert.Equal(t, DOT, tokens[5].Type)
}

func TestScanner_Strings(t *testing.T) {
	s := NewScanner(`"hello\nworld"`)
	tokens, errs := s.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, STRING, tokens[0].Type)
	// No escape sequences are recognized: the backslash-n is literal text.
	assert.Equal(t, `hello\nworld`, tokens[0].Literal)
}

func TestScanner_UnterminatedString(t *testing.T) {
	s := NewScanner(`"never closes`)
	_, errs := s.ScanTokens()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, 1, errs[0].Line)
	}
}

func TestScanner_LineComment(t *testing.T) {
	s := NewScanner("var a = 1; // trailing comment\nvar b = 2;")
	tokens, errs := s.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, VAR, tokens[0].Type)
	assert.Equal(t, VAR, tokens[5].Type)
}

func TestScanner_NestedBlockComment(t *testing.T) {
	s := NewScanner("/* outer /* inner */ still outer */ var x = 1;")
	tokens, errs := s.ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, VAR, tokens[0].Type)
}

func TestScanner_UnterminatedBlockComment(t *testing.T) {
	s := NewScanner("/* outer /* inner */ missing the rest")
	_, errs := s.ScanTokens()
	assert.Len(t, errs, 1)
}

func TestScanner_UnknownCharacter(t *testing.T) {
	s := NewScanner("var a = 1; @ var b = 2;")
	_, errs := s.ScanTokens()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Unexpected character.", errs[0].Message)
	}
}
