package parse

import (
	"strings"
	"text/scanner"
)

// TokenType identifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenInt
	TokenFloat
	TokenIdent
	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
	TokenSlashSlash // //
	TokenPercent    // %
	TokenCaret      // ^
	TokenStarStar   // **
	TokenXor        // ⊕
	TokenAmp        // &
	TokenPipe       // |
	TokenTilde      // ~
	TokenShl        // <<
	TokenShr        // >>
	TokenEq         // ==
	TokenNe         // !=
	TokenLt         // <
	TokenLe         // <=
	TokenGt         // >
	TokenGe         // >=
	TokenLParen     // (
	TokenRParen     // )
	TokenComma      // ,
)

// Token is a lexical token. Pos is the byte offset of its first character.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

// singles maps one-character operators that never start a longer one.
var singles = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'%': TokenPercent,
	'^': TokenCaret,
	'⊕': TokenXor,
	'&': TokenAmp,
	'|': TokenPipe,
	'~': TokenTilde,
	'(': TokenLParen,
	')': TokenRParen,
	',': TokenComma,
}

// pairs maps a first character to the token it forms alone and the tokens it
// forms with each possible second character.
var pairs = map[rune]struct {
	alone  TokenType
	second map[rune]TokenType
}{
	'*': {TokenStar, map[rune]TokenType{'*': TokenStarStar}},
	'/': {TokenSlash, map[rune]TokenType{'/': TokenSlashSlash}},
	'<': {TokenLt, map[rune]TokenType{'<': TokenShl, '=': TokenLe}},
	'>': {TokenGt, map[rune]TokenType{'>': TokenShr, '=': TokenGe}},
	'=': {TokenEOF, map[rune]TokenType{'=': TokenEq}},
	'!': {TokenEOF, map[rune]TokenType{'=': TokenNe}},
}

// Lex splits src into tokens. The returned slice always ends with a
// TokenEOF.
func Lex(src string) ([]Token, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats

	var lexErr error
	s.Error = func(s *scanner.Scanner, msg string) {
		if lexErr == nil {
			lexErr = syntaxErrorf(s.Pos().Offset, "%s", msg)
		}
	}

	var toks []Token
	for {
		r := s.Scan()
		if lexErr != nil {
			return nil, lexErr
		}
		pos := s.Position.Offset
		text := s.TokenText()

		switch r {
		case scanner.EOF:
			toks = append(toks, Token{Type: TokenEOF, Pos: len(src)})
			return toks, nil
		case scanner.Int:
			if err := checkIntLiteral(text, pos); err != nil {
				return nil, err
			}
			toks = append(toks, Token{Type: TokenInt, Text: text, Pos: pos})
			continue
		case scanner.Float:
			toks = append(toks, Token{Type: TokenFloat, Text: text, Pos: pos})
			continue
		case scanner.Ident:
			toks = append(toks, Token{Type: TokenIdent, Text: text, Pos: pos})
			continue
		}

		if tt, ok := singles[r]; ok {
			toks = append(toks, Token{Type: tt, Text: text, Pos: pos})
			continue
		}
		if p, ok := pairs[r]; ok {
			if tt, ok := p.second[s.Peek()]; ok {
				text += string(s.Next())
				toks = append(toks, Token{Type: tt, Text: text, Pos: pos})
				continue
			}
			if p.alone != TokenEOF {
				toks = append(toks, Token{Type: p.alone, Text: text, Pos: pos})
				continue
			}
		}
		return nil, syntaxErrorf(pos, "invalid character %q", r)
	}
}

// checkIntLiteral rejects decimal literals with leading zeros such as 017,
// which would otherwise be read as octal.
func checkIntLiteral(text string, pos int) error {
	if len(text) < 2 || text[0] != '0' {
		return nil
	}
	switch text[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return nil
	}
	if strings.Trim(text, "0_") == "" {
		return nil
	}
	return syntaxErrorf(pos, "leading zeros in decimal integer literals are not permitted")
}
