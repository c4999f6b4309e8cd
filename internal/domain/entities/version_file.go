package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// CoreDetails holds the assignments read from wp-includes/version.php.
type CoreDetails struct {
	Version        string
	DBVersion      string
	TinyMCEVersion string
	LocalPackage   string
}

// ParseCoreDetails parses version.php and extracts the known variables.
// The file must assign wp_version.
func ParseCoreDetails(content string) (CoreDetails, error) {
	vars, err := ParseVersionFile(content)
	if err != nil {
		return CoreDetails{}, err
	}

	version, ok := vars["wp_version"]
	if !ok || version == "" {
		return CoreDetails{}, fmt.Errorf("%w: wp_version is not assigned", ErrUnparsableVersionFile)
	}

	return CoreDetails{
		Version:        version,
		DBVersion:      vars["wp_db_version"],
		TinyMCEVersion: vars["tinymce_version"],
		LocalPackage:   vars["wp_local_package"],
	}, nil
}

// ParseVersionFile reads a PHP file made only of comments and assignments
// of the form `$identifier = literal;`, where literal is a quoted string or
// an integer. Any other statement is rejected.
func ParseVersionFile(content string) (map[string]string, error) {
	p := &versionFileParser{src: []rune(content)}
	p.skipOpenTag()

	vars := make(map[string]string)
	for {
		p.skipTrivia()
		if p.eof() {
			return vars, nil
		}
		if p.peekString("?>") {
			return vars, nil
		}

		name, value, err := p.assignment()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnparsableVersionFile, err)
		}
		vars[name] = value
	}
}

type versionFileParser struct {
	src  []rune
	pos  int
	line int
}

func (p *versionFileParser) eof() bool { return p.pos >= len(p.src) }

func (p *versionFileParser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *versionFileParser) peekString(s string) bool {
	return strings.HasPrefix(string(p.src[p.pos:min(len(p.src), p.pos+len(s))]), s)
}

func (p *versionFileParser) advance() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

func (p *versionFileParser) skipOpenTag() {
	p.skipSpace()
	if p.peekString("<?php") {
		p.pos += len("<?php")
	}
}

func (p *versionFileParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// skipTrivia skips whitespace and //, # and /* */ comments.
func (p *versionFileParser) skipTrivia() {
	for {
		p.skipSpace()
		switch {
		case p.peekString("//"), p.peek() == '#':
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
		case p.peekString("/*"):
			p.pos += 2
			for !p.eof() && !p.peekString("*/") {
				p.advance()
			}
			if !p.eof() {
				p.pos += 2
			}
		default:
			return
		}
	}
}

func (p *versionFileParser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{p.line + 1}, args...)...)
}

func (p *versionFileParser) assignment() (string, string, error) {
	if p.peek() != '$' {
		return "", "", p.errorf("expected assignment, found %q", p.peek())
	}
	p.advance()

	name := p.identifier()
	if name == "" {
		return "", "", p.errorf("expected identifier after '$'")
	}

	p.skipTrivia()
	if p.eof() || p.advance() != '=' {
		return "", "", p.errorf("expected '=' after $%s", name)
	}

	p.skipTrivia()
	value, err := p.literal()
	if err != nil {
		return "", "", err
	}

	p.skipTrivia()
	if p.eof() || p.advance() != ';' {
		return "", "", p.errorf("expected ';' after $%s", name)
	}

	return name, value, nil
}

func (p *versionFileParser) identifier() string {
	start := p.pos
	for !p.eof() {
		r := p.peek()
		if r == '_' || unicode.IsLetter(r) || (p.pos > start && unicode.IsDigit(r)) {
			p.advance()
			continue
		}
		break
	}
	return string(p.src[start:p.pos])
}

func (p *versionFileParser) literal() (string, error) {
	switch r := p.peek(); {
	case r == '\'' || r == '"':
		return p.quoted(r)
	case unicode.IsDigit(r) || r == '-':
		start := p.pos
		p.advance()
		for !p.eof() && unicode.IsDigit(p.peek()) {
			p.advance()
		}
		return string(p.src[start:p.pos]), nil
	default:
		return "", p.errorf("expected literal, found %q", r)
	}
}

func (p *versionFileParser) quoted(quote rune) (string, error) {
	p.advance()
	var b strings.Builder
	for !p.eof() {
		r := p.advance()
		switch {
		case r == '\\' && !p.eof():
			b.WriteRune(p.advance())
		case r == quote:
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}
	return "", p.errorf("unterminated string literal")
}
