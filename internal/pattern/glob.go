package pattern

import (
	"errors"
	"strings"

	"github.com/gobwas/glob"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
)

// Separator is the path separator used by manifests and patterns
const Separator = '/'

const anyDirs = "**"

var (
	errUnclosedAlternation = errors.New("unclosed '{'")
	errUnopenedAlternation = errors.New("unexpected '}'")
)

// Glob is a compiled pattern. It holds one compiled glob per expansion of
// its optional "**/" segments.
type Glob struct {
	source   string
	variants []glob.Glob
}

// Compile compiles a single pattern. Syntax errors are returned as
// *domain.PatternError.
func Compile(pattern string) (*Glob, error) {
	normalized := Normalize(pattern)
	if err := checkAlternations(normalized); err != nil {
		return nil, domain.NewPatternError(pattern, err)
	}

	expansions := expand(normalized)
	variants := make([]glob.Glob, 0, len(expansions))
	for _, expr := range expansions {
		g, err := glob.Compile(expr, Separator)
		if err != nil {
			return nil, domain.NewPatternError(pattern, err)
		}
		variants = append(variants, g)
	}

	return &Glob{source: pattern, variants: variants}, nil
}

// Match reports whether the slash-separated relative path matches
func (g *Glob) Match(relPath string) bool {
	for _, v := range g.variants {
		if v.Match(relPath) {
			return true
		}
	}
	return false
}

// String returns the pattern as written
func (g *Glob) String() string {
	return g.source
}

// Normalize converts backslashes to '/', trims a leading "./" or "/" and
// collapses runs of "**" segments. Patterns have no escape character: a
// backslash is always a Windows path separator.
func Normalize(pattern string) string {
	p := strings.ReplaceAll(pattern, `\`, "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimLeft(p, "/")

	segments := strings.Split(p, "/")
	out := segments[:0]
	for _, seg := range segments {
		if seg == anyDirs && len(out) > 0 && out[len(out)-1] == anyDirs {
			continue
		}
		out = append(out, seg)
	}
	return strings.Join(out, "/")
}

// checkAlternations rejects unbalanced '{' and '}'. Braces inside a
// character class are literal.
func checkAlternations(pattern string) error {
	depth := 0
	inClass := false
	for _, r := range pattern {
		switch {
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '{':
			depth++
		case r == '}':
			if depth == 0 {
				return errUnopenedAlternation
			}
			depth--
		}
	}
	if depth > 0 {
		return errUnclosedAlternation
	}
	return nil
}

// expand returns every pattern obtained by keeping or dropping each "**"
// segment that is followed by another segment.
func expand(pattern string) []string {
	segments := strings.Split(pattern, "/")

	var optional []int
	for i, seg := range segments[:len(segments)-1] {
		if seg == anyDirs {
			optional = append(optional, i)
		}
	}

	seen := make(map[string]struct{})
	var result []string
	for mask := 0; mask < 1<<len(optional); mask++ {
		drop := make(map[int]bool, len(optional))
		for bit, idx := range optional {
			if mask&(1<<bit) != 0 {
				drop[idx] = true
			}
		}

		kept := make([]string, 0, len(segments))
		for i, seg := range segments {
			if !drop[i] {
				kept = append(kept, seg)
			}
		}

		expr := strings.Join(kept, "/")
		if _, dup := seen[expr]; dup {
			continue
		}
		seen[expr] = struct{}{}
		result = append(result, expr)
	}
	return result
}
