// Package pattern compiles the include/exclude globs of a resource list and
// decides which source-relative paths belong in its manifest.
//
// Paths and patterns always use forward slashes. The supported syntax is:
//
//	Syntax   Matches
//	"*"      any run of characters within one path segment
//	"**"     any run of characters across segments
//	"?"      exactly one character other than '/'
//	"[abc]"  character class, "[!abc]" negated
//	"{a,b}"  alternation; every '{' needs its '}'
//
// A "**" segment followed by '/' may also match zero directories, so
// "**/pipelet/*.xml" matches both "pipelet/a.xml" and "x/y/pipelet/a.xml".
//
// There is no escape character. A backslash is read as a path separator, so
// patterns written with Windows separators behave like their '/' forms.
//
// Usage:
//
//	m, err := pattern.NewMatcher(cfg.Includes, cfg.Excludes, cfg.Extension())
//	if err != nil {
//	    return err // *domain.PatternError
//	}
//	if m.Match("a/pipelet/x.xml") {
//	    // include it
//	}
package pattern
