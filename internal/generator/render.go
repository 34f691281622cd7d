package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
)

// Entry converts a matched relative path into its manifest line
func Entry(relPath string, cfg domain.ListConfiguration) string {
	if cfg.Style() != domain.EntryStyleQualified {
		return relPath
	}
	entry := relPath
	if ext := cfg.Extension(); ext != "" {
		entry = strings.Replace(entry, "."+ext, "", 1)
	}
	return strings.ReplaceAll(entry, "/", ".")
}

// Render joins unique entries, sorted by byte order, one per line with a
// trailing newline. An empty set renders as zero bytes.
func Render(entries []string) []byte {
	unique := make(map[string]struct{}, len(entries))
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := unique[e]; dup {
			continue
		}
		unique[e] = struct{}{}
		lines = append(lines, e)
	}
	sort.Strings(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Digest returns the hex sha256 of rendered manifest content
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func countLines(content []byte) int {
	return strings.Count(string(content), "\n")
}
