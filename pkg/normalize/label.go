// Package normalize converts spreadsheet column labels and cell values to
// the canonical forms used for matching and output.
//
// All functions are pure. Applying a normalizer twice gives the same
// result as applying it once.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gnames/gnlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label converts a raw column label to a lowercase snake token without
// diacritics or punctuation.
//
//	"Número de personal"  -> "numero_de_personal"
//	"Clase absent./pres." -> "clase_absentpres"
//	"Días presenc./abs."  -> "dias_presencabs"
func Label(raw string) string {
	s := gnlib.FixUtf8(raw)
	// transformers are stateful, one per call keeps Label safe for
	// concurrent use
	stripMarks := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	s, _, err := transform.String(stripMarks, s)
	if err != nil {
		s = gnlib.FixUtf8(raw)
	}
	s = strings.ToLower(s)

	var sb strings.Builder
	sb.Grow(len(s))
	var pendingSep bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '_':
			pendingSep = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// DedupLabels renames repeated labels. The first occurrence keeps its
// label, later occurrences get "_1", "_2", ... in order of appearance.
// A generated name never collides with a label that is already used.
func DedupLabels(labels []string) []string {
	res := make([]string, len(labels))
	used := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		used[l] = struct{}{}
	}

	counter := make(map[string]int, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			res[i] = l
			continue
		}
		for {
			counter[l]++
			name := fmt.Sprintf("%s_%d", l, counter[l])
			if _, ok := used[name]; !ok {
				used[name] = struct{}{}
				res[i] = name
				break
			}
		}
	}
	return res
}

// Header converts raw spreadsheet labels to unique canonical column
// names. Raw duplicates are renamed first, then every label goes through
// Label, and labels that collide only after normalization are renamed
// again. An empty label becomes "columna_<position>".
func Header(raw []string) []string {
	res := DedupLabels(raw)
	for i := range res {
		res[i] = Label(res[i])
		if res[i] == "" {
			res[i] = fmt.Sprintf("columna_%d", i+1)
		}
	}
	return DedupLabels(res)
}

// Renamed returns pairs of labels changed by DedupLabels, formatted as
// "old -> new". It is used for reporting.
func Renamed(raw []string) []string {
	var res []string
	dedup := DedupLabels(raw)
	for i := range raw {
		if raw[i] != dedup[i] {
			res = append(res, fmt.Sprintf("%s -> %s", raw[i], dedup[i]))
		}
	}
	return res
}
