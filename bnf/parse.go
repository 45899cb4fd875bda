package bnf

import (
	"strconv"
	"strings"

	"github.com/spag/spag/spagerr"
)

// ParseProductions reads the textual BNF production form of spec §6.2: one
// record per line, "LHS -> RHS-symbols", whitespace-delimited symbols, an
// empty RHS denoting epsilon, and "A -> x | y" as shorthand for two
// separate records sharing LHS A ("semantically identical", §6.2). Blank
// lines and lines starting with "#" are ignored.
//
// This concrete syntax is not mandated by spec.md (§3: "the core does not
// dictate file layout, only the abstract form") — it exists so
// cmd/spagc's "parse" subcommand has a human-writable grammar format to
// feed into Source.Productions; written fresh, grounded on §6.2's
// abstract rules rather than any pack example.
func ParseProductions(text string) ([]Production, error) {
	var out []Production
	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rest, ok := strings.Cut(line, "->")
		if !ok {
			return nil, spagerr.MalformedGrammar(spagerr.SubMalformedRecord, line,
				recordErrorMessage(lineNo))
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" {
			return nil, spagerr.MalformedGrammar(spagerr.SubMalformedRecord, line,
				recordErrorMessage(lineNo))
		}

		for _, alt := range strings.Split(rest, "|") {
			out = append(out, Production{LHS: lhs, RHS: strings.Fields(alt)})
		}
	}
	return out, nil
}

func recordErrorMessage(lineNo int) string {
	return "line " + strconv.Itoa(lineNo+1) + " is not a valid \"LHS -> RHS\" record"
}
