package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spag/spag/charset"
	"github.com/spag/spag/nfa"
	"github.com/spag/spag/spagerr"
)

// Shadow records that two differently-named patterns were found to share
// at least one reachable NFA-accept co-occurrence during subset
// construction: the same scanned prefix completes both patterns at once,
// and the earlier-declared name won the tie-break of spec §4.4 step 3.
// See DESIGN.md's "Open Questions resolved" for why this is distinct from
// same-language minimization merging.
type Shadow struct {
	Winner  string
	Shadowed string
}

// Build runs subset construction, totalization and Hopcroft minimization
// over n, producing the minimal total DFA plus any shadow warnings
// discovered along the way (spec §4.4, §9).
func Build(name string, expressions map[string]string, n *nfa.NFA) (*DFA, []Shadow, error) {
	rank := map[string]int{}
	for i, tok := range n.Declaration() {
		rank[tok] = i
	}

	alphabet := computeAlphabet(n)

	type rawState struct {
		members []nfa.StateID
		trans   map[byte]int // alphabet char -> raw state index
		accept  string       // "" if non-accepting
	}

	startSet := epsilonClosure(n, []nfa.StateID{n.Start()})
	startKey := closureKey(startSet)

	var raws []rawState
	keyIndex := map[string]int{startKey: 0}
	raws = append(raws, rawState{members: startSet, trans: map[byte]int{}})

	var shadows []Shadow
	shadowSeen := map[[2]string]bool{}

	queue := []int{0}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		set := raws[idx].members

		label, extras, ok := bestAcceptLabel(n, set, rank)
		if ok {
			raws[idx].accept = label
			for _, other := range extras {
				key := [2]string{label, other}
				if label > other {
					key = [2]string{other, label}
				}
				if !shadowSeen[key] {
					shadowSeen[key] = true
					shadows = append(shadows, Shadow{Winner: label, Shadowed: other})
				}
			}
		}

		for _, c := range alphabet {
			moved := move(n, set, c)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(n, moved)
			key := closureKey(closure)
			j, exists := keyIndex[key]
			if !exists {
				j = len(raws)
				keyIndex[key] = j
				raws = append(raws, rawState{members: closure, trans: map[byte]int{}})
				queue = append(queue, j)
			}
			raws[idx].trans[c] = j
		}
	}

	sinkIdx := len(raws)
	raws = append(raws, rawState{trans: map[byte]int{}})
	for _, c := range alphabet {
		raws[sinkIdx].trans[c] = sinkIdx
	}
	for i := range raws {
		if i == sinkIdx {
			continue
		}
		for _, c := range alphabet {
			if _, ok := raws[i].trans[c]; !ok {
				raws[i].trans[c] = sinkIdx
			}
		}
	}

	total := len(raws)
	trans := make([][]int, total)
	accept := make([]string, total)
	for i, r := range raws {
		row := make([]int, len(alphabet))
		for ai, c := range alphabet {
			row[ai] = r.trans[c]
		}
		trans[i] = row
		accept[i] = r.accept
	}

	blockOf, numBlocks := minimizePartition(total, trans, accept, sinkIdx)

	d := &DFA{
		name:        name,
		expressions: expressions,
		numStates:   numBlocks,
		alphabet:    alphabet,
		start:       State(blockOf[0]),
		sink:        State(blockOf[sinkIdx]),
		accepting:   map[State]string{},
		trans:       make([]map[byte]State, numBlocks),
	}
	for i := range d.trans {
		d.trans[i] = map[byte]State{}
	}
	for i := 0; i < total; i++ {
		b := State(blockOf[i])
		if accept[i] != "" {
			d.accepting[b] = accept[i]
		}
		for ai, c := range alphabet {
			d.trans[b][c] = State(blockOf[trans[i][ai]])
		}
	}

	if len(d.accepting) == 0 {
		return nil, shadows, spagerr.Internal("compiled DFA has no accepting state", nil)
	}

	return d, shadows, nil
}

// computeAlphabet collects every byte that labels some NFA transition
// (spec §4.4: "alphabet = the set of characters labeling any edge of the
// combined NFA").
func computeAlphabet(n *nfa.NFA) []byte {
	set := charset.Empty()
	for i := 0; i < n.States(); i++ {
		s := n.State(nfa.StateID(i))
		if s.HasChar {
			set = set.Add(s.Char)
		}
	}
	return set.Sorted()
}

// epsilonClosure returns the canonical sorted epsilon-closure of seed.
func epsilonClosure(n *nfa.NFA, seed []nfa.StateID) []nfa.StateID {
	seen := map[nfa.StateID]bool{}
	var stack []nfa.StateID
	for _, id := range seed {
		if !seen[id] {
			seen[id] = true
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := n.State(id)
		if s.HasChar || s.IsAccept() {
			continue
		}
		for _, next := range []nfa.StateID{s.Out1, s.Out2} {
			if next != nfa.InvalidState && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	out := make([]nfa.StateID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move returns the set of NFA states reached from any member of set by
// consuming byte c (before taking the epsilon-closure).
func move(n *nfa.NFA, set []nfa.StateID, c byte) []nfa.StateID {
	var out []nfa.StateID
	for _, id := range set {
		s := n.State(id)
		if s.HasChar && s.Char == c {
			out = append(out, s.Out1)
		}
	}
	return out
}

// closureKey builds the canonical memoization key for a sorted closure set
// (spec §9: "canonical bit-sets" — here, a canonical sorted-id string).
func closureKey(set []nfa.StateID) string {
	var b strings.Builder
	for i, id := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// bestAcceptLabel implements spec §4.4 step 3: a closure set is accepting
// if it contains any NFA accept state; its label is the token whose NFA
// accept appears first in declaration order. Any other accepting tokens
// present in the same closure are returned as shadowed names.
func bestAcceptLabel(n *nfa.NFA, set []nfa.StateID, rank map[string]int) (string, []string, bool) {
	best := ""
	bestRank := -1
	var all []string
	for _, id := range set {
		s := n.State(id)
		if !s.IsAccept() {
			continue
		}
		all = append(all, s.Accept)
		if bestRank == -1 || rank[s.Accept] < bestRank {
			best = s.Accept
			bestRank = rank[s.Accept]
		}
	}
	if best == "" {
		return "", nil, false
	}
	var extras []string
	for _, name := range all {
		if name != best {
			extras = append(extras, name)
		}
	}
	return best, extras, true
}
