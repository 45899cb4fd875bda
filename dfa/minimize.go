package dfa

import (
	"strconv"
	"strings"
)

// minimizePartition computes the coarsest stable partition of a total DFA
// (Hopcroft's equivalence classes) by fixed-point signature refinement:
// repeatedly re-partition states by (current block, transition targets'
// current blocks) until the number of blocks stops growing. This computes
// the same partition Hopcroft's worklist formulation does, without the
// worklist/splitter bookkeeping.
//
// trans[s][ai] is the target state for alphabet[ai] from state s (total,
// i.e. always defined — see Build's totalization step).
//
// Per spec §4.4's initial partition: {sink}, one block per distinct
// accept-label, and everything else together. Refinement only ever
// splits a block, so two differently-labeled accept states are never
// merged by this step (see DESIGN.md's Open Questions resolution).
func minimizePartition(total int, trans [][]int, accept []string, sinkIdx int) ([]int, int) {
	blockOf := make([]int, total)
	initial := map[string]int{}
	next := 0
	for i := 0; i < total; i++ {
		key := initialKey(i, sinkIdx, accept[i])
		id, ok := initial[key]
		if !ok {
			id = next
			initial[key] = id
			next++
		}
		blockOf[i] = id
	}
	numBlocks := next

	for {
		sig := make([]string, total)
		for s := 0; s < total; s++ {
			sig[s] = signature(s, blockOf, trans)
		}
		newBlockOf := make([]int, total)
		sigToID := map[string]int{}
		nextID := 0
		for s := 0; s < total; s++ {
			id, ok := sigToID[sig[s]]
			if !ok {
				id = nextID
				sigToID[sig[s]] = id
				nextID++
			}
			newBlockOf[s] = id
		}
		blockOf = newBlockOf
		if nextID == numBlocks {
			break
		}
		numBlocks = nextID
	}

	return blockOf, numBlocks
}

func initialKey(state, sinkIdx int, acceptLabel string) string {
	if state == sinkIdx {
		return "SINK"
	}
	if acceptLabel != "" {
		return "ACC:" + acceptLabel
	}
	return "NONACC"
}

// signature returns a state's refinement fingerprint: its own current
// block plus the current block of every transition target, in alphabet
// order. Two states with identical signatures are behaviorally
// indistinguishable so far and stay merged; any difference forces a split
// on the next iteration.
func signature(s int, blockOf []int, trans [][]int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(blockOf[s]))
	for _, target := range trans[s] {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(blockOf[target]))
	}
	return b.String()
}
