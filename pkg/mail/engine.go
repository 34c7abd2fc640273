// Package mail finds mail glitch word sets: four dictionary words that,
// written over a boxed record's personality value and trainer id, change
// its substructure order without changing its encryption key.
//
// The key is PV XOR TID, so it is the XOR of the high halves and the XOR of
// the low halves taken independently. For each half the engine lists every
// word pair with the original XOR, then combines high and low pairs.
package mail

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

var (
	ErrUnknownOrder     = errors.New("unknown substructure order")
	ErrMalformedWordSet = errors.New("malformed word set")
)

// Dictionary is the word lookup the engine consumes.
type Dictionary interface {
	ByIndex(i uint16) (catalog.Word, bool)
	Words() []catalog.Word
}

// Engine searches word sets over a fixed dictionary. It is immutable and
// safe for concurrent use.
type Engine struct {
	dict  Dictionary
	words []catalog.Word
	costs map[uint16]int
}

// NewEngine ranks the dictionary words for the cost model.
func NewEngine(dict Dictionary) *Engine {
	words := dict.Words()
	return &Engine{
		dict:  dict,
		words: words,
		costs: scrollCosts(words),
	}
}

// scrollCosts estimates the cursor movement needed to pick each word: the
// category's own distance plus half the word's alphabetical rank within the
// category, rounded up, since the word list has two columns.
func scrollCosts(words []catalog.Word) map[uint16]int {
	byCategory := map[string][]catalog.Word{}
	for _, w := range words {
		byCategory[w.Category.Name] = append(byCategory[w.Category.Name], w)
	}

	costs := make(map[uint16]int, len(words))
	for _, ws := range byCategory {
		slices.SortStableFunc(ws, func(a, b catalog.Word) int {
			return strings.Compare(a.Text, b.Text)
		})
		for rank, w := range ws {
			costs[w.Index] = w.Category.Scroll + (rank+1)/2
		}
	}
	return costs
}

// Cost returns the scroll cost of a word, or 0 for an unknown index.
func (e *Engine) Cost(index uint16) int {
	return e.costs[index]
}

func (e *Engine) candidate(index uint16) Candidate {
	w, ok := e.dict.ByIndex(index)
	if !ok {
		return Candidate{}
	}
	return Candidate{Word: w, Present: true, Cost: e.costs[index]}
}

// FromIndices builds the word set that writes the given values. Values with
// no dictionary word become absent candidates.
func (e *Engine) FromIndices(topLeft, topRight, bottomLeft, bottomRight uint16) WordSet {
	ws := WordSet{
		TopLeft:     e.candidate(topLeft),
		TopRight:    e.candidate(topRight),
		BottomLeft:  e.candidate(bottomLeft),
		BottomRight: e.candidate(bottomRight),
		Order:       codec.OrderOf(uint32(topRight)<<16 | uint32(topLeft)),
	}
	ws.Cost = ws.TopLeft.Cost + ws.TopRight.Cost + ws.BottomLeft.Cost + ws.BottomRight.Cost
	return ws
}

type pair struct {
	pv, tid uint16
}

// replacementPairs lists the (pv, tid) pairs with the same XOR as the
// original half, starting with the original pair itself.
func (e *Engine) replacementPairs(pv, tid uint16) []pair {
	pairs := []pair{{pv, tid}}
	xor := pv ^ tid
	for _, w := range e.words {
		if w.Index == pv {
			continue
		}
		if _, ok := e.dict.ByIndex(w.Index ^ xor); ok {
			pairs = append(pairs, pair{w.Index, w.Index ^ xor})
		}
	}
	return pairs
}

// Search yields every key preserving word set for id except the one that
// rewrites the original values. Sets come in dictionary order, high half
// first. Each iteration recomputes the sets; stopping early skips the rest.
func (e *Engine) Search(id Identity) iter.Seq[WordSet] {
	return func(yield func(WordSet) bool) {
		h := id.halves()
		lowPairs := e.replacementPairs(h[0], h[2])
		highPairs := e.replacementPairs(h[1], h[3])

		for _, hi := range highPairs {
			for _, lo := range lowPairs {
				if hi == highPairs[0] && lo == lowPairs[0] {
					continue
				}
				if !yield(e.FromIndices(lo.pv, hi.pv, lo.tid, hi.tid)) {
					return
				}
			}
		}
	}
}

// ByOrder yields the key preserving word sets that give id the target
// substructure order. An empty sequence means no such set exists.
func (e *Engine) ByOrder(id Identity, target codec.Order) iter.Seq[WordSet] {
	return func(yield func(WordSet) bool) {
		for ws := range e.Search(id) {
			if ws.Order == target && !yield(ws) {
				return
			}
		}
	}
}

// Survey yields, for each reachable substructure order, the cheapest key
// preserving word set reaching it, by ascending order value. Ties go to the
// set found first.
func (e *Engine) Survey(id Identity) iter.Seq[WordSet] {
	return func(yield func(WordSet) bool) {
		var best [24]*WordSet
		for ws := range e.Search(id) {
			v := ws.Order.Value()
			if best[v] == nil || ws.Cost < best[v].Cost {
				best[v] = &ws
			}
		}

		for _, ws := range best {
			if ws != nil && !yield(*ws) {
				return
			}
		}
	}
}

// Cheapest collects seq sorted by ascending cost, keeping sequence order
// among equal costs, and returns the first n. n <= 0 keeps all of them.
func Cheapest(seq iter.Seq[WordSet], n int) []WordSet {
	sets := slices.Collect(seq)
	slices.SortStableFunc(sets, func(a, b WordSet) int {
		return a.Cost - b.Cost
	})
	if n > 0 && len(sets) > n {
		sets = sets[:n]
	}
	return sets
}
