package mail

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
)

type wordJSON struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type wordSetJSON struct {
	TopLeft     *wordJSON `json:"top_left"`
	TopRight    *wordJSON `json:"top_right"`
	BottomLeft  *wordJSON `json:"bottom_left"`
	BottomRight *wordJSON `json:"bottom_right"`
	Order       string    `json:"order"`
	Cost        int       `json:"cost"`
}

func candidateJSON(c Candidate) *wordJSON {
	if !c.Present {
		return nil
	}
	return &wordJSON{Text: c.Word.Text, Category: c.Word.Category.Name}
}

// MarshalJSON writes words as text and category. Absent candidates are
// written as null.
func (ws WordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordSetJSON{
		TopLeft:     candidateJSON(ws.TopLeft),
		TopRight:    candidateJSON(ws.TopRight),
		BottomLeft:  candidateJSON(ws.BottomLeft),
		BottomRight: candidateJSON(ws.BottomRight),
		Order:       ws.Order.Permutation(),
		Cost:        ws.Cost,
	})
}

// find resolves a word by category and text, ignoring case.
func (e *Engine) find(w *wordJSON) Candidate {
	if w == nil {
		return Candidate{}
	}
	for _, dw := range e.words {
		if strings.EqualFold(dw.Category.Name, w.Category) && strings.EqualFold(dw.Text, w.Text) {
			return e.candidate(dw.Index)
		}
	}
	return Candidate{}
}

// DecodeWordSet reads a word set written by WordSet.MarshalJSON, resolving
// words against the engine's dictionary. Words the dictionary does not
// have decode as absent. The order is recomputed when both personality
// value words are present and must match the stored one.
func (e *Engine) DecodeWordSet(data []byte) (WordSet, error) {
	var raw wordSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return WordSet{}, fmt.Errorf("%w: %v", ErrMalformedWordSet, err)
	}
	return e.fromJSON(raw)
}

// DecodeWordSets reads a JSON array of word sets.
func (e *Engine) DecodeWordSets(data []byte) ([]WordSet, error) {
	var raws []wordSetJSON
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWordSet, err)
	}

	sets := make([]WordSet, 0, len(raws))
	for i, raw := range raws {
		ws, err := e.fromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("word set %d: %w", i, err)
		}
		sets = append(sets, ws)
	}
	return sets, nil
}

func (e *Engine) fromJSON(raw wordSetJSON) (WordSet, error) {
	ws := WordSet{
		TopLeft:     e.find(raw.TopLeft),
		TopRight:    e.find(raw.TopRight),
		BottomLeft:  e.find(raw.BottomLeft),
		BottomRight: e.find(raw.BottomRight),
	}
	ws.Cost = ws.TopLeft.Cost + ws.TopRight.Cost + ws.BottomLeft.Cost + ws.BottomRight.Cost

	var stored codec.Order
	if raw.Order != "" {
		o, err := codec.ParseOrder(raw.Order)
		if err != nil {
			return WordSet{}, fmt.Errorf("%w: %q", ErrUnknownOrder, raw.Order)
		}
		stored = o
	}

	if ws.TopLeft.Present && ws.TopRight.Present {
		ws.Order = codec.OrderOf(uint32(ws.TopRight.Word.Index)<<16 | uint32(ws.TopLeft.Word.Index))
		if !stored.IsZero() && stored != ws.Order {
			return WordSet{}, fmt.Errorf("%w: words give order %s, not %s", ErrMalformedWordSet, ws.Order, stored)
		}
		return ws, nil
	}

	if stored.IsZero() {
		return WordSet{}, fmt.Errorf("%w: order is required when a personality value word is absent", ErrMalformedWordSet)
	}
	ws.Order = stored
	return ws, nil
}
