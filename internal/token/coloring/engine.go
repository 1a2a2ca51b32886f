// Package coloring assigns token colors to transaction outputs from a decoded payload.
package coloring

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// Section is a section that colored successfully, together with the outputs it claimed.
type Section struct {
	model.Section
	EntryIdx int
	Outputs  []int
}

// Colored is the output-side coloring of a transaction. Inputs are reconciled separately.
type Colored struct {
	TxID           chainhash.Hash
	Protocol       model.Protocol
	Sections       []Section
	Entries        []model.TokenEntry
	Outputs        []*model.ColoredValue
	FailedParsings []model.Failure
}

type eventKind uint8

const (
	eventBurn eventKind = iota
	eventFailure
)

// event is a burn declaration or a failure, kept in pushdata order until entries exist.
type event struct {
	kind     eventKind
	section  model.Section
	umbrella bool
	message  string
}

type engine struct {
	colored *Colored
	events  []event
	burns   []model.Section
	maxType uint16
}

// Color runs the coloring rules over every decoded section. It performs no I/O.
func Color(txid chainhash.Hash, numOutputs int, decoded model.Decoded) *Colored {
	e := &engine{
		colored: &Colored{
			TxID:    txid,
			Outputs: make([]*model.ColoredValue, numOutputs),
		},
	}
	switch decoded.Kind {
	case model.DecodedParseFailure:
		e.colored.FailedParsings = []model.Failure{{PushdataIdx: -1, Message: decoded.Message}}
		return e.colored
	case model.DecodedLegacy:
		e.colored.Protocol = model.ProtocolSLP
	case model.DecodedMultiSection:
		e.colored.Protocol = model.ProtocolALP
	default:
		return e.colored
	}

	for _, section := range decoded.Sections {
		e.colorSection(section)
	}
	e.buildEntries()
	return e.colored
}

func (e *engine) fail(section model.Section, umbrella bool, format string, args ...any) {
	e.events = append(e.events, event{
		kind:     eventFailure,
		section:  section,
		umbrella: umbrella,
		message:  fmt.Sprintf(format, args...),
	})
}

func (e *engine) colorSection(section model.Section) {
	if section.TokenType.Code < e.maxType {
		e.fail(section, true, "Descending token type: %d > %d, token types must be in ascending order",
			e.maxType, section.TokenType.Code)
		return
	}
	e.maxType = section.TokenType.Code

	if section.TxKind == model.TxKindUnknown {
		e.accept(section, nil)
		return
	}

	if section.TxKind == model.TxKindMint || section.TxKind == model.TxKindSend {
		for idx, prev := range e.colored.Sections {
			if prev.TxKind != model.TxKindUnknown && prev.TokenID == section.TokenID {
				e.fail(section, false, "Duplicate token_id %s, found in section %d", section.TokenID, idx)
				return
			}
		}
	}

	switch section.TxKind {
	case model.TxKindGenesis:
		if section.PushdataIdx != 0 {
			e.fail(section, true, "GENESIS must be the first pushdata")
			return
		}
		e.colorMint(section)
	case model.TxKindMint:
		e.colorMint(section)
	case model.TxKindSend:
		e.colorSend(section)
	case model.TxKindBurn:
		e.colorBurn(section)
	}
}

// slot is a planned output assignment.
type slot struct {
	output int
	amount model.Amount
	baton  bool
}

func (e *engine) colorMint(section model.Section) {
	slots := make([]slot, 0, len(section.Amounts)+section.NumBatons+1)
	for i, amount := range section.Amounts {
		slots = append(slots, slot{output: 1 + i, amount: amount})
	}
	required := 1 + len(section.Amounts)
	switch {
	case section.TokenType.Protocol == model.ProtocolALP:
		for i := 0; i < section.NumBatons; i++ {
			slots = append(slots, slot{output: 1 + len(section.Amounts) + i, baton: true})
		}
		required += section.NumBatons
	case section.MintBatonOut > 0:
		slots = append(slots, slot{output: section.MintBatonOut, baton: true})
		if section.MintBatonOut+1 > required {
			required = section.MintBatonOut + 1
		}
	}
	e.claim(section, required, slots)
}

func (e *engine) colorSend(section model.Section) {
	slots := make([]slot, 0, len(section.Amounts))
	for i, amount := range section.Amounts {
		slots = append(slots, slot{output: 1 + i, amount: amount})
	}
	e.claim(section, 1+len(section.Amounts), slots)
}

// claim checks the planned slots against the outputs and applies them only if all fit.
func (e *engine) claim(section model.Section, required int, slots []slot) {
	if len(e.colored.Outputs) < required {
		e.fail(section, false, "Too few outputs, expected %d but got %d", required, len(e.colored.Outputs))
		return
	}
	for _, s := range slots {
		prev := e.colored.Outputs[s.output]
		if prev == nil {
			continue
		}
		if s.baton {
			e.fail(section, false,
				"Overlapping mint baton when trying to color mint baton at index %d, output is already colored with %s",
				s.output, describe(prev))
			return
		}
		if s.amount != 0 {
			e.fail(section, false,
				"Overlapping amount when trying to color %d at index %d, output is already colored with %s",
				s.amount, s.output, describe(prev))
			return
		}
	}

	entryIdx := len(e.colored.Sections)
	claimed := make([]int, 0, len(slots))
	for _, s := range slots {
		if !s.baton && s.amount == 0 {
			continue
		}
		e.colored.Outputs[s.output] = &model.ColoredValue{
			TokenID:     section.TokenID,
			TokenType:   section.TokenType,
			Amount:      s.amount,
			IsMintBaton: s.baton,
			EntryIdx:    entryIdx,
		}
		claimed = append(claimed, s.output)
	}
	e.accept(section, claimed)
}

func (e *engine) colorBurn(section model.Section) {
	for idx, prev := range e.burns {
		if prev.TokenID == section.TokenID {
			e.fail(section, false, "Duplicate intentional burn token_id %s, found in burn #%d and #%d",
				section.TokenID, idx, len(e.burns))
			return
		}
	}
	e.burns = append(e.burns, section)
	e.events = append(e.events, event{kind: eventBurn, section: section})
}

func (e *engine) accept(section model.Section, outputs []int) {
	e.colored.Sections = append(e.colored.Sections, Section{
		Section:  section,
		EntryIdx: len(e.colored.Sections),
		Outputs:  outputs,
	})
}

func describe(v *model.ColoredValue) string {
	what := strconv.FormatUint(v.Amount, 10)
	if v.IsMintBaton {
		what = "mint baton"
	}
	return fmt.Sprintf("%s of %s (%s)", what, v.TokenID, v.TokenType)
}

// buildEntries lays out entries: successful sections first, then tokens only named by
// burns or failures in first-seen order.
func (e *engine) buildEntries() {
	c := e.colored
	c.Entries = make([]model.TokenEntry, 0, len(c.Sections)+len(e.events))
	for _, s := range c.Sections {
		c.Entries = append(c.Entries, model.TokenEntry{
			TokenID:     s.TokenID,
			TokenType:   s.TokenType,
			TxKind:      s.TxKind,
			GenesisInfo: s.GenesisInfo,
		})
	}

	var umbrella []event
	for _, ev := range e.events {
		switch {
		case ev.kind == eventBurn:
			idx := e.entryFor(ev.section, model.TxKindBurn)
			c.Entries[idx].IntentionalBurnAmount = ev.section.IntentionalBurnAmount
		case ev.umbrella:
			umbrella = append(umbrella, ev)
		default:
			idx := e.entryFor(ev.section, model.TxKindNone)
			e.addFailure(idx, ev)
		}
	}
	for _, ev := range umbrella {
		idx := 0
		if len(c.Entries) == 0 {
			idx = e.entryFor(ev.section, model.TxKindNone)
		}
		e.addFailure(idx, ev)
	}
	for i := range c.Entries {
		failures := c.Entries[i].FailedColorings
		sort.SliceStable(failures, func(a, b int) bool {
			return failures[a].PushdataIdx < failures[b].PushdataIdx
		})
	}
}

func (e *engine) addFailure(entryIdx int, ev event) {
	entry := &e.colored.Entries[entryIdx]
	entry.FailedColorings = append(entry.FailedColorings, model.Failure{
		PushdataIdx: ev.section.PushdataIdx,
		Message:     ev.message,
	})
}

// entryFor returns the entry of the section's token, appending one of the given kind if absent.
func (e *engine) entryFor(section model.Section, kind model.TxKind) int {
	c := e.colored
	for i := range c.Entries {
		entry := c.Entries[i]
		if entry.TxKind != model.TxKindUnknown && entry.TokenID == section.TokenID && entry.TokenType == section.TokenType {
			if entry.TxKind == model.TxKindNone {
				c.Entries[i].TxKind = kind
			}
			return i
		}
	}
	c.Entries = append(c.Entries, model.TokenEntry{
		TokenID:   section.TokenID,
		TokenType: section.TokenType,
		TxKind:    kind,
	})
	return len(c.Entries) - 1
}
