// Package burn reconciles colored outputs against spent inputs and reports burns.
package burn

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/coloring"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// Reconcile checks every colored section against its inputs, uncolors sections that fail,
// and computes per-token burns. The colored value is consumed and must not be reused.
func Reconcile(colored *coloring.Colored, inputs model.ResolvedInputs) *model.ColoredTx {
	r := &reconciler{
		colored: colored,
		inputs:  inputs,
		reasons: make(map[int][]string),
		tx: &model.ColoredTx{
			TxID:           colored.TxID,
			Entries:        colored.Entries,
			Outputs:        colored.Outputs,
			Inputs:         make([]*model.ColoredValue, len(inputs.Spent)),
			FailedParsings: colored.FailedParsings,
		},
	}
	r.verify()
	r.attachInputs()
	r.reconcile()
	return r.tx
}

type reconciler struct {
	colored *coloring.Colored
	inputs  model.ResolvedInputs
	tx      *model.ColoredTx
	// reasons holds verify failures per entry index.
	reasons map[int][]string
	// consumed marks inputs spent by a rule rather than burned.
	consumed map[int]struct{}
	// failed marks sections whose outputs were uncolored.
	failed map[int]struct{}
}

func sameToken(v *model.ColoredValue, id model.TokenID, typ model.TokenType) bool {
	return v != nil && v.TokenID == id && v.TokenType == typ
}

func (r *reconciler) verify() {
	for i, s := range r.colored.Sections {
		var reason string
		switch {
		case s.TxKind == model.TxKindSend:
			reason = r.verifySend(s)
		case s.TxKind == model.TxKindMint && s.TokenType == model.TypeSLPMintVault:
			reason = r.verifyVault(s)
		case s.TxKind == model.TxKindMint:
			reason = r.verifyBaton(s)
		case s.TxKind == model.TxKindGenesis && s.TokenType == model.TypeSLPNft1Child:
			reason = r.verifyNft1Group(s)
		}
		if reason == "" {
			continue
		}
		r.reasons[s.EntryIdx] = append(r.reasons[s.EntryIdx], reason)
		for _, out := range s.Outputs {
			r.tx.Outputs[out] = nil
		}
		if r.failed == nil {
			r.failed = make(map[int]struct{})
		}
		r.failed[i] = struct{}{}
	}
}

func (r *reconciler) verifySend(s coloring.Section) string {
	required := new(big.Int)
	for _, amount := range s.Amounts {
		required.Add(required, new(big.Int).SetUint64(amount))
	}
	available := new(big.Int)
	for _, spent := range r.inputs.Spent {
		if sameToken(spent.Color, s.TokenID, s.TokenType) && !spent.Color.IsMintBaton {
			available.Add(available, new(big.Int).SetUint64(spent.Color.Amount))
		}
	}
	if available.Cmp(required) < 0 {
		return fmt.Sprintf("Insufficient token input output sum: %s < %s", available, required)
	}
	return ""
}

func (r *reconciler) verifyBaton(s coloring.Section) string {
	for _, spent := range r.inputs.Spent {
		if sameToken(spent.Color, s.TokenID, s.TokenType) && spent.Color.IsMintBaton {
			return ""
		}
	}
	return "Missing MINT baton"
}

func (r *reconciler) verifyVault(s coloring.Section) string {
	hash, ok := r.inputs.VaultScripthashes[s.TokenID]
	if !ok || len(hash) == 0 {
		return "Missing MINT vault"
	}
	want, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL).
		Script()
	if err != nil {
		return "Missing MINT vault"
	}
	for _, spent := range r.inputs.Spent {
		if spent.Confirmed && bytes.Equal(spent.Script, want) {
			return ""
		}
	}
	return "Missing MINT vault"
}

func (r *reconciler) verifyNft1Group(s coloring.Section) string {
	if len(r.inputs.Spent) == 0 {
		return "Missing NFT1 Group input"
	}
	group := r.inputs.Spent[0].Color
	if group == nil || group.TokenType != model.TypeSLPNft1Group || group.IsMintBaton || group.Amount == 0 {
		return "Missing NFT1 Group input"
	}
	groupID := group.TokenID
	r.tx.Entries[s.EntryIdx].GroupTokenID = &groupID
	r.consumed = map[int]struct{}{0: {}}
	return ""
}

// attachInputs copies input colors and links them to entries, appending entries for
// tokens that only appear in inputs.
func (r *reconciler) attachInputs() {
	for i, spent := range r.inputs.Spent {
		if spent.Color == nil {
			continue
		}
		v := *spent.Color
		v.EntryIdx = r.entryFor(v.TokenID, v.TokenType)
		r.tx.Inputs[i] = &v
	}
}

func (r *reconciler) entryFor(id model.TokenID, typ model.TokenType) int {
	for i := range r.tx.Entries {
		entry := r.tx.Entries[i]
		if entry.TxKind != model.TxKindUnknown && entry.TokenID == id && entry.TokenType == typ {
			return i
		}
	}
	r.tx.Entries = append(r.tx.Entries, model.TokenEntry{TokenID: id, TokenType: typ})
	return len(r.tx.Entries) - 1
}

type tally struct {
	in          *big.Int
	out         *big.Int
	batonsIn    bool
	mintSuccess bool
}

func (r *reconciler) reconcile() {
	tallies := make([]tally, len(r.tx.Entries))
	for i := range tallies {
		tallies[i] = tally{in: new(big.Int), out: new(big.Int)}
	}
	for i, v := range r.tx.Inputs {
		if v == nil {
			continue
		}
		if _, ok := r.consumed[i]; ok {
			continue
		}
		if v.IsMintBaton {
			tallies[v.EntryIdx].batonsIn = true
			continue
		}
		tallies[v.EntryIdx].in.Add(tallies[v.EntryIdx].in, new(big.Int).SetUint64(v.Amount))
	}
	for i, s := range r.colored.Sections {
		if _, failed := r.failed[i]; failed {
			continue
		}
		switch s.TxKind {
		case model.TxKindMint:
			tallies[s.EntryIdx].mintSuccess = true
		case model.TxKindSend:
			for _, out := range s.Outputs {
				v := r.tx.Outputs[out]
				tallies[s.EntryIdx].out.Add(tallies[s.EntryIdx].out, new(big.Int).SetUint64(v.Amount))
			}
		}
	}

	for i := range r.tx.Entries {
		entry := &r.tx.Entries[i]
		t := tallies[i]
		actual := new(big.Int).Sub(t.in, t.out)
		if actual.Sign() < 0 {
			panic(fmt.Sprintf("negative burn %s for token %s in tx %s", actual, entry.TokenID, r.tx.TxID))
		}
		entry.ActualBurnAmount = actual
		entry.BurnsMintBatons = t.batonsIn && !t.mintSuccess
		// Verify failures uncolor outputs but only burns decide validity.
		entry.IsInvalid = entry.BurnsMintBatons ||
			(actual.Sign() > 0 && actual.Cmp(new(big.Int).SetUint64(entry.IntentionalBurnAmount)) != 0)
		entry.BurnSummary = summarize(entry, r.reasons[i])
	}
}
