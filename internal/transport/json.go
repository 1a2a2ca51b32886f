package transport

import (
	"encoding/hex"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/samber/lo"
)

type coloredTxJSON struct {
	TxID           string              `json:"txid"`
	Entries        []tokenEntryJSON    `json:"entries"`
	Inputs         []*coloredValueJSON `json:"inputs"`
	Outputs        []*coloredValueJSON `json:"outputs"`
	FailedParsings []failureJSON       `json:"failed_parsings"`
}

type tokenEntryJSON struct {
	TokenID               string           `json:"token_id"`
	Protocol              string           `json:"protocol"`
	TokenType             uint16           `json:"token_type"`
	TxKind                string           `json:"tx_kind"`
	GroupTokenID          string           `json:"group_token_id,omitempty"`
	GenesisInfo           *genesisInfoJSON `json:"genesis_info,omitempty"`
	IntentionalBurnAmount string           `json:"intentional_burn_amount"`
	ActualBurnAmount      string           `json:"actual_burn_amount"`
	BurnsMintBatons       bool             `json:"burns_mint_batons"`
	IsInvalid             bool             `json:"is_invalid"`
	BurnSummary           string           `json:"burn_summary"`
	FailedColorings       []failureJSON    `json:"failed_colorings"`
}

type genesisInfoJSON struct {
	Ticker          string `json:"ticker"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	Data            string `json:"data,omitempty"`
	AuthPubkey      string `json:"auth_pubkey,omitempty"`
	Hash            string `json:"hash,omitempty"`
	VaultScripthash string `json:"vault_scripthash,omitempty"`
	Decimals        uint8  `json:"decimals"`
}

type coloredValueJSON struct {
	TokenID     string `json:"token_id"`
	Protocol    string `json:"protocol"`
	TokenType   uint16 `json:"token_type"`
	Amount      string `json:"amount"`
	IsMintBaton bool   `json:"is_mint_baton"`
	EntryIdx    int    `json:"entry_idx"`
}

type failureJSON struct {
	PushdataIdx int    `json:"pushdata_idx"`
	Message     string `json:"message"`
}

// Amounts are strings: SLP amounts use the full uint64 range.
func newColoredTxJSON(tx *model.ColoredTx) coloredTxJSON {
	return coloredTxJSON{
		TxID:           tx.TxID.String(),
		Entries:        lo.Map(tx.Entries, func(e model.TokenEntry, _ int) tokenEntryJSON { return newTokenEntryJSON(e) }),
		Inputs:         lo.Map(tx.Inputs, func(v *model.ColoredValue, _ int) *coloredValueJSON { return newColoredValueJSON(v) }),
		Outputs:        lo.Map(tx.Outputs, func(v *model.ColoredValue, _ int) *coloredValueJSON { return newColoredValueJSON(v) }),
		FailedParsings: newFailuresJSON(tx.FailedParsings),
	}
}

func newTokenEntryJSON(e model.TokenEntry) tokenEntryJSON {
	out := tokenEntryJSON{
		TokenID:               e.TokenID.String(),
		Protocol:              e.TokenType.Protocol.String(),
		TokenType:             e.TokenType.Code,
		TxKind:                e.TxKind.String(),
		IntentionalBurnAmount: formatAmount(e.IntentionalBurnAmount),
		ActualBurnAmount:      "0",
		BurnsMintBatons:       e.BurnsMintBatons,
		IsInvalid:             e.IsInvalid,
		BurnSummary:           e.BurnSummary,
		FailedColorings:       newFailuresJSON(e.FailedColorings),
	}
	if e.ActualBurnAmount != nil {
		out.ActualBurnAmount = e.ActualBurnAmount.String()
	}
	if e.GroupTokenID != nil {
		out.GroupTokenID = e.GroupTokenID.String()
	}
	if g := e.GenesisInfo; g != nil {
		out.GenesisInfo = &genesisInfoJSON{
			Ticker:          string(g.Ticker),
			Name:            string(g.Name),
			URL:             string(g.URL),
			Data:            hex.EncodeToString(g.Data),
			AuthPubkey:      hex.EncodeToString(g.AuthPubkey),
			Hash:            hex.EncodeToString(g.Hash),
			VaultScripthash: hex.EncodeToString(g.VaultScripthash),
			Decimals:        g.Decimals,
		}
	}
	return out
}

func newColoredValueJSON(v *model.ColoredValue) *coloredValueJSON {
	if v == nil {
		return nil
	}
	return &coloredValueJSON{
		TokenID:     v.TokenID.String(),
		Protocol:    v.TokenType.Protocol.String(),
		TokenType:   v.TokenType.Code,
		Amount:      formatAmount(v.Amount),
		IsMintBaton: v.IsMintBaton,
		EntryIdx:    v.EntryIdx,
	}
}

func newFailuresJSON(failures []model.Failure) []failureJSON {
	return lo.Map(failures, func(f model.Failure, _ int) failureJSON {
		return failureJSON{PushdataIdx: f.PushdataIdx, Message: f.Message}
	})
}
