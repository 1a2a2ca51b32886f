package model

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// EntryRows flattens the entries of a colored tx for persistence.
func EntryRows(coin Coin, network Network, height uint64, tx *ColoredTx) []TokenEntryRow {
	rows := make([]TokenEntryRow, 0, len(tx.Entries))
	txid := tx.TxID.String()
	for i, entry := range tx.Entries {
		row := TokenEntryRow{
			Coin:            coin,
			Network:         network,
			BlockHeight:     height,
			TxID:            txid,
			EntryIdx:        uint32(i),
			TokenID:         entry.TokenID.String(),
			Protocol:        entry.TokenType.Protocol.String(),
			TokenType:       entry.TokenType.Code,
			TxKind:          entry.TxKind.String(),
			IntentionalBurn: entry.IntentionalBurnAmount,
			ActualBurn:      "0",
			BurnsMintBatons: entry.BurnsMintBatons,
			IsInvalid:       entry.IsInvalid,
			BurnSummary:     entry.BurnSummary,
		}
		if entry.ActualBurnAmount != nil {
			row.ActualBurn = entry.ActualBurnAmount.String()
		}
		if entry.GroupTokenID != nil {
			row.GroupTokenID = entry.GroupTokenID.String()
		}
		if entry.GenesisInfo != nil && len(entry.GenesisInfo.VaultScripthash) > 0 {
			row.VaultScripthash = hex.EncodeToString(entry.GenesisInfo.VaultScripthash)
		}
		for _, failure := range entry.FailedColorings {
			row.FailedColorings = append(row.FailedColorings,
				strconv.Itoa(failure.PushdataIdx)+": "+failure.Message)
		}
		rows = append(rows, row)
	}
	return rows
}

// OutputRows lists the colored outputs of a tx for persistence. Uncolored outputs are skipped.
func OutputRows(coin Coin, network Network, height uint64, tx *ColoredTx) []ColoredOutputRow {
	rows := make([]ColoredOutputRow, 0, len(tx.Outputs))
	txid := tx.TxID.String()
	for i, v := range tx.Outputs {
		if v == nil {
			continue
		}
		rows = append(rows, ColoredOutputRow{
			Coin:        coin,
			Network:     network,
			BlockHeight: height,
			TxID:        txid,
			Index:       uint32(i),
			TokenID:     v.TokenID.String(),
			Protocol:    v.TokenType.Protocol.String(),
			TokenType:   v.TokenType.Code,
			Amount:      v.Amount,
			IsMintBaton: v.IsMintBaton,
			EntryIdx:    uint32(v.EntryIdx),
		})
	}
	return rows
}

// Value converts a persisted output back into its color.
func (r ColoredOutputRow) Value() (*ColoredValue, error) {
	id, err := TokenIDFromString(r.TokenID)
	if err != nil {
		return nil, fmt.Errorf("token id of %s:%d: %w", r.TxID, r.Index, err)
	}
	protocol, err := ParseProtocol(r.Protocol)
	if err != nil {
		return nil, fmt.Errorf("protocol of %s:%d: %w", r.TxID, r.Index, err)
	}
	return &ColoredValue{
		TokenID:     id,
		TokenType:   TokenType{Protocol: protocol, Code: r.TokenType},
		Amount:      r.Amount,
		IsMintBaton: r.IsMintBaton,
		EntryIdx:    int(r.EntryIdx),
	}, nil
}
