package model

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// GenesisInfo carries the descriptive fields of a GENESIS section.
type GenesisInfo struct {
	Ticker     []byte
	Name       []byte
	URL        []byte
	Data       []byte
	AuthPubkey []byte
	Hash       []byte
	// VaultScripthash is the 20-byte P2SH hash guarding MintVault MINTs.
	VaultScripthash []byte
	Decimals        uint8
}

// Section is one decoded token instruction.
type Section struct {
	PushdataIdx int
	TokenID     TokenID
	TokenType   TokenType
	TxKind      TxKind
	Amounts     []Amount
	// NumBatons is the count of ALP mint batons following the amounts.
	NumBatons int
	// MintBatonOut is the explicit SLP baton output, zero when absent.
	MintBatonOut          int
	IntentionalBurnAmount Amount
	GenesisInfo           *GenesisInfo
}

// DecodedKind describes what the decoder found in the first output.
type DecodedKind uint8

const (
	DecodedNoPayload DecodedKind = iota
	DecodedParseFailure
	DecodedLegacy
	DecodedMultiSection
)

func (k DecodedKind) String() string {
	switch k {
	case DecodedParseFailure:
		return "parse_failure"
	case DecodedLegacy:
		return "slp"
	case DecodedMultiSection:
		return "alp"
	default:
		return "none"
	}
}

// Decoded is the payload decoder result.
type Decoded struct {
	Kind     DecodedKind
	Message  string
	Sections []Section
}

// Failure is a message attributed to a pushdata index. Index -1 means payload level.
type Failure struct {
	PushdataIdx int
	Message     string
}

// TokenEntry summarizes what a transaction did to one token.
type TokenEntry struct {
	TokenID               TokenID
	TokenType             TokenType
	TxKind                TxKind
	GroupTokenID          *TokenID
	GenesisInfo           *GenesisInfo
	IntentionalBurnAmount Amount
	ActualBurnAmount      *big.Int
	BurnsMintBatons       bool
	IsInvalid             bool
	BurnSummary           string
	FailedColorings       []Failure
}

// ColoredValue is the token color attached to an input or output.
type ColoredValue struct {
	TokenID     TokenID
	TokenType   TokenType
	Amount      Amount
	IsMintBaton bool
	EntryIdx    int
}

// ColoredTx is the complete coloring result of one transaction.
type ColoredTx struct {
	TxID           chainhash.Hash
	Entries        []TokenEntry
	Inputs         []*ColoredValue
	Outputs        []*ColoredValue
	FailedParsings []Failure
}

// HasInvalidEntries reports whether any entry violates burn policy.
func (tx *ColoredTx) HasInvalidEntries() bool {
	for i := range tx.Entries {
		if tx.Entries[i].IsInvalid {
			return true
		}
	}
	return false
}

// IsColored reports whether the transaction touches tokens at all.
func (tx *ColoredTx) IsColored() bool {
	return len(tx.Entries) > 0 || len(tx.FailedParsings) > 0
}

// SpentOutput is the pre-resolved state of an output spent by a transaction input.
type SpentOutput struct {
	Color *ColoredValue
	// Script and Confirmed are only required when a MintVault MINT is checked.
	Script    []byte
	Confirmed bool
}

// ResolvedInputs bundles everything the core needs to know about a transaction's inputs.
type ResolvedInputs struct {
	Spent []SpentOutput
	// VaultScripthashes maps MintVault token ids to the scripthash from their genesis.
	VaultScripthashes map[TokenID][]byte
}

// Outpoint re-exports the wire outpoint for cache keys.
type Outpoint = wire.OutPoint
