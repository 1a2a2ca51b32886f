package model

import "time"

// Coin names the chain a token index is built for.
type Coin string

// Network names the network of a coin.
type Network string

var (
	XEC Coin = "XEC"
	BCH Coin = "BCH"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)

// TokenBlock records a block whose transactions have been colored.
type TokenBlock struct {
	Coin       Coin
	Network    Network
	Height     uint64
	Hash       string
	PrevHash   string
	Timestamp  time.Time
	TxCount    uint32
	TokenTxs   uint32
	InvalidTxs uint32
}

// TokenEntryRow is the persisted form of a TokenEntry.
type TokenEntryRow struct {
	Coin            Coin
	Network         Network
	BlockHeight     uint64
	TxID            string
	EntryIdx        uint32
	TokenID         string
	Protocol        string
	TokenType       uint16
	TxKind          string
	GroupTokenID    string
	IntentionalBurn uint64
	ActualBurn      string
	BurnsMintBatons bool
	IsInvalid       bool
	BurnSummary     string
	FailedColorings []string
	// VaultScripthash is set on GENESIS entries of MintVault tokens.
	VaultScripthash string
}

// ColoredOutputRow is the persisted form of a colored output.
type ColoredOutputRow struct {
	Coin        Coin
	Network     Network
	BlockHeight uint64
	TxID        string
	Index       uint32
	TokenID     string
	Protocol    string
	TokenType   uint16
	Amount      uint64
	IsMintBaton bool
	EntryIdx    uint32
}

// InsertTokenBlock groups a block with its rows for batch insertion.
type InsertTokenBlock struct {
	Block   TokenBlock
	Entries []TokenEntryRow
	Outputs []ColoredOutputRow
}
