// Package model defines domain models for token coloring and indexing.
package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TokenID identifies a token. For GENESIS transactions it equals the txid.
type TokenID chainhash.Hash

// TokenIDFromTxID converts a txid into the token id it defines.
func TokenIDFromTxID(txid chainhash.Hash) TokenID {
	return TokenID(txid)
}

// TokenIDFromBigEndian builds a token id from the big-endian bytes pushed by legacy payloads.
func TokenIDFromBigEndian(b []byte) (TokenID, error) {
	if len(b) != chainhash.HashSize {
		return TokenID{}, fmt.Errorf("token id must be %d bytes, got %d", chainhash.HashSize, len(b))
	}
	var id TokenID
	for i := range b {
		id[i] = b[len(b)-1-i]
	}
	return id, nil
}

// TokenIDFromString parses the display hex form of a token id.
func TokenIDFromString(s string) (TokenID, error) {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return TokenID{}, err
	}
	return TokenID(*h), nil
}

// String returns the display hex form, identical to the defining txid.
func (id TokenID) String() string {
	return chainhash.Hash(id).String()
}

// IsZero reports whether the id is all zero, as used for unknown token types.
func (id TokenID) IsZero() bool {
	return id == TokenID{}
}

// Protocol distinguishes the two token encodings.
type Protocol uint8

const (
	// ProtocolSLP is the legacy single-message encoding.
	ProtocolSLP Protocol = iota + 1
	// ProtocolALP is the multi-section encoding carried in eMPP.
	ProtocolALP
)

func (p Protocol) String() string {
	switch p {
	case ProtocolSLP:
		return "SLP"
	case ProtocolALP:
		return "ALP"
	default:
		return "UNKNOWN"
	}
}

// Token type codes.
const (
	ALPStandard uint16 = 0x00

	SLPFungible  uint16 = 0x01
	SLPMintVault uint16 = 0x02
	SLPNft1Child uint16 = 0x41
	SLPNft1Group uint16 = 0x81
)

// TokenType is a protocol-scoped token sub-kind.
type TokenType struct {
	Protocol Protocol
	Code     uint16
}

var (
	TypeALPStandard  = TokenType{Protocol: ProtocolALP, Code: ALPStandard}
	TypeSLPFungible  = TokenType{Protocol: ProtocolSLP, Code: SLPFungible}
	TypeSLPMintVault = TokenType{Protocol: ProtocolSLP, Code: SLPMintVault}
	TypeSLPNft1Group = TokenType{Protocol: ProtocolSLP, Code: SLPNft1Group}
	TypeSLPNft1Child = TokenType{Protocol: ProtocolSLP, Code: SLPNft1Child}
)

// IsKnown reports whether tokens of this type can be colored.
func (t TokenType) IsKnown() bool {
	switch t.Protocol {
	case ProtocolALP:
		return t.Code == ALPStandard
	case ProtocolSLP:
		switch t.Code {
		case SLPFungible, SLPMintVault, SLPNft1Group, SLPNft1Child:
			return true
		}
	}
	return false
}

func (t TokenType) String() string {
	switch t.Protocol {
	case ProtocolALP:
		if t.Code == ALPStandard {
			return "ALP STANDARD (V0)"
		}
		return fmt.Sprintf("ALP UNKNOWN (0x%02x)", t.Code)
	case ProtocolSLP:
		switch t.Code {
		case SLPFungible:
			return "SLP FUNGIBLE"
		case SLPMintVault:
			return "SLP MINT VAULT"
		case SLPNft1Group:
			return "SLP NFT1 GROUP"
		case SLPNft1Child:
			return "SLP NFT1 CHILD"
		}
		return fmt.Sprintf("SLP UNKNOWN (0x%02x)", t.Code)
	}
	return "UNKNOWN"
}

// TxKind describes what a section or entry does to its token.
type TxKind uint8

const (
	// TxKindNone marks entries that have no section, e.g. tokens only seen in inputs.
	TxKindNone TxKind = iota
	TxKindGenesis
	TxKindMint
	TxKindSend
	TxKindBurn
	TxKindUnknown
)

func (k TxKind) String() string {
	switch k {
	case TxKindGenesis:
		return "GENESIS"
	case TxKindMint:
		return "MINT"
	case TxKindSend:
		return "SEND"
	case TxKindBurn:
		return "BURN"
	case TxKindUnknown:
		return "UNKNOWN"
	default:
		return "NONE"
	}
}

// Amount is a token amount in base units.
type Amount = uint64

// MaxALPAmount is the largest amount a 6-byte ALP field can carry.
const MaxALPAmount Amount = 1<<48 - 1

// ParseProtocol is the inverse of Protocol.String.
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "SLP":
		return ProtocolSLP, nil
	case "ALP":
		return ProtocolALP, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q", s)
	}
}
