package payload

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

var alpMagic = []byte("SLP2")

const (
	alpMaxSize   = 127
	alpAmountLen = 6
	maxDecimals  = 9
)

// reader consumes a section byte by byte.
type reader struct {
	data []byte
}

func (r *reader) take(n int) ([]byte, error) {
	if len(r.data) < n {
		return nil, failf("Not enough bytes: expected %d but got %d", n, len(r.data))
	}
	b := r.data[:n]
	r.data = r.data[n:]
	return b, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) size() (int, error) {
	n, err := r.u8()
	if err != nil {
		return 0, err
	}
	if n > alpMaxSize {
		return 0, failf("Size out of range: %d, must be 0-%d", n, alpMaxSize)
	}
	return int(n), nil
}

func (r *reader) varBytes() ([]byte, error) {
	n, err := r.size()
	if err != nil {
		return nil, err
	}
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func (r *reader) amount() (model.Amount, error) {
	b, err := r.take(alpAmountLen)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (r *reader) amounts() ([]model.Amount, error) {
	n, err := r.size()
	if err != nil {
		return nil, err
	}
	amounts := make([]model.Amount, 0, n)
	for i := 0; i < n; i++ {
		amount, err := r.amount()
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

func (r *reader) tokenID() (model.TokenID, error) {
	b, err := r.take(chainhash.HashSize)
	if err != nil {
		return model.TokenID{}, err
	}
	var id model.TokenID
	copy(id[:], b)
	return id, nil
}

func isALPSection(pushdata []byte) bool {
	return bytes.HasPrefix(pushdata, alpMagic)
}

// parseALPSection decodes a single pushdata already known to carry the ALP magic.
func parseALPSection(txid chainhash.Hash, pushdataIdx int, pushdata []byte) (model.Section, error) {
	r := &reader{data: pushdata[len(alpMagic):]}
	code, err := r.u8()
	if err != nil {
		return model.Section{}, err
	}
	section := model.Section{
		PushdataIdx: pushdataIdx,
		TokenType:   model.TokenType{Protocol: model.ProtocolALP, Code: uint16(code)},
	}
	if !section.TokenType.IsKnown() {
		section.TxKind = model.TxKindUnknown
		return section, nil
	}

	txType, err := r.varBytes()
	if err != nil {
		return model.Section{}, err
	}
	switch string(txType) {
	case "GENESIS":
		section.TxKind = model.TxKindGenesis
		section.TokenID = model.TokenIDFromTxID(txid)
		if section.GenesisInfo, err = parseALPGenesisInfo(r); err != nil {
			return model.Section{}, err
		}
		if err := parseALPMintData(r, &section); err != nil {
			return model.Section{}, err
		}
	case "MINT":
		section.TxKind = model.TxKindMint
		if section.TokenID, err = r.tokenID(); err != nil {
			return model.Section{}, err
		}
		if err := parseALPMintData(r, &section); err != nil {
			return model.Section{}, err
		}
	case "SEND":
		section.TxKind = model.TxKindSend
		if section.TokenID, err = r.tokenID(); err != nil {
			return model.Section{}, err
		}
		if section.Amounts, err = r.amounts(); err != nil {
			return model.Section{}, err
		}
	case "BURN":
		section.TxKind = model.TxKindBurn
		if section.TokenID, err = r.tokenID(); err != nil {
			return model.Section{}, err
		}
		if section.IntentionalBurnAmount, err = r.amount(); err != nil {
			return model.Section{}, err
		}
	default:
		return model.Section{}, failf("Unknown tx type: %q", txType)
	}

	if len(r.data) > 0 {
		return model.Section{}, failf("Leftover bytes: %x", r.data)
	}
	return section, nil
}

func parseALPGenesisInfo(r *reader) (*model.GenesisInfo, error) {
	var (
		info model.GenesisInfo
		err  error
	)
	for _, field := range []*[]byte{&info.Ticker, &info.Name, &info.URL, &info.Data, &info.AuthPubkey} {
		if *field, err = r.varBytes(); err != nil {
			return nil, err
		}
	}
	if info.Decimals, err = r.u8(); err != nil {
		return nil, err
	}
	if info.Decimals > maxDecimals {
		return nil, failf("Decimals out of range: %d, must be 0-%d", info.Decimals, maxDecimals)
	}
	return &info, nil
}

func parseALPMintData(r *reader, section *model.Section) error {
	var err error
	if section.Amounts, err = r.amounts(); err != nil {
		return err
	}
	if section.NumBatons, err = r.size(); err != nil {
		return err
	}
	return nil
}
