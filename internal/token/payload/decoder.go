// Package payload decodes token payloads carried in the first output of a transaction.
package payload

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// failure is a protocol diagnostic. Its text is part of the decoded result.
type failure string

func (f failure) Error() string { return string(f) }

func failf(format string, args ...any) error {
	return failure(fmt.Sprintf(format, args...))
}

// Decode classifies and parses the payload of a transaction's first output.
// It never fails: unreadable payloads are reported as DecodedParseFailure.
func Decode(txid chainhash.Hash, outputs []*wire.TxOut) model.Decoded {
	if len(outputs) == 0 || outputs[0] == nil {
		return model.Decoded{Kind: model.DecodedNoPayload}
	}
	return DecodeScript(txid, outputs[0].PkScript)
}

// DecodeScript decodes a single output script.
func DecodeScript(txid chainhash.Hash, script []byte) model.Decoded {
	if len(script) == 0 || script[0] != txscript.OP_RETURN {
		return model.Decoded{Kind: model.DecodedNoPayload}
	}
	ops, err := tokenize(script)
	if err != nil {
		if len(script) > 1 && script[1] == txscript.OP_RESERVED {
			return parseFailure("Invalid EMPP output: Failed parsing script: %v", err)
		}
		return model.Decoded{Kind: model.DecodedNoPayload}
	}
	if len(ops) < 2 {
		return model.Decoded{Kind: model.DecodedNoPayload}
	}

	switch {
	case ops[1].code == txscript.OP_RESERVED:
		return decodeMultiSection(txid, ops)
	case isSLP(ops):
		section, err := parseSLP(txid, ops)
		if err != nil {
			return parseFailure("%v", err)
		}
		return model.Decoded{Kind: model.DecodedLegacy, Sections: []model.Section{section}}
	case ops[1].isPush() && isALPSection(ops[1].data):
		return parseFailure("Missing OP_RESERVED, but got %s", opcodeName(ops[1].code))
	default:
		return model.Decoded{Kind: model.DecodedNoPayload}
	}
}

func decodeMultiSection(txid chainhash.Hash, ops []op) model.Decoded {
	pushes, err := parseEMPP(ops)
	if err != nil {
		return parseFailure("Invalid EMPP output: %v", err)
	}
	sections := make([]model.Section, 0, len(pushes))
	for idx, pushdata := range pushes {
		if !isALPSection(pushdata) {
			continue
		}
		section, err := parseALPSection(txid, idx, pushdata)
		if err != nil {
			return parseFailure("pushdata idx %d: %v", idx, err)
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		return model.Decoded{Kind: model.DecodedNoPayload}
	}
	return model.Decoded{Kind: model.DecodedMultiSection, Sections: sections}
}

func parseFailure(format string, args ...any) model.Decoded {
	return model.Decoded{Kind: model.DecodedParseFailure, Message: fmt.Sprintf(format, args...)}
}
