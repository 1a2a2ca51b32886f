package payload

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

var slpLokadID = []byte("SLP\x00")

const (
	slpGenesisPushes  = 10
	slpMintPushes     = 6
	slpBurnPushes     = 5
	slpSendMinPushes  = 5
	slpSendMaxPushes  = 23
	slpMinBatonOutIdx = 2
	slpAmountLen      = 8
	slpVaultHashLen   = 20
)

func isSLP(ops []op) bool {
	return len(ops) >= 2 &&
		ops[0].code == txscript.OP_RETURN &&
		ops[1].isPush() &&
		string(ops[1].data) == string(slpLokadID)
}

// parseSLP decodes a legacy message. The caller has already matched the LOKAD id.
func parseSLP(txid chainhash.Hash, ops []op) (model.Section, error) {
	pushes := make([][]byte, 0, len(ops)-1)
	for idx, o := range ops[1:] {
		if !o.isPush() {
			if o.code == txscript.OP_0 || (o.code >= txscript.OP_1NEGATE && o.code <= txscript.OP_16) {
				return model.Section{}, failf("Disallowed push: %s at op %d", opcodeName(o.code), idx+1)
			}
			return model.Section{}, failf("Non-push op: %s at op %d", opcodeName(o.code), idx+1)
		}
		pushes = append(pushes, o.data)
	}
	if len(pushes) < 3 {
		return model.Section{}, failf("Too few pushes, expected at least 3 but only got %d", len(pushes))
	}
	typeBytes := pushes[1]
	if len(typeBytes) == 0 || len(typeBytes) > 2 {
		return model.Section{}, failf("Token type has invalid length (1,2 != %d): %x", len(typeBytes), typeBytes)
	}

	section := model.Section{
		TokenType: model.TokenType{Protocol: model.ProtocolSLP, Code: slpTypeCode(typeBytes)},
	}
	if len(typeBytes) != 1 || !section.TokenType.IsKnown() {
		section.TxKind = model.TxKindUnknown
		return section, nil
	}

	var err error
	switch string(pushes[2]) {
	case "GENESIS":
		err = parseSLPGenesis(txid, pushes, &section)
	case "MINT":
		if section.TokenType.Code == model.SLPMintVault {
			err = parseSLPVaultMint(pushes, &section)
		} else {
			err = parseSLPMint(pushes, &section)
		}
	case "SEND":
		err = parseSLPSend(pushes, &section)
	case "BURN":
		err = parseSLPBurn(pushes, &section)
	default:
		err = failf("Invalid tx type: %q", pushes[2])
	}
	if err != nil {
		return model.Section{}, err
	}
	return section, nil
}

func slpTypeCode(b []byte) uint16 {
	if len(b) == 1 {
		return uint16(b[0])
	}
	return binary.BigEndian.Uint16(b)
}

func checkPushCount(pushes [][]byte, exact int) error {
	if len(pushes) < exact {
		return failf("Too few pushes, expected exactly %d but only got %d", exact, len(pushes))
	}
	if len(pushes) > exact {
		return failf("Pushed superfluous data: expected at most %d pushes, but got %d", exact, len(pushes))
	}
	return nil
}

func checkPushRange(pushes [][]byte, lowest, highest int) error {
	if len(pushes) < lowest {
		return failf("Too few pushes, expected at least %d but only got %d", lowest, len(pushes))
	}
	if len(pushes) > highest {
		return failf("Pushed superfluous data: expected at most %d pushes, but got %d", highest, len(pushes))
	}
	return nil
}

func invalidField(field string, actual int, expected ...int) error {
	parts := make([]string, 0, len(expected))
	for _, e := range expected {
		parts = append(parts, strconv.Itoa(e))
	}
	return failf("Field has invalid length: expected one of [%s] but got %d for field %s",
		strings.Join(parts, ", "), actual, field)
}

func slpAmount(b []byte, field string) (model.Amount, error) {
	if len(b) != slpAmountLen {
		return 0, invalidField(field, len(b), slpAmountLen)
	}
	return binary.BigEndian.Uint64(b), nil
}

func slpTokenID(b []byte) (model.TokenID, error) {
	if len(b) != chainhash.HashSize {
		return model.TokenID{}, invalidField("token_id", len(b), chainhash.HashSize)
	}
	return model.TokenIDFromBigEndian(b)
}

func slpBatonOut(b []byte) (int, error) {
	switch len(b) {
	case 0:
		return 0, nil
	case 1:
		if b[0] < slpMinBatonOutIdx {
			return 0, failf("Mint baton at invalid output index, must be between 2 and 255, but got %d", b[0])
		}
		return int(b[0]), nil
	default:
		return 0, invalidField("mint_baton_out_idx", len(b), 0, 1)
	}
}

func parseSLPGenesis(txid chainhash.Hash, pushes [][]byte, section *model.Section) error {
	if err := checkPushCount(pushes, slpGenesisPushes); err != nil {
		return err
	}
	info := &model.GenesisInfo{
		Ticker: pushes[3],
		Name:   pushes[4],
		URL:    pushes[5],
		Hash:   pushes[6],
	}
	if len(info.Hash) != 0 && len(info.Hash) != chainhash.HashSize {
		return invalidField("token_document_hash", len(info.Hash), 0, chainhash.HashSize)
	}
	decimals := pushes[7]
	if len(decimals) != 1 {
		return invalidField("decimals", len(decimals), 1)
	}

	var (
		batonOut int
		err      error
	)
	if section.TokenType.Code == model.SLPMintVault {
		if len(pushes[8]) != slpVaultHashLen {
			return invalidField("mint_vault_scripthash", len(pushes[8]), slpVaultHashLen)
		}
		info.VaultScripthash = pushes[8]
	} else if batonOut, err = slpBatonOut(pushes[8]); err != nil {
		return err
	}

	quantity, err := slpAmount(pushes[9], "initial_quantity")
	if err != nil {
		return err
	}
	if decimals[0] > maxDecimals {
		return failf("Too many decimals, only max. 9 allowed, but got %d", decimals[0])
	}
	info.Decimals = decimals[0]

	if section.TokenType.Code == model.SLPNft1Child {
		if batonOut != 0 {
			return failf("NFT1 Child Genesis cannot have mint baton")
		}
		if quantity != 1 {
			return failf("Invalid NFT1 Child Genesis initial quantity, expected 1 but got %d", quantity)
		}
		if info.Decimals != 0 {
			return failf("Invalid NFT1 Child Genesis decimals, expected 0 but got %d", info.Decimals)
		}
	}

	section.TxKind = model.TxKindGenesis
	section.TokenID = model.TokenIDFromTxID(txid)
	section.GenesisInfo = info
	section.Amounts = []model.Amount{quantity}
	section.MintBatonOut = batonOut
	return nil
}

func parseSLPMint(pushes [][]byte, section *model.Section) error {
	if err := checkPushCount(pushes, slpMintPushes); err != nil {
		return err
	}
	tokenID, err := slpTokenID(pushes[3])
	if err != nil {
		return err
	}
	batonOut, err := slpBatonOut(pushes[4])
	if err != nil {
		return err
	}
	quantity, err := slpAmount(pushes[5], "additional_quantity")
	if err != nil {
		return err
	}
	section.TxKind = model.TxKindMint
	section.TokenID = tokenID
	section.Amounts = []model.Amount{quantity}
	section.MintBatonOut = batonOut
	return nil
}

func parseSLPVaultMint(pushes [][]byte, section *model.Section) error {
	if err := checkPushRange(pushes, slpSendMinPushes, slpSendMaxPushes); err != nil {
		return err
	}
	tokenID, err := slpTokenID(pushes[3])
	if err != nil {
		return err
	}
	amounts, err := slpAmounts(pushes[4:], "additional_quantity")
	if err != nil {
		return err
	}
	section.TxKind = model.TxKindMint
	section.TokenID = tokenID
	section.Amounts = amounts
	return nil
}

func parseSLPSend(pushes [][]byte, section *model.Section) error {
	if err := checkPushRange(pushes, slpSendMinPushes, slpSendMaxPushes); err != nil {
		return err
	}
	tokenID, err := slpTokenID(pushes[3])
	if err != nil {
		return err
	}
	amounts, err := slpAmounts(pushes[4:], "output_quantity")
	if err != nil {
		return err
	}
	section.TxKind = model.TxKindSend
	section.TokenID = tokenID
	section.Amounts = amounts
	return nil
}

func parseSLPBurn(pushes [][]byte, section *model.Section) error {
	if err := checkPushCount(pushes, slpBurnPushes); err != nil {
		return err
	}
	tokenID, err := slpTokenID(pushes[3])
	if err != nil {
		return err
	}
	quantity, err := slpAmount(pushes[4], "token_burn_quantity")
	if err != nil {
		return err
	}
	section.TxKind = model.TxKindBurn
	section.TokenID = tokenID
	section.IntentionalBurnAmount = quantity
	return nil
}

func slpAmounts(pushes [][]byte, field string) ([]model.Amount, error) {
	amounts := make([]model.Amount, 0, len(pushes))
	for i, push := range pushes {
		amount, err := slpAmount(push, fmt.Sprintf("%s%d", field, i+1))
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}
