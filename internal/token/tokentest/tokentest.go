// Package tokentest builds token payloads and transactions for tests.
package tokentest

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// DustValue is the satoshi value given to every non-payload output.
const DustValue = 546

var slpLokadID = []byte("SLP\x00")

func varBytes(b []byte) []byte {
	return append([]byte{byte(len(b))}, b...)
}

func alpAmounts(amounts ...uint64) []byte {
	out := []byte{byte(len(amounts))}
	for _, amount := range amounts {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], amount)
		out = append(out, buf[:6]...)
	}
	return out
}

func alpHeader(txType string) []byte {
	out := append([]byte("SLP2"), byte(model.ALPStandard))
	return append(out, varBytes([]byte(txType))...)
}

// ALPGenesis is an ALP STANDARD GENESIS section.
func ALPGenesis(ticker string, decimals byte, batons byte, amounts ...uint64) []byte {
	out := alpHeader("GENESIS")
	out = append(out, varBytes([]byte(ticker))...)
	out = append(out, varBytes([]byte(ticker))...)
	out = append(out, varBytes(nil)...)
	out = append(out, varBytes(nil)...)
	out = append(out, varBytes(nil)...)
	out = append(out, decimals)
	out = append(out, alpAmounts(amounts...)...)
	return append(out, batons)
}

// ALPMint is an ALP STANDARD MINT section.
func ALPMint(tokenID model.TokenID, batons byte, amounts ...uint64) []byte {
	out := alpHeader("MINT")
	out = append(out, tokenID[:]...)
	out = append(out, alpAmounts(amounts...)...)
	return append(out, batons)
}

// ALPSend is an ALP STANDARD SEND section.
func ALPSend(tokenID model.TokenID, amounts ...uint64) []byte {
	out := alpHeader("SEND")
	out = append(out, tokenID[:]...)
	return append(out, alpAmounts(amounts...)...)
}

// ALPBurn is an ALP STANDARD BURN section.
func ALPBurn(tokenID model.TokenID, amount uint64) []byte {
	out := alpHeader("BURN")
	out = append(out, tokenID[:]...)
	return append(out, alpAmounts(amount)[1:]...)
}

// EMPP wraps sections into an OP_RETURN OP_RESERVED script.
func EMPP(sections ...[]byte) []byte {
	builder := txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN).AddOp(txscript.OP_RESERVED)
	for _, section := range sections {
		builder.AddData(section)
	}
	script, err := builder.Script()
	if err != nil {
		panic(err)
	}
	return script
}

// SLP encodes legacy pushes with plain push opcodes.
func SLP(pushes ...[]byte) []byte {
	out := []byte{txscript.OP_RETURN}
	for _, data := range pushes {
		switch {
		case len(data) == 0:
			out = append(out, txscript.OP_PUSHDATA1, 0)
		case len(data) <= txscript.OP_DATA_75:
			out = append(out, byte(len(data)))
			out = append(out, data...)
		default:
			out = append(out, txscript.OP_PUSHDATA1, byte(len(data)))
			out = append(out, data...)
		}
	}
	return out
}

func be64(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

func beTokenID(id model.TokenID) []byte {
	out := make([]byte, len(id))
	for i := range id {
		out[i] = id[len(id)-1-i]
	}
	return out
}

// SLPSend is a legacy SEND of the given token type.
func SLPSend(tokenType byte, tokenID model.TokenID, amounts ...uint64) []byte {
	pushes := [][]byte{slpLokadID, {tokenType}, []byte("SEND"), beTokenID(tokenID)}
	for _, amount := range amounts {
		pushes = append(pushes, be64(amount))
	}
	return SLP(pushes...)
}

// SLPVaultGenesis is a legacy MintVault GENESIS guarded by vaultHash.
func SLPVaultGenesis(vaultHash []byte, quantity uint64) []byte {
	return SLP(slpLokadID, []byte{byte(model.SLPMintVault)}, []byte("GENESIS"),
		[]byte("VLT"), []byte("Vault"), nil, nil, []byte{0}, vaultHash, be64(quantity))
}

// SLPVaultMint is a legacy MintVault MINT.
func SLPVaultMint(tokenID model.TokenID, amounts ...uint64) []byte {
	pushes := [][]byte{slpLokadID, {byte(model.SLPMintVault)}, []byte("MINT"), beTokenID(tokenID)}
	for _, amount := range amounts {
		pushes = append(pushes, be64(amount))
	}
	return SLP(pushes...)
}

// P2SH is the OP_HASH160 <hash> OP_EQUAL script of a 20-byte scripthash.
func P2SH(hash []byte) []byte {
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

// Tx builds a transaction whose first output carries script, followed by numOutputs-1
// dust outputs, spending prevs in order.
func Tx(script []byte, numOutputs int, prevs ...wire.OutPoint) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	for _, prev := range prevs {
		tx.AddTxIn(wire.NewTxIn(&prev, nil, nil))
	}
	tx.AddTxOut(wire.NewTxOut(0, script))
	for i := 1; i < numOutputs; i++ {
		tx.AddTxOut(wire.NewTxOut(DustValue, []byte{txscript.OP_TRUE}))
	}
	return tx
}
