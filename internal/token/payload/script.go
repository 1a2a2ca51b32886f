package payload

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// op is a single tokenized script operation.
type op struct {
	code byte
	data []byte
}

func (o op) isPush() bool {
	return o.code > txscript.OP_0 && o.code <= txscript.OP_PUSHDATA4
}

var opcodeNames = func() map[byte]string {
	aliases := map[string]struct{}{
		"OP_FALSE": {},
		"OP_TRUE":  {},
		"OP_NOP2":  {},
		"OP_NOP3":  {},
	}
	names := make(map[byte]string, len(txscript.OpcodeByName))
	for name, code := range txscript.OpcodeByName {
		if _, alias := aliases[name]; alias {
			continue
		}
		names[code] = name
	}
	return names
}()

func opcodeName(code byte) string {
	if name, ok := opcodeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", code)
}

// tokenize splits a script into operations. It stops at the first malformed push.
func tokenize(script []byte) ([]op, error) {
	ops := make([]op, 0, 8)
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		ops = append(ops, op{code: tokenizer.Opcode(), data: tokenizer.Data()})
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}
