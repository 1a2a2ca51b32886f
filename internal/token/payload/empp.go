package payload

import "github.com/btcsuite/btcd/txscript"

// parseEMPP extracts the pushdata list following OP_RETURN OP_RESERVED. A bare marker
// yields no pushes.
func parseEMPP(ops []op) ([][]byte, error) {
	switch {
	case len(ops) == 0 || ops[0].code != txscript.OP_RETURN:
		return nil, failf("Missing OP_RETURN")
	case len(ops) == 1:
		return nil, failf("Empty OP_RETURN")
	case ops[1].code != txscript.OP_RESERVED:
		return nil, failf("Missing OP_RESERVED")
	}
	pushes := make([][]byte, 0, len(ops)-2)
	for _, o := range ops[2:] {
		if err := checkEMPPPush(o); err != nil {
			return nil, err
		}
		pushes = append(pushes, o.data)
	}
	return pushes, nil
}

func checkEMPPPush(o op) error {
	size := len(o.data)
	switch {
	case o.code == txscript.OP_0,
		o.code == txscript.OP_PUSHDATA4,
		o.code >= txscript.OP_1NEGATE && o.code <= txscript.OP_16:
		return failf("Invalid push opcode %s", opcodeName(o.code))
	case !o.isPush():
		return failf("Invalid non-push opcode %s", opcodeName(o.code))
	case o.code <= txscript.OP_DATA_75:
		if size < 1 || size > 75 {
			return invalidSize(o)
		}
	case o.code == txscript.OP_PUSHDATA1:
		if size < 76 || size > 0xff {
			return invalidSize(o)
		}
	case o.code == txscript.OP_PUSHDATA2:
		if size < 0x100 || size > 0xffff {
			return invalidSize(o)
		}
	}
	return nil
}

func invalidSize(o op) error {
	return failf("Invalid payload size %d for opcode %s", len(o.data), opcodeName(o.code))
}
