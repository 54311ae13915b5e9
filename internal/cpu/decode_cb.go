package cpu

import "gone/mask"

// DecodeCB maps an 8-bit CB-table opcode to its instruction variant.
// The CB table is fully regular: bits 0-2 select the register (or
// HL-indirect) operand, and bits 3-7 select the operation.
func DecodeCB(opcode byte) Instruction {
	target := decodeOperand8(opcode)
	field := mask.Range(opcode, mask.I3, mask.I5) // bits 3-5: shift kind or bit index
	switch {
	case opcode < 0x40:
		return &ShiftOperand8{Kind: shiftKind(field), Target: target}
	case opcode < 0x80:
		return &BitTest{Bit: field, Target: target}
	case opcode < 0xC0:
		return &ResetBit{Bit: field, Target: target}
	default:
		return &SetBit{Bit: field, Target: target}
	}
}
