package cpu

import "gone/mask"

// Decode maps an 8-bit primary-table opcode to its instruction variant,
// per spec.md §4.E. Operand register fields embedded in the opcode bits
// are extracted here; immediates are fetched later, during execution,
// so that cycle timing stays correct.
func Decode(opcode byte) Instruction {
	switch {
	case opcode == 0x00:
		return &NoOp{}
	case opcode == 0x10:
		return &Stop{}
	case opcode == 0x76:
		return &Halt{}
	case opcode == 0xCB:
		return &PrefixCb{}
	case opcode == 0xF3:
		return &DisableInterrupts{}
	case opcode == 0xFB:
		return &EnableInterrupts{}
	case opcode == 0x07:
		return &RotateA{Kind: shiftRLC}
	case opcode == 0x0F:
		return &RotateA{Kind: shiftRRC}
	case opcode == 0x17:
		return &RotateA{Kind: shiftRL}
	case opcode == 0x1F:
		return &RotateA{Kind: shiftRR}
	case opcode == 0x27:
		return &DecimalAdjustA{}
	case opcode == 0x2F:
		return &ComplementA{}
	case opcode == 0x37:
		return &SetCarry{}
	case opcode == 0x3F:
		return &InvertCarry{}
	case opcode == 0x08:
		return &LoadAddrFromSP{Phase: First}
	case opcode == 0xE0:
		return &LoadHighFromA{}
	case opcode == 0xF0:
		return &LoadAFromHigh{}
	case opcode == 0xE2:
		return &LoadCIndirectFromA{}
	case opcode == 0xF2:
		return &LoadAFromCIndirect{}
	case opcode == 0xEA:
		return &LoadAddrFromA{Phase: First}
	case opcode == 0xFA:
		return &LoadAFromAddr{Phase: First}
	case opcode == 0xE8:
		return &AddSPImm8{Phase: First}
	case opcode == 0xF8:
		return &LoadHLFromSPImm8{Phase: First}
	case opcode == 0xF9:
		return &LoadSPFromHL{Phase: First}
	case opcode == 0xE9:
		return &JumpHL{}
	case opcode == 0x18:
		return &JumpRelative{Phase: First}
	case opcode == 0xC3:
		return &Jump{Phase: First}
	case opcode == 0xCD:
		return &Call{Phase: First}
	case opcode == 0xC9:
		return &Return{Phase: First}
	case opcode == 0xD9:
		return &Return{EnableIME: true, Phase: First}

	// 0x20/0x28/0x30/0x38: JR cc,r8
	case opcode&0xE7 == 0x20:
		cond := decodeCondition(opcode >> 3)
		return &JumpRelative{Cond: &cond, Phase: First}

	// 0xC2/CA/D2/DA: JP cc,a16
	case opcode&0xE7 == 0xC2:
		cond := decodeCondition(opcode >> 3)
		return &Jump{Cond: &cond, Phase: First}

	// 0xC4/CC/D4/DC: CALL cc,a16
	case opcode&0xE7 == 0xC4:
		cond := decodeCondition(opcode >> 3)
		return &Call{Cond: &cond, Phase: First}

	// 0xC0/C8/D0/D8: RET cc
	case opcode&0xE7 == 0xC0:
		cond := decodeCondition(opcode >> 3)
		return &Return{Cond: &cond, Phase: First}

	// 0xC7/CF/D7/.../FF: RST n
	case opcode&0xC7 == 0xC7:
		return &Restart{Vector: opcode & 0x38, Phase: First}

	// 0x01/11/21/31: LD rr,d16
	case opcode&0xCF == 0x01:
		return &LoadImm16{Dst: decodeOperand16(opcode >> 4), Phase: First}

	// 0x03/13/23/33: INC rr ; 0x0B/1B/2B/3B: DEC rr
	case opcode&0xCF == 0x03:
		return &IncDecReg16{Target: decodeOperand16(opcode >> 4), Phase: First}
	case opcode&0xCF == 0x0B:
		return &IncDecReg16{Target: decodeOperand16(opcode >> 4), Decrement: true, Phase: First}

	// 0x09/19/29/39: ADD HL,rr
	case opcode&0xCF == 0x09:
		return &AddHLReg16{Src: decodeOperand16(opcode >> 4), Phase: First}

	// 0x02/12/22/32: LD (rr),A ; 0x0A/1A/2A/3A: LD A,(rr)
	case opcode == 0x02:
		return &LoadIndirectFromA{Target: indBC}
	case opcode == 0x12:
		return &LoadIndirectFromA{Target: indDE}
	case opcode == 0x22:
		return &LoadIndirectFromA{Target: indHLInc}
	case opcode == 0x32:
		return &LoadIndirectFromA{Target: indHLDec}
	case opcode == 0x0A:
		return &LoadAFromIndirect{Target: indBC}
	case opcode == 0x1A:
		return &LoadAFromIndirect{Target: indDE}
	case opcode == 0x2A:
		return &LoadAFromIndirect{Target: indHLInc}
	case opcode == 0x3A:
		return &LoadAFromIndirect{Target: indHLDec}

	// 0x04.../3C: INC r ; 0x05.../3D: DEC r
	case opcode&0xC7 == 0x04:
		return &IncDecReg8{Target: decodeOperand8(opcode >> 3)}
	case opcode&0xC7 == 0x05:
		return &IncDecReg8{Target: decodeOperand8(opcode >> 3), Decrement: true}

	// 0x06.../3E: LD r,d8
	case opcode&0xC7 == 0x06:
		return &LoadRegImm8{Dst: decodeOperand8(opcode >> 3)}

	// 0x40-0x7F (excl 0x76, handled above): LD r,r'
	case opcode >= 0x40 && opcode < 0x80:
		return &LoadRegReg{Dst: decodeOperand8(opcode >> 3), Src: decodeOperand8(opcode)}

	// 0x80-0xBF: ALU A,r
	case opcode >= 0x80 && opcode < 0xC0:
		return &ArithReg{Op: aluKind(mask.Range(opcode, mask.I3, mask.I5)), Src: decodeOperand8(opcode)}

	// 0xC6/CE/D6/.../FE: ALU A,d8
	case opcode&0xC7 == 0xC6:
		return &ArithImm8{Op: aluKind(mask.Range(opcode, mask.I3, mask.I5))}

	// 0xC1/D1/E1/F1: POP rr2 ; 0xC5/D5/E5/F5: PUSH rr2
	case opcode&0xCF == 0xC1:
		return &Pop{Dst: stackOperand16(opcode >> 4), Phase: First}
	case opcode&0xCF == 0xC5:
		return &Push{Src: stackOperand16(opcode >> 4), Phase: First}
	}

	return &Unknown{Opcode: opcode}
}
