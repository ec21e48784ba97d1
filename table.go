// MIT License · Daniel T. Gorski · dtg [at] lengo [dot] org · 03/2024

package nes6502

type (
	// mode tags the addressing mode of a table entry. The executor
	// dispatches over the tag; keeping a tag instead of a handler pointer
	// also lets fetch and store distinguish implied/accumulator operands.
	mode byte

	// instruction is one entry of the opcode-indexed dispatch table. The
	// mnemonic serves human inspection only and plays no semantic role.
	instruction struct {
		name    string
		operate func(*CPU) bool
		mode    mode
		cycles  byte
	}
)

const (
	modeIMP mode = iota // operand implied, possibly the accumulator
	modeIMM             // operand in the next program byte
	modeZP0             // zero page
	modeZPX             // zero page, X-indexed
	modeZPY             // zero page, Y-indexed
	modeREL             // relative branch offset
	modeABS             // absolute
	modeABX             // absolute, X-indexed
	modeABY             // absolute, Y-indexed
	modeIND             // indirect, with the 6502 page-wrap bug
	modeIZX             // indexed indirect: (zp+X)
	modeIZY             // indirect indexed: (zp)+Y
)

// address computes the effective address (or branch offset) for the
// given mode and reports whether the computation crossed a page
// boundary. Only read-type instructions turn that report into an extra
// cycle; stores and read-modify-writes carry the worst case in their
// base cycle count already.
func (cpu *CPU) address(m mode) bool {
	switch m {
	case modeIMP:
		cpu.fetched = cpu.a

	case modeIMM:
		cpu.addrAbs = cpu.pc
		cpu.pc++

	case modeZP0:
		cpu.addrAbs = uint16(cpu.readPC())

	case modeZPX:
		cpu.addrAbs = uint16(cpu.readPC() + cpu.x)

	case modeZPY:
		cpu.addrAbs = uint16(cpu.readPC() + cpu.y)

	case modeREL:
		r := uint16(cpu.readPC())
		if r&0x0080 != 0x0000 {
			r |= 0xFF00 // sign extension
		}
		cpu.addrRel = r

	case modeABS:
		lo := uint16(cpu.readPC())
		hi := uint16(cpu.readPC())
		cpu.addrAbs = hi<<8 | lo

	case modeABX:
		lo := uint16(cpu.readPC())
		hi := uint16(cpu.readPC())
		cpu.addrAbs = (hi<<8 | lo) + uint16(cpu.x)
		return cpu.addrAbs&0xFF00 != hi<<8

	case modeABY:
		lo := uint16(cpu.readPC())
		hi := uint16(cpu.readPC())
		cpu.addrAbs = (hi<<8 | lo) + uint16(cpu.y)
		return cpu.addrAbs&0xFF00 != hi<<8

	case modeIND:
		lo := uint16(cpu.readPC())
		hi := uint16(cpu.readPC())
		ptr := hi<<8 | lo

		if lo == 0x00FF {
			// Hardware bug: the pointer's high byte is read from the
			// start of the same page instead of the next one.
			cpu.addrAbs = uint16(cpu.read(ptr&0xFF00))<<8 | uint16(cpu.read(ptr))
		} else {
			cpu.addrAbs = uint16(cpu.read(ptr+1))<<8 | uint16(cpu.read(ptr))
		}

	case modeIZX:
		cpu.addrAbs = cpu.read16zp(cpu.readPC() + cpu.x)

	case modeIZY:
		base := cpu.read16zp(cpu.readPC())
		cpu.addrAbs = base + uint16(cpu.y)
		return cpu.addrAbs&0xFF00 != base&0xFF00
	}
	return false
}

// table is the immutable dispatch table, indexed by opcode. Entries
// follow the MOS 6502 reference; unofficial opcodes are tabulated with
// their documented cycle counts and no architectural effect, except
// 0xEB which executes as SBC immediate.
//
// Populated in init() rather than as a direct initializer: the method
// values below reach back into fetch and store, which read table, and the
// compiler's initialization-order analysis treats that as a cycle even
// though nothing is called at init time.
var table [0x100]instruction

func init() {
	table = [0x100]instruction{
		// 0x00 - 0x0F
		{"BRK", (*CPU).brk, modeIMM, 7},
		{"ORA", (*CPU).ora, modeIZX, 6},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 3},
		{"ORA", (*CPU).ora, modeZP0, 3},
		{"ASL", (*CPU).asl, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"PHP", (*CPU).php, modeIMP, 3},
		{"ORA", (*CPU).ora, modeIMM, 2},
		{"ASL", (*CPU).asl, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).nop, modeIMP, 4},
		{"ORA", (*CPU).ora, modeABS, 4},
		{"ASL", (*CPU).asl, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0x10 - 0x1F
		{"BPL", (*CPU).bpl, modeREL, 2},
		{"ORA", (*CPU).ora, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"ORA", (*CPU).ora, modeZPX, 4},
		{"ASL", (*CPU).asl, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"CLC", (*CPU).clc, modeIMP, 2},
		{"ORA", (*CPU).ora, modeABY, 4},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"ORA", (*CPU).ora, modeABX, 4},
		{"ASL", (*CPU).asl, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},

		// 0x20 - 0x2F
		{"JSR", (*CPU).jsr, modeABS, 6},
		{"AND", (*CPU).and, modeIZX, 6},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"BIT", (*CPU).bit, modeZP0, 3},
		{"AND", (*CPU).and, modeZP0, 3},
		{"ROL", (*CPU).rol, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"PLP", (*CPU).plp, modeIMP, 4},
		{"AND", (*CPU).and, modeIMM, 2},
		{"ROL", (*CPU).rol, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"BIT", (*CPU).bit, modeABS, 4},
		{"AND", (*CPU).and, modeABS, 4},
		{"ROL", (*CPU).rol, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0x30 - 0x3F
		{"BMI", (*CPU).bmi, modeREL, 2},
		{"AND", (*CPU).and, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"AND", (*CPU).and, modeZPX, 4},
		{"ROL", (*CPU).rol, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"SEC", (*CPU).sec, modeIMP, 2},
		{"AND", (*CPU).and, modeABY, 4},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"AND", (*CPU).and, modeABX, 4},
		{"ROL", (*CPU).rol, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},

		// 0x40 - 0x4F
		{"RTI", (*CPU).rti, modeIMP, 6},
		{"EOR", (*CPU).eor, modeIZX, 6},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 3},
		{"EOR", (*CPU).eor, modeZP0, 3},
		{"LSR", (*CPU).lsr, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"PHA", (*CPU).pha, modeIMP, 3},
		{"EOR", (*CPU).eor, modeIMM, 2},
		{"LSR", (*CPU).lsr, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"JMP", (*CPU).jmp, modeABS, 3},
		{"EOR", (*CPU).eor, modeABS, 4},
		{"LSR", (*CPU).lsr, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0x50 - 0x5F
		{"BVC", (*CPU).bvc, modeREL, 2},
		{"EOR", (*CPU).eor, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"EOR", (*CPU).eor, modeZPX, 4},
		{"LSR", (*CPU).lsr, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"CLI", (*CPU).cli, modeIMP, 2},
		{"EOR", (*CPU).eor, modeABY, 4},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"EOR", (*CPU).eor, modeABX, 4},
		{"LSR", (*CPU).lsr, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},

		// 0x60 - 0x6F
		{"RTS", (*CPU).rts, modeIMP, 6},
		{"ADC", (*CPU).adc, modeIZX, 6},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 3},
		{"ADC", (*CPU).adc, modeZP0, 3},
		{"ROR", (*CPU).ror, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"PLA", (*CPU).pla, modeIMP, 4},
		{"ADC", (*CPU).adc, modeIMM, 2},
		{"ROR", (*CPU).ror, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"JMP", (*CPU).jmp, modeIND, 5},
		{"ADC", (*CPU).adc, modeABS, 4},
		{"ROR", (*CPU).ror, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0x70 - 0x7F
		{"BVS", (*CPU).bvs, modeREL, 2},
		{"ADC", (*CPU).adc, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"ADC", (*CPU).adc, modeZPX, 4},
		{"ROR", (*CPU).ror, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"SEI", (*CPU).sei, modeIMP, 2},
		{"ADC", (*CPU).adc, modeABY, 4},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"ADC", (*CPU).adc, modeABX, 4},
		{"ROR", (*CPU).ror, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},

		// 0x80 - 0x8F
		{"???", (*CPU).nop, modeIMP, 2},
		{"STA", (*CPU).sta, modeIZX, 6},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"STY", (*CPU).sty, modeZP0, 3},
		{"STA", (*CPU).sta, modeZP0, 3},
		{"STX", (*CPU).stx, modeZP0, 3},
		{"???", (*CPU).xxx, modeIMP, 3},
		{"DEY", (*CPU).dey, modeIMP, 2},
		{"???", (*CPU).nop, modeIMP, 2},
		{"TXA", (*CPU).txa, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"STY", (*CPU).sty, modeABS, 4},
		{"STA", (*CPU).sta, modeABS, 4},
		{"STX", (*CPU).stx, modeABS, 4},
		{"???", (*CPU).xxx, modeIMP, 4},

		// 0x90 - 0x9F
		{"BCC", (*CPU).bcc, modeREL, 2},
		{"STA", (*CPU).sta, modeIZY, 6},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"STY", (*CPU).sty, modeZPX, 4},
		{"STA", (*CPU).sta, modeZPX, 4},
		{"STX", (*CPU).stx, modeZPY, 4},
		{"???", (*CPU).xxx, modeIMP, 4},
		{"TYA", (*CPU).tya, modeIMP, 2},
		{"STA", (*CPU).sta, modeABY, 5},
		{"TXS", (*CPU).txs, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"???", (*CPU).nop, modeIMP, 5},
		{"STA", (*CPU).sta, modeABX, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"???", (*CPU).xxx, modeIMP, 5},

		// 0xA0 - 0xAF
		{"LDY", (*CPU).ldy, modeIMM, 2},
		{"LDA", (*CPU).lda, modeIZX, 6},
		{"LDX", (*CPU).ldx, modeIMM, 2},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"LDY", (*CPU).ldy, modeZP0, 3},
		{"LDA", (*CPU).lda, modeZP0, 3},
		{"LDX", (*CPU).ldx, modeZP0, 3},
		{"???", (*CPU).xxx, modeIMP, 3},
		{"TAY", (*CPU).tay, modeIMP, 2},
		{"LDA", (*CPU).lda, modeIMM, 2},
		{"TAX", (*CPU).tax, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"LDY", (*CPU).ldy, modeABS, 4},
		{"LDA", (*CPU).lda, modeABS, 4},
		{"LDX", (*CPU).ldx, modeABS, 4},
		{"???", (*CPU).xxx, modeIMP, 4},

		// 0xB0 - 0xBF
		{"BCS", (*CPU).bcs, modeREL, 2},
		{"LDA", (*CPU).lda, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"LDY", (*CPU).ldy, modeZPX, 4},
		{"LDA", (*CPU).lda, modeZPX, 4},
		{"LDX", (*CPU).ldx, modeZPY, 4},
		{"???", (*CPU).xxx, modeIMP, 4},
		{"CLV", (*CPU).clv, modeIMP, 2},
		{"LDA", (*CPU).lda, modeABY, 4},
		{"TSX", (*CPU).tsx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 4},
		{"LDY", (*CPU).ldy, modeABX, 4},
		{"LDA", (*CPU).lda, modeABX, 4},
		{"LDX", (*CPU).ldx, modeABY, 4},
		{"???", (*CPU).xxx, modeIMP, 4},

		// 0xC0 - 0xCF
		{"CPY", (*CPU).cpy, modeIMM, 2},
		{"CMP", (*CPU).cmp, modeIZX, 6},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"CPY", (*CPU).cpy, modeZP0, 3},
		{"CMP", (*CPU).cmp, modeZP0, 3},
		{"DEC", (*CPU).dec, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"INY", (*CPU).iny, modeIMP, 2},
		{"CMP", (*CPU).cmp, modeIMM, 2},
		{"DEX", (*CPU).dex, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"CPY", (*CPU).cpy, modeABS, 4},
		{"CMP", (*CPU).cmp, modeABS, 4},
		{"DEC", (*CPU).dec, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0xD0 - 0xDF
		{"BNE", (*CPU).bne, modeREL, 2},
		{"CMP", (*CPU).cmp, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"CMP", (*CPU).cmp, modeZPX, 4},
		{"DEC", (*CPU).dec, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"CLD", (*CPU).cld, modeIMP, 2},
		{"CMP", (*CPU).cmp, modeABY, 4},
		{"NOP", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"CMP", (*CPU).cmp, modeABX, 4},
		{"DEC", (*CPU).dec, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},

		// 0xE0 - 0xEF
		{"CPX", (*CPU).cpx, modeIMM, 2},
		{"SBC", (*CPU).sbc, modeIZX, 6},
		{"???", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"CPX", (*CPU).cpx, modeZP0, 3},
		{"SBC", (*CPU).sbc, modeZP0, 3},
		{"INC", (*CPU).inc, modeZP0, 5},
		{"???", (*CPU).xxx, modeIMP, 5},
		{"INX", (*CPU).inx, modeIMP, 2},
		{"SBC", (*CPU).sbc, modeIMM, 2},
		{"NOP", (*CPU).nop, modeIMP, 2},
		{"SBC", (*CPU).sbc, modeIMM, 2}, // unofficial 0xEB, aliases SBC #
		{"CPX", (*CPU).cpx, modeABS, 4},
		{"SBC", (*CPU).sbc, modeABS, 4},
		{"INC", (*CPU).inc, modeABS, 6},
		{"???", (*CPU).xxx, modeIMP, 6},

		// 0xF0 - 0xFF
		{"BEQ", (*CPU).beq, modeREL, 2},
		{"SBC", (*CPU).sbc, modeIZY, 5},
		{"???", (*CPU).xxx, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 8},
		{"???", (*CPU).nop, modeIMP, 4},
		{"SBC", (*CPU).sbc, modeZPX, 4},
		{"INC", (*CPU).inc, modeZPX, 6},
		{"???", (*CPU).xxx, modeIMP, 6},
		{"SED", (*CPU).sed, modeIMP, 2},
		{"SBC", (*CPU).sbc, modeABY, 4},
		{"NOP", (*CPU).nop, modeIMP, 2},
		{"???", (*CPU).xxx, modeIMP, 7},
		{"???", (*CPU).nop, modeIMP, 4},
		{"SBC", (*CPU).sbc, modeABX, 4},
		{"INC", (*CPU).inc, modeABX, 7},
		{"???", (*CPU).xxx, modeIMP, 7},
	}
}
