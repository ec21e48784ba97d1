// MIT License · Daniel T. Gorski · dtg [at] lengo [dot] org · 03/2024

package nes6502

import "testing"

func TestRAM(t *testing.T) {
	ram := &RAM{}

	ram.Write(0x0000, 0x11)
	ram.Write(0x8000, 0x22)
	ram.Write(0xFFFF, 0x33)

	if ram.Read(0x0000) != 0x11 || ram.Read(0x8000) != 0x22 || ram.Read(0xFFFF) != 0x33 {
		t.Error("unexpected, stored values not read back")
	}
	if ram.Read(0x4000) != 0x00 {
		t.Error("unexpected, untouched memory not zero")
	}
}

func TestRAMLoad(t *testing.T) {
	ram := &RAM{}
	ram.Load(0xFFFE, []byte{0x11, 0x22, 0x33, 0x44})

	if ram.Read(0xFFFE) != 0x11 || ram.Read(0xFFFF) != 0x22 {
		t.Error("unexpected image head")
	}
	if ram.Read(0x0000) != 0x33 || ram.Read(0x0001) != 0x44 {
		t.Error("unexpected, image must wrap at the end of address space")
	}
}
