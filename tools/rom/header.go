package rom

// Cartridge header layout, see the hardware docs. The 156 byte logo area at
// 0x04 is left blank: emulators don't verify it, real hardware does.
// TODO embed a replacement logo for booting on real hardware
const (
	headerLen   = 192
	offsetTitle = 0xa0 // 12 bytes
	offsetCode  = 0xac // 4 bytes
	offsetMaker = 0xb0 // 2 bytes
	offsetFixed = 0xb2 // always 0x96
	offsetCheck = 0xbd
)

// fixHeader fills in the header fields and the complement checksum the BIOS
// verifies at boot. rom must hold at least the full header.
func fixHeader(rom []byte, title, code string) {
	copyPadded(rom[offsetTitle:offsetTitle+12], title)
	copyPadded(rom[offsetCode:offsetCode+4], code)
	copyPadded(rom[offsetMaker:offsetMaker+2], "01")
	rom[offsetFixed] = 0x96
	rom[offsetCheck] = checksum(rom)
}

// checksum returns the complement checksum over the header fields 0xa0-0xbc.
func checksum(rom []byte) byte {
	chk := byte(0)
	for _, b := range rom[offsetTitle:offsetCheck] {
		chk -= b
	}
	return chk - 0x19
}

func copyPadded(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
