package rom

import "testing"

func TestFixHeader(t *testing.T) {
	rom := make([]byte, headerLen)
	fixHeader(rom, "ROTOZOOM", "AGBE")

	if got := string(rom[offsetTitle : offsetTitle+12]); got != "ROTOZOOM\x00\x00\x00\x00" {
		t.Errorf("title = %q", got)
	}
	if got := string(rom[offsetCode : offsetCode+4]); got != "AGBE" {
		t.Errorf("code = %q", got)
	}
	if rom[offsetFixed] != 0x96 {
		t.Errorf("fixed byte = %#x", rom[offsetFixed])
	}

	// The BIOS accepts the header iff the checksum and all summed fields
	// add up to -0x19.
	sum := byte(0x19) + rom[offsetCheck]
	for _, b := range rom[offsetTitle:offsetCheck] {
		sum += b
	}
	if sum != 0 {
		t.Errorf("checksum mismatch, sum = %#x", sum)
	}
}

func TestFixHeaderTruncates(t *testing.T) {
	rom := make([]byte, headerLen)
	fixHeader(rom, "AVERYLONGCARTRIDGETITLE", "AGBE")
	if got := string(rom[offsetTitle : offsetTitle+12]); got != "AVERYLONGCAR" {
		t.Errorf("title = %q", got)
	}
}
