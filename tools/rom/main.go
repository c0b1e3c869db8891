// Package rom converts ELF binaries into GBA cartridge images.
package rom

import (
	"bufio"
	"debug/elf"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
)

const usageString = `ELF to GBA ROM converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("rom", flag.ExitOnError)

	title = flags.String("title", "", "cartridge title, defaults to the ROM name")
	code  = flags.String("code", "AGBE", "four character game code")
	run   = flags.String("run", "", "run the ROM with command")

	infile string
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "rom")
	flags.PrintDefaults()
}

func objcopy(dst []byte, src *elf.File) error {
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return err
		}

		if s.Addr < src.Entry {
			return errors.New("data before entry point")
		}

		copy(dst[s.Addr-src.Entry:], data)
	}

	return nil
}

func romSize(src *elf.File) int {
	size := uint64(headerLen)
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		if end := s.Addr + s.Size - src.Entry; end > size {
			size = end
		}
	}
	return int(size+3) &^ 3
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	outfile, _ := strings.CutSuffix(infile, ".elf")
	outfile += ".gba"

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	rom := make([]byte, romSize(elffile))
	err = objcopy(rom, elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}

	if *title == "" {
		name, _ := strings.CutSuffix(filepath.Base(outfile), ".gba")
		*title = strings.ToUpper(name)
	}
	fixHeader(rom, *title, *code)

	err = os.WriteFile(outfile, rom, 0644)
	if err != nil {
		log.Fatalln(err)
	}

	if *run != "" {
		runROM(*run, outfile)
	}
}

// runROM executes the ROM with the given command, usually an emulator, and
// scans its output for the 'go test' verdict. The command runs on a pty,
// otherwise most emulators block buffer their serial output.
func runROM(cmdline, rompath string) {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		log.Fatalln("run:", err)
	}
	args = append(args, rompath)

	ptmx, err := pty.New()
	if err != nil {
		log.Fatalln("open pty:", err)
	}
	defer ptmx.Close()

	cmd := ptmx.Command(args[0], args[1:]...)
	err = cmd.Start()
	if err != nil {
		log.Fatalln("start command:", err)
	}

	scanner := bufio.NewScanner(ptmx)
	exiting := false
	exitcode := 0
	for scanner.Scan() {
		log.Println(scanner.Text())
		if exiting {
			continue
		}
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			exitcode = 1
			fallthrough
		case line == "PASS":
			exiting = true
			go func() {
				// give panic() time to print the stacktrace
				time.Sleep(500 * time.Millisecond)
				cmd.Process.Kill()
			}()
		}
	}
	cmd.Wait()
	os.Exit(exitcode)
}
