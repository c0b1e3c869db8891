package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xokz/agb/tools/rom"
	"github.com/xokz/agb/tools/tiles"
)

const usageString = `agbgo is a tool for development of Game Boy Advance ROMs.

Usage:

	%s <command> [arguments]

The commands are:

	rom      convert elf binaries to GBA ROMs and execute them
	tiles    convert images to tile data and palettes
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "rom":
		rom.Main(flag.Args())
	case "tiles":
		tiles.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
