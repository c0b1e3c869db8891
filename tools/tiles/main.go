// Package tiles implements the image to tile data converter command.
package tiles

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/xokz/agb/tiles"
)

const usageString = `Image to GBA tile data converter.

Writes the tile data to <image>.tiles and the palette to <image>.pal.

Usage: %s [flags] <image>

`

var (
	flags = flag.NewFlagSet("tiles", flag.ExitOnError)

	colors = flags.Int("colors", 256, "number of colors in the palette")
	dither = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	scale  = flags.String("scale", "", "scale the image to WxH pixels before converting")

	imagefile string
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "tiles")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	if *scale != "" {
		var w, h int
		_, err := fmt.Sscanf(*scale, "%dx%d", &w, &h)
		if err != nil {
			log.Fatalln("scale:", err)
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		src = dst
	}

	ts, err := tiles.NewFromImage(src, *colors, *dither)
	if err != nil {
		log.Fatalln(err)
	}

	base := strings.TrimSuffix(imagefile, filepath.Ext(imagefile))
	err = os.WriteFile(base+".tiles", ts.Pix, 0644)
	if err != nil {
		log.Fatalln(err)
	}

	pal := make([]byte, 2*len(ts.Palette))
	ts.Palette.Encode(pal)
	err = os.WriteFile(base+".pal", pal, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
