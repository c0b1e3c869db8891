// Package tiles converts images into the 8 bit per pixel tile data and 15
// bit palettes read by the affine background and object hardware.
package tiles

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// TileSize is the width and height of a single tile in pixels.
const TileSize = 8

// A TileSet holds graphics in the 256 color tile format of the affine
// layers: 64 palette indices per tile, tiles stored in row order.
type TileSet struct {
	W, H    int // size in tiles
	Pix     []byte
	Palette Palette
}

// NewFromImage quantizes img to at most colors colors and splits it into
// tiles. The image bounds must be multiples of TileSize. With dither set,
// Floyd-Steinberg error diffusion is applied.
func NewFromImage(img image.Image, colors int, dither bool) (*TileSet, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w%TileSize != 0 || h%TileSize != 0 {
		return nil, fmt.Errorf("tiles: image size %dx%d is no multiple of %d", w, h, TileSize)
	}
	if colors > 256 {
		colors = 256
	}

	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, colors), img)

	dst := image.NewPaletted(bounds, pal)
	var drawer draw.Drawer = draw.Src
	if dither {
		drawer = draw.FloydSteinberg
	}
	drawer.Draw(dst, bounds, img, bounds.Min)

	ts := &TileSet{
		W:       w / TileSize,
		H:       h / TileSize,
		Pix:     make([]byte, w*h),
		Palette: make(Palette, len(pal)),
	}
	for i, c := range pal {
		ts.Palette[i] = NewColor(c)
	}

	i := 0
	for ty := 0; ty < ts.H; ty++ {
		for tx := 0; tx < ts.W; tx++ {
			for y := 0; y < TileSize; y++ {
				for x := 0; x < TileSize; x++ {
					px := bounds.Min.X + tx*TileSize + x
					py := bounds.Min.Y + ty*TileSize + y
					ts.Pix[i] = dst.ColorIndexAt(px, py)
					i++
				}
			}
		}
	}
	return ts, nil
}

// Tile returns the 64 palette indices of the i'th tile.
func (t *TileSet) Tile(i int) []byte {
	return t.Pix[i*TileSize*TileSize : (i+1)*TileSize*TileSize]
}

// ColorIndexAt returns the palette index of the pixel at (x, y), resolving
// the tile addressing. The coordinates must be inside the tile set.
func (t *TileSet) ColorIndexAt(x, y int) byte {
	tile := y/TileSize*t.W + x/TileSize
	return t.Pix[tile*TileSize*TileSize+y%TileSize*TileSize+x%TileSize]
}

// At returns the color of the pixel at (x, y).
func (t *TileSet) At(x, y int) Color {
	return t.Palette[t.ColorIndexAt(x, y)]
}
