// Package raster turns an outline font into a glyph-table file by drawing
// each character and downsampling it to a glyph cell.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/f3rmion/marquee/internal/glyph"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultThreshold is the average brightness above which a cell is inked.
const DefaultThreshold uint8 = 48

// inkWidth is the drawn part of a glyph; the last column stays blank.
const inkWidth = glyph.Width - 1

// LoadFace opens a TrueType/OpenType font or collection and returns the
// first face at the given size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	return ParseFace(data, size)
}

// ParseFace builds a face from font data.
func ParseFace(data []byte, size float64) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: size, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return opentype.NewFace(fnt, opts)
}

// Rasterizer draws alphabets with one face.
type Rasterizer struct {
	Face      font.Face
	Threshold uint8
}

// New returns a rasterizer using DefaultThreshold.
func New(face font.Face) *Rasterizer {
	return &Rasterizer{Face: face, Threshold: DefaultThreshold}
}

// Render draws every character of a into a glyph-table file that
// glyph.Parse accepts for the same alphabet.
func (r *Rasterizer) Render(a glyph.Alphabet) ([]byte, error) {
	box, err := r.unionBounds(a)
	if err != nil {
		return nil, err
	}

	cells := make([][glyph.Height][]byte, a.N)
	for k := 0; k < a.N; k++ {
		src := r.draw(a.Base+rune(k), box)
		cells[k] = r.quantize(scaleDown(src, inkWidth, glyph.Height))
	}

	var out bytes.Buffer
	for row := 0; row < glyph.Height; row++ {
		out.WriteByte('|')
		for k := 0; k < a.N; k++ {
			out.Write(cells[k][row])
			out.WriteByte(glyph.Blank)
			out.WriteByte('|')
		}
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// unionBounds returns the smallest box holding every glyph of a, in pixels
// relative to the dot.
func (r *Rasterizer) unionBounds(a glyph.Alphabet) (image.Rectangle, error) {
	var box image.Rectangle
	for k := 0; k < a.N; k++ {
		ch := a.Base + rune(k)
		b, _, ok := r.Face.GlyphBounds(ch)
		if !ok {
			return image.Rectangle{}, fmt.Errorf("font has no glyph for %q", ch)
		}
		box = box.Union(image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()))
	}
	if box.Empty() {
		return image.Rectangle{}, fmt.Errorf("alphabet %s has no ink", a.Key)
	}
	return box, nil
}

// draw renders ch horizontally centred in a box-sized grayscale image.
func (r *Rasterizer) draw(ch rune, box image.Rectangle) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	b, _, _ := r.Face.GlyphBounds(ch)
	w := b.Max.X.Ceil() - b.Min.X.Floor()
	x := (box.Dx()-w)/2 - b.Min.X.Floor()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.Face,
		Dot:  fixed.P(x, -box.Min.Y),
	}
	d.DrawString(string(ch))
	return img
}

func (r *Rasterizer) quantize(img *image.Gray) [glyph.Height][]byte {
	var rows [glyph.Height][]byte
	for y := 0; y < glyph.Height; y++ {
		row := make([]byte, inkWidth)
		for x := 0; x < inkWidth; x++ {
			row[x] = glyph.Blank
			if img.GrayAt(x, y).Y > r.Threshold {
				row[x] = glyph.Ink
			}
		}
		rows[y] = row
	}
	return rows
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)

			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}
