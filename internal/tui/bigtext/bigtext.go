// Package bigtext renders short strings, such as a reading age, as large
// block art using half-block characters.
package bigtext

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	fontSize  = 64
	padding   = 2
	threshold = 40 // minimum brightness for a lit half-cell
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parsing font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Render draws text rows terminal cells tall. The width follows the
// glyphs' aspect ratio. It returns "" for empty text or when the font
// cannot be loaded.
func Render(text string, rows int) string {
	if text == "" || rows <= 0 {
		return ""
	}
	f, err := loadFace()
	if err != nil {
		return ""
	}

	bounds, _ := font.BoundString(f, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil() + padding*2
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + padding*2
	if w <= padding*2 || h <= padding*2 {
		return ""
	}

	src := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.I(padding) - bounds.Min.X, Y: fixed.I(padding) - bounds.Min.Y},
	}
	d.DrawString(text)

	// Half-blocks make each cell two roughly square pixels tall.
	targetH := rows * 2
	cols := int(math.Round(float64(w) * float64(targetH) / float64(h)))
	if cols < 1 {
		cols = 1
	}

	return toHalfBlocks(scaleDown(src, cols, targetH), cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstW, dstH int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))

	xRatio := float64(srcW) / float64(dstW)
	yRatio := float64(srcH) / float64(dstH)

	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(max(int(float64(dx+1)*xRatio), sx1+1), srcW)
			sy2 := min(max(int(float64(dy+1)*yRatio), sy1+1), srcH)

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

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.GrayAt(col, row*2).Y > threshold
			bottom := img.GrayAt(col, row*2+1).Y > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

type cacheKey struct {
	text string
	rows int
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

// Cached returns the rendering of text, reusing earlier renders.
func Cached(text string, rows int) string {
	key := cacheKey{text, rows}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[key]; ok {
		return s
	}
	s := Render(text, rows)
	cache[key] = s
	return s
}
