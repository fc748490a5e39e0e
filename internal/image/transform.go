package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToRGB converts img to an opaque *image.NRGBA anchored at the origin.
// Palette and greyscale images are expanded; alpha is dropped rather than
// composited, so the stored colour channels are kept as-is.
func ToRGB(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch src := img.(type) {
	case *image.NRGBA:
		rowLen := b.Dx() * 4
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := dst.Pix[(y-b.Min.Y)*dst.Stride:][:rowLen]
			copy(row, src.Pix[src.PixOffset(b.Min.X, y):])
			for i := 3; i < rowLen; i += 4 {
				row[i] = 0xff
			}
		}
		return dst
	case *image.YCbCr:
		// Same rounding as color.NRGBAModel for opaque colours.
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := src.YCbCrAt(x, y).RGBA()
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 0xff})
			}
		}
		return dst
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}

	return dst
}

// Resize scales img to exactly width x height, ignoring aspect ratio.
// Catmull-Rom is used as it is the highest quality kernel x/image/draw offers.
func Resize(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Crop returns a copy of the region r of img, re-anchored at the origin.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	r = r.Intersect(img.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, img, r, draw.Src, nil)
	return dst
}

// Fill paints r of dst with a single colour.
func Fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
