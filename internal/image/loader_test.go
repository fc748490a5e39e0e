package image

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	Fill(src, src.Bounds(), color.RGBA{R: 255, A: 255})
	writePNG(t, path, src)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Load() bounds = %v, want 4x3", img.Bounds())
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("Load() returned %T, want *image.NRGBA", img)
	}

	got := img.At(2, 1).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel = %+v, want opaque red", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(dir, "missing.jpg")},
		{name: "directory", path: dir},
		{name: "corrupt file", path: garbage},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.path)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Load(%q) error = %v, want ErrDecode", tt.path, err)
			}
			if err := ValidateImagePath(tt.path); !errors.Is(err, ErrDecode) {
				t.Errorf("ValidateImagePath(%q) error = %v, want ErrDecode", tt.path, err)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	t.Run("drops alpha", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

		got := ToRGB(src).NRGBAAt(0, 0)
		want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
		if got != want {
			t.Errorf("ToRGB() = %+v, want %+v", got, want)
		}
	})

	t.Run("expands greyscale", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 2, 2))
		src.SetGray(1, 1, color.Gray{Y: 200})

		got := ToRGB(src).NRGBAAt(1, 1)
		want := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		if got != want {
			t.Errorf("ToRGB() = %+v, want %+v", got, want)
		}
	})

	t.Run("expands palette", func(t *testing.T) {
		pal := color.Palette{color.Black, color.RGBA{G: 255, A: 255}}
		src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
		src.SetColorIndex(1, 0, 1)

		got := ToRGB(src).NRGBAAt(1, 0)
		want := color.NRGBA{G: 255, A: 255}
		if got != want {
			t.Errorf("ToRGB() = %+v, want %+v", got, want)
		}
	})

	t.Run("nrgba sub-image", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		src.SetNRGBA(2, 3, color.NRGBA{R: 7, G: 8, B: 9, A: 0})
		sub := src.SubImage(image.Rect(1, 2, 4, 4)).(*image.NRGBA)

		dst := ToRGB(sub)
		if dst.Bounds() != image.Rect(0, 0, 3, 2) {
			t.Fatalf("ToRGB() bounds = %v, want (0,0)-(3,2)", dst.Bounds())
		}
		if got := dst.NRGBAAt(1, 1); got != (color.NRGBA{R: 7, G: 8, B: 9, A: 255}) {
			t.Errorf("ToRGB() = %+v, want {7 8 9 255}", got)
		}
		if got := dst.NRGBAAt(0, 0); got.A != 255 {
			t.Errorf("ToRGB() alpha = %d, want 255", got.A)
		}
	})

	t.Run("ycbcr matches generic conversion", func(t *testing.T) {
		src := image.NewYCbCr(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio420)
		for i := range src.Y {
			src.Y[i] = uint8(40 * i)
		}
		for i := range src.Cb {
			src.Cb[i] = uint8(90 + 30*i)
			src.Cr[i] = uint8(200 - 50*i)
		}

		dst := ToRGB(src)
		for y := 0; y < 2; y++ {
			for x := 0; x < 4; x++ {
				want := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				if got := dst.NRGBAAt(x, y); got != want {
					t.Errorf("ToRGB() at (%d,%d) = %+v, want %+v", x, y, got, want)
				}
			}
		}
	})

	t.Run("re-anchors at origin", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(5, 5, 8, 7))
		got := ToRGB(src).Bounds()
		if got != image.Rect(0, 0, 3, 2) {
			t.Errorf("ToRGB() bounds = %v, want (0,0)-(3,2)", got)
		}
	})
}

func TestResizeAndCrop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	Fill(src, image.Rect(0, 0, 20, 30), color.NRGBA{R: 255, A: 255})
	Fill(src, image.Rect(20, 0, 40, 30), color.NRGBA{B: 255, A: 255})

	resized := Resize(src, 7, 13)
	if resized.Bounds() != image.Rect(0, 0, 7, 13) {
		t.Errorf("Resize() bounds = %v, want 7x13", resized.Bounds())
	}

	cropped := Crop(src, image.Rect(25, 5, 35, 15))
	if cropped.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("Crop() bounds = %v, want 10x10", cropped.Bounds())
	}
	if got := cropped.NRGBAAt(0, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("Crop() pixel = %+v, want blue", got)
	}
}

func TestSaveJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jpg")

	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	Fill(src, src.Bounds(), color.RGBA{R: 100, G: 150, B: 200, A: 255})

	if err := SaveJPEG(path, src, DefaultJPEGQuality); err != nil {
		t.Fatalf("SaveJPEG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 16x8", decoded.Bounds())
	}
}

func TestSaveJPEGErrors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		quality int
	}{
		{name: "empty path", path: "", quality: 95},
		{name: "missing directory", path: filepath.Join(dir, "nope", "out.jpg"), quality: 95},
		{name: "quality too low", path: filepath.Join(dir, "a.jpg"), quality: 0},
		{name: "quality too high", path: filepath.Join(dir, "b.jpg"), quality: 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SaveJPEG(tt.path, src, tt.quality); !errors.Is(err, ErrEncode) {
				t.Errorf("SaveJPEG() error = %v, want ErrEncode", err)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.webp", true},
		{"photo.tiff", true},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
