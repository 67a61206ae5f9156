package edges

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	_ "golang.org/x/image/bmp"

	"github.com/katalvlaran/etchpath/point"
)

// Sobel operator kernels
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Decode reads an image in any registered format and reports the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return img, format, nil
}

// Grayscale converts img to gray by averaging the colour channels.
func Grayscale(img image.Image, invert bool) (*image.Gray, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	var (
		x, y    int
		r, g, c uint32
		v       uint8
	)
	for y = b.Min.Y; y < b.Max.Y; y++ {
		for x = b.Min.X; x < b.Max.X; x++ {
			r, g, c, _ = img.At(x, y).RGBA()
			v = uint8(((r >> 8) + (g >> 8) + (c >> 8)) / 3)
			if invert {
				v = 255 - v
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return gray, nil
}

// Sobel returns a binary edge map of src: white where the gradient
// magnitude exceeds threshold, black elsewhere and on the border.
func Sobel(src *image.Gray, threshold float64) (*image.Gray, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	b := src.Bounds()
	out := image.NewGray(b)
	var (
		x, y, kx, ky int
		sumX, sumY   int
		pix          int
	)
	for y = b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x = b.Min.X + 1; x < b.Max.X-1; x++ {
			sumX, sumY = 0, 0
			for ky = -1; ky <= 1; ky++ {
				for kx = -1; kx <= 1; kx++ {
					pix = int(src.GrayAt(x+kx, y+ky).Y)
					sumX += sobelX[ky+1][kx+1] * pix
					sumY += sobelY[ky+1][kx+1] * pix
				}
			}
			if math.Sqrt(float64(sumX*sumX+sumY*sumY)) > threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return out, nil
}

// Points returns every non-black pixel of edge as a point (x, y) measured
// from the top-left corner of its bounds, in row-major order.
func Points(edge *image.Gray) []point.Point {
	if edge == nil {
		return nil
	}
	b := edge.Bounds()
	var (
		out  []point.Point
		x, y int
	)
	for y = b.Min.Y; y < b.Max.Y; y++ {
		for x = b.Min.X; x < b.Max.X; x++ {
			if edge.GrayAt(x, y).Y != 0 {
				out = append(out, point.New(float64(x-b.Min.X), float64(y-b.Min.Y)))
			}
		}
	}

	return out
}

// Extract runs grayscale conversion, Sobel detection and point extraction.
// It also returns the edge map for previews.
func Extract(img image.Image, opts ...Option) ([]point.Point, *image.Gray, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	gray, err := Grayscale(img, o.Invert)
	if err != nil {
		return nil, nil, err
	}
	edge, err := Sobel(gray, o.Threshold)
	if err != nil {
		return nil, nil, err
	}

	return Points(edge), edge, nil
}
