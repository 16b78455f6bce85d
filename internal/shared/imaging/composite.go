package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

var ErrUnsupportedImage = errors.New("imaging: unsupported image")

// Options controls where and how large the logo is drawn
type Options struct {
	Scale    float64 // logo width as a fraction of the base width
	Margin   int     // distance from the chosen corner, in base pixels
	Position Position
}

// ParsePosition maps a config value to a Position, defaulting to BottomRight
func ParsePosition(s string) Position {
	switch Position(s) {
	case TopLeft, TopRight, BottomLeft:
		return Position(s)
	default:
		return BottomRight
	}
}

// Composite draws logo over base. The logo keeps its aspect ratio and never
// grows larger than the base minus margins.
func Composite(base, logo image.Image, opt Options) *image.RGBA {
	bounds := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), base, bounds.Min, draw.Src)

	logoRect := placeLogo(dst.Bounds(), logo.Bounds(), opt)
	if logoRect.Empty() {
		return dst
	}

	draw.CatmullRom.Scale(dst, logoRect, logo, logo.Bounds(), draw.Over, nil)
	return dst
}

// placeLogo computes the destination rectangle of the scaled logo
func placeLogo(base, logo image.Rectangle, opt Options) image.Rectangle {
	if logo.Dx() == 0 || logo.Dy() == 0 {
		return image.Rectangle{}
	}

	margin := opt.Margin
	if margin < 0 {
		margin = 0
	}

	width := int(float64(base.Dx()) * opt.Scale)
	if maxWidth := base.Dx() - 2*margin; width > maxWidth {
		width = maxWidth
	}
	if width <= 0 {
		return image.Rectangle{}
	}
	height := width * logo.Dy() / logo.Dx()

	if maxHeight := base.Dy() - 2*margin; height > maxHeight {
		height = maxHeight
		width = height * logo.Dx() / logo.Dy()
	}
	if width <= 0 || height <= 0 {
		return image.Rectangle{}
	}

	var x, y int
	switch opt.Position {
	case TopLeft:
		x, y = margin, margin
	case TopRight:
		x, y = base.Dx()-margin-width, margin
	case BottomLeft:
		x, y = margin, base.Dy()-margin-height
	default:
		x, y = base.Dx()-margin-width, base.Dy()-margin-height
	}

	return image.Rect(x, y, x+width, y+height)
}

// CompositePNG decodes both images, composites them and encodes the result as PNG
func CompositePNG(baseData, logoData []byte, opt Options) ([]byte, error) {
	base, _, err := image.Decode(bytes.NewReader(baseData))
	if err != nil {
		return nil, fmt.Errorf("포스터 이미지 디코딩 실패: %w: %v", ErrUnsupportedImage, err)
	}

	logo, _, err := image.Decode(bytes.NewReader(logoData))
	if err != nil {
		return nil, fmt.Errorf("로고 이미지 디코딩 실패: %w: %v", ErrUnsupportedImage, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Composite(base, logo, opt)); err != nil {
		return nil, fmt.Errorf("합성 이미지 인코딩 실패: %w", err)
	}
	return buf.Bytes(), nil
}
