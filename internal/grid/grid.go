package grid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

var (
	minorColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	majorColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Options controls grid geometry. Spacing is the distance between minor
// lines in pixels; every MajorEvery pixels the line is drawn in the major
// color and labeled with its pixel coordinate.
type Options struct {
	Spacing    int
	MajorEvery int
}

// DefaultOutputPath derives the overlay file name from the input image,
// e.g. screenshot.png becomes screenshot-overlay.png.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".png"
	}
	return base + "-overlay" + ext
}

// Render reads a PNG image, draws the measurement grid on top of it, and
// writes the result to outputPath. The output image has the same dimensions
// as the input. It returns the size of the processed image.
func Render(inputPath, outputPath string, opts Options) (width, height int, err error) {
	if opts.Spacing <= 0 {
		return 0, 0, services.Wrap(services.ErrValidation, "grid", "render",
			fmt.Sprintf("spacing must be positive, got %d", opts.Spacing), nil)
	}
	if opts.MajorEvery <= 0 || opts.MajorEvery%opts.Spacing != 0 {
		return 0, 0, services.Wrap(services.ErrValidation, "grid", "render",
			fmt.Sprintf("major interval %d must be a positive multiple of spacing %d", opts.MajorEvery, opts.Spacing), nil)
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return 0, 0, services.Wrap(services.ErrNotFound, "grid", "render", "open image", err)
	}
	defer file.Close()

	src, err := png.Decode(file)
	if err != nil {
		return 0, 0, services.Wrap(services.ErrParse, "grid", "render", "decode image", err)
	}

	bounds := src.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	drawGrid(canvas, opts)

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, 0, services.Wrap(services.ErrConfiguration, "grid", "render", "create output", err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas); err != nil {
		return 0, 0, services.Wrap(services.ErrConfiguration, "grid", "render", "encode output", err)
	}
	return bounds.Dx(), bounds.Dy(), nil
}

func drawGrid(canvas *image.RGBA, opts Options) {
	bounds := canvas.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	for x := 0; x < width; x += opts.Spacing {
		lineColor := minorColor
		if x%opts.MajorEvery == 0 {
			lineColor = majorColor
		}
		for y := 0; y < height; y++ {
			canvas.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, lineColor)
		}
		if x%opts.MajorEvery == 0 {
			drawLabel(canvas, bounds.Min.X+x+2, bounds.Min.Y+2, strconv.Itoa(x))
		}
	}

	for y := 0; y < height; y += opts.Spacing {
		lineColor := minorColor
		if y%opts.MajorEvery == 0 {
			lineColor = majorColor
		}
		for x := 0; x < width; x++ {
			canvas.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, lineColor)
		}
		if y%opts.MajorEvery == 0 {
			drawLabel(canvas, bounds.Min.X+2, bounds.Min.Y+y+2, strconv.Itoa(y))
		}
	}
}

func drawLabel(canvas *image.RGBA, x, y int, text string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(majorColor),
		Face: face,
		// Dot is the text baseline, so drop it below the anchor point.
		Dot: fixed.P(x, y+face.Ascent),
	}
	drawer.DrawString(text)
}
