package httpapi

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/max-scw/dmc-service/symbol"
)

// moduleScale is how many pixels wide/tall each Data Matrix module is
// rendered as. PNG encoding lives only here, at the HTTP adapter boundary
// — the core symbol package stops at a module-level Bitmap (spec §1,
// "Image serialization to PNG ... in the HTTP layer" is an external
// collaborator's concern).
const moduleScale = 4

// encodePNG rasterizes a Bitmap into PNG bytes using the standard
// library's image/png encoder: no third-party imaging library has a home
// here since none of the pack's graphics stack (oksvg, rasterx, fpdf,
// tdewolff/canvas) is wired for this repo (see DESIGN.md).
func encodePNG(bmp symbol.Bitmap) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, bmp.Width*moduleScale, bmp.Height*moduleScale))
	for y := 0; y < bmp.Height; y++ {
		for x := 0; x < bmp.Width; x++ {
			c := color.Gray{Y: 0xFF}
			if bmp.At(y, x) {
				c = color.Gray{Y: 0x00}
			}
			for dy := 0; dy < moduleScale; dy++ {
				for dx := 0; dx < moduleScale; dx++ {
					img.SetGray(x*moduleScale+dx, y*moduleScale+dy, c)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
