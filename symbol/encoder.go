// Package symbol renders an ISO/IEC 15434 payload into a Data Matrix
// ECC200 symbol bitmap: ASCII compaction, symbol size selection, Reed-
// Solomon error correction, module placement, and quiet zone padding.
package symbol

import (
	"github.com/max-scw/dmc-service/ascii"
	"github.com/max-scw/dmc-service/diagnostic"
	"github.com/max-scw/dmc-service/message"
	"github.com/max-scw/dmc-service/symbol/reedsolomon"
)

// encoderConfig holds Encoder options.
type encoderConfig struct {
	shape     Shape
	quietZone int
}

func defaultConfig() encoderConfig {
	return encoderConfig{shape: ShapeSquare, quietZone: 2}
}

// Option configures an Encoder.
type Option func(*encoderConfig)

// WithShape selects the square or rectangular/DMRE symbol family.
func WithShape(shape Shape) Option {
	return func(c *encoderConfig) { c.shape = shape }
}

// WithQuietZone sets the number of light quiet-zone modules added to each
// side of the rendered bitmap. The default is 2.
func WithQuietZone(modules int) Option {
	return func(c *encoderConfig) { c.quietZone = modules }
}

// Encoder renders payload strings into Data Matrix bitmaps.
type Encoder interface {
	Encode(payload string) (Bitmap, []diagnostic.Diagnostic, error)
}

type encoder struct {
	config encoderConfig
}

// New builds an Encoder with the given options.
func New(opts ...Option) Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &encoder{config: cfg}
}

// Encode renders payload (the already-framed ISO/IEC 15434 message text)
// into a Data Matrix bitmap.
//
// Stage 1 — ASCII compaction: payload is packed into ECC200 ASCII
// codewords, collapsing digit pairs.
// Stage 2 — symbol sizing: the smallest supported size whose data
// capacity accommodates the compacted codeword count is selected.
// Stage 3 — Reed-Solomon ECC: error correction codewords are computed
// and interleaved per the selected size's block layout.
// Stage 4 — module placement: codewords are placed via the standard
// "utah" diagonal algorithm and the finder pattern is drawn per region.
// Stage 5 — quiet zone: a light border is added around the symbol.
//
// Errors: message.KindNonAscii if any byte of payload is above 0x7F;
// message.KindPayloadTooLarge if no supported size fits the compacted
// codeword stream. For identical inputs and options, the output bitmap
// is bit-identical across calls: every stage here is a pure function of
// its inputs, with no use of time, randomness, or map iteration order.
func (e *encoder) Encode(payload string) (Bitmap, []diagnostic.Diagnostic, error) {
	for i := 0; i < len(payload); i++ {
		if payload[i] > 0x7F {
			return Bitmap{}, nil, message.New(message.KindNonAscii, "payload contains a byte above 0x7F")
		}
	}

	compacted := ascii.Encode(payload)

	attr, warnings, err := Select(len(compacted), e.config.shape)
	if err != nil {
		return Bitmap{}, warnings, err
	}

	padded := ascii.Pad(compacted, attr.DataCodewords)

	var stream []byte
	if attr.InterleavedBlocks <= 1 {
		stream = reedsolomon.Interleave(padded, 1, attr.ECCCodewords)
	} else {
		nsymPerBlock := attr.ECCCodewords / attr.InterleavedBlocks
		stream = reedsolomon.Interleave(padded, attr.InterleavedBlocks, nsymPerBlock)
	}

	bmp := assemble(attr, stream, e.config.quietZone)
	return bmp, warnings, nil
}
