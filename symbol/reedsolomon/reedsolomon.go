// Package reedsolomon computes ECC200 error correction codewords over
// GF(256), and interleaves/de-interleaves data across the multiple blocks
// used by the larger Data Matrix symbol sizes.
package reedsolomon

import "github.com/max-scw/dmc-service/symbol/gf256"

// generatorPoly builds the degree-nsym generator polynomial
// prod(x - alpha^i) for i in [1, nsym], returned high-degree-first
// (poly[0] is the leading coefficient, always 1) so it lines up with the
// systematic-division loop in Encode, which relies on msg[i+0] cancelling
// to zero at each step.
func generatorPoly(nsym int) []byte {
	poly := []byte{1}
	for i := 0; i < nsym; i++ {
		poly = mulMonomial(poly, gf256.Exp(i+1))
	}

	// mulMonomial builds the polynomial low-degree-first; reverse it so
	// poly[0] holds the leading (degree-nsym) coefficient.
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
	return poly
}

// mulMonomial multiplies poly by the monomial (x + root) over GF(256).
func mulMonomial(poly []byte, root byte) []byte {
	result := make([]byte, len(poly)+1)
	for i, c := range poly {
		result[i] = gf256.Add(result[i], gf256.Multiply(c, root))
		result[i+1] = gf256.Add(result[i+1], c)
	}
	return result
}

// Encode computes nsym ECC codewords for data via systematic polynomial
// division by the generator polynomial of degree nsym.
func Encode(data []byte, nsym int) []byte {
	gen := generatorPoly(nsym)
	msg := make([]byte, len(data)+nsym)
	copy(msg, data)

	for i := 0; i < len(data); i++ {
		coef := msg[i]
		if coef == 0 {
			continue
		}
		for j, g := range gen {
			msg[i+j] = gf256.Add(msg[i+j], gf256.Multiply(g, coef))
		}
	}
	return msg[len(data):]
}

// Interleave splits data into numBlocks blocks (round-robin by position,
// the standard ECC200 interleaving scheme for large symbol sizes), computes
// nsymPerBlock ECC codewords per block, and returns the full codeword
// stream in transmission order: all data codewords for every block
// interleaved, followed by all ECC codewords for every block interleaved.
func Interleave(data []byte, numBlocks, nsymPerBlock int) []byte {
	if numBlocks <= 1 {
		return append(append([]byte{}, data...), Encode(data, nsymPerBlock)...)
	}

	blocks := make([][]byte, numBlocks)
	for i := range blocks {
		blocks[i] = make([]byte, 0, len(data)/numBlocks+1)
	}
	for i, b := range data {
		blocks[i%numBlocks] = append(blocks[i%numBlocks], b)
	}

	ecc := make([][]byte, numBlocks)
	for i, block := range blocks {
		ecc[i] = Encode(block, nsymPerBlock)
	}

	out := make([]byte, 0, len(data)+numBlocks*nsymPerBlock)
	maxBlockLen := 0
	for _, b := range blocks {
		if len(b) > maxBlockLen {
			maxBlockLen = len(b)
		}
	}
	for pos := 0; pos < maxBlockLen; pos++ {
		for _, b := range blocks {
			if pos < len(b) {
				out = append(out, b[pos])
			}
		}
	}
	for pos := 0; pos < nsymPerBlock; pos++ {
		for _, e := range ecc {
			out = append(out, e[pos])
		}
	}
	return out
}
