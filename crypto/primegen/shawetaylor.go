// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primegen

import (
	"hash"
	"math/big"

	"github.com/getamis/primegen/logger"
)

// ShaweTaylorOutput is the result of GenerateRandomPrime.
type ShaweTaylorOutput struct {
	// Prime is the generated provable prime; BitLength(Prime) == the
	// requested length.
	Prime *big.Int
	// PrimeSeed is the seed after every hash-generator increment performed
	// during the call. Its length equals the input seed's length.
	PrimeSeed []byte
	// PrimeGenCounter is the cumulative number of candidates tested
	// across every recursion level of this call.
	PrimeGenCounter int
}

// GenerateRandomPrime runs the FIPS 186-4 C.6 Shawe-Taylor construction,
// deriving a provable prime of the given bit length from hash and seed.
// The caller's seed is never modified; the returned PrimeSeed is a clone
// advanced by every hash-generator step performed during the call.
func GenerateRandomPrime(h hash.Hash, length int, seed []byte) (*ShaweTaylorOutput, error) {
	if h == nil {
		return nil, ErrNilHash
	}
	if length < 2 {
		return nil, ErrLengthTooSmall
	}
	if seed == nil {
		return nil, ErrNilSeed
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	workingSeed := append([]byte(nil), seed...)
	prime, counter, err := shaweTaylorGenerate(h, length, workingSeed, 0)
	if err != nil {
		logger.Logger().Warn("shawe-taylor generation exhausted", "length", length)
		return nil, err
	}
	return &ShaweTaylorOutput{
		Prime:           prime,
		PrimeSeed:       workingSeed,
		PrimeGenCounter: counter,
	}, nil
}

// shaweTaylorGenerate recurses on length and threads prime_gen_counter
// across recursion levels, starting from startCounter. seed is mutated in
// place: every hash-generator step advances it.
func shaweTaylorGenerate(h hash.Hash, length int, seed []byte, startCounter int) (*big.Int, int, error) {
	if length < 33 {
		return shaweTaylorBase(h, length, seed, startCounter)
	}

	recLen := (length + 3) / 2
	c0, counter, err := shaweTaylorGenerate(h, recLen, seed, startCounter)
	if err != nil {
		return nil, counter, err
	}
	logger.Logger().Debug("shawe-taylor: recursion level advanced", "length", length, "counter", counter)

	digestSize := h.Size()
	outLen := 8 * digestSize
	iterations := (length - 1) / outLen
	oldCounter := counter

	x := hashGen(h, seed, iterations+1)
	topBit := new(big.Int).Lsh(big1, uint(length-1))
	x.Mod(x, topBit)
	x.Or(x, topBit)

	c0x2 := new(big.Int).Lsh(c0, 1)

	t2 := nextEvenQuotient(x, big1, c0x2)
	c := new(big.Int).Mul(t2, c0)
	c.Add(c, big1)

	dt := 0
	for {
		if BitLength(c) > length {
			upper := new(big.Int).Sub(topBit, big1)
			t2 = nextEvenQuotient(upper, big0, c0x2)
			c = new(big.Int).Mul(t2, c0)
			c.Add(c, big1)
		}

		counter++
		if HasAnySmallFactors(c) {
			advanceSeed(seed, iterations+1)
		} else {
			a := hashGen(h, seed, iterations+1)
			cMinus3 := new(big.Int).Sub(c, big3)
			a.Mod(a, cMinus3)
			a.Add(a, big2)

			t2.Add(t2, big.NewInt(int64(dt)))
			dt = 0

			z := new(big.Int).Exp(a, t2, c)
			zMinus1 := new(big.Int).Sub(z, big1)
			g := new(big.Int).GCD(nil, nil, c, zMinus1)
			zc0 := new(big.Int).Exp(z, c0, c)
			if g.Cmp(big1) == 0 && zc0.Cmp(big1) == 0 {
				return c, counter, nil
			}
		}

		if counter >= 4*length+oldCounter {
			return nil, counter, ErrGenerationExhausted
		}
		dt += 2
		c = new(big.Int).Add(c, c0x2)
	}
}

// nextEvenQuotient computes ((numerator - subtrahend) / denom + 1) * 2,
// the "t*2" term from FIPS 186-4 C.6 step 4.4 and its step-1 recomputation.
func nextEvenQuotient(numerator, subtrahend, denom *big.Int) *big.Int {
	t := new(big.Int).Sub(numerator, subtrahend)
	t.Div(t, denom)
	t.Add(t, big1)
	return t.Lsh(t, 1)
}

// shaweTaylorBase implements the length < 33 base case of FIPS 186-4 C.6.
func shaweTaylorBase(h hash.Hash, length int, seed []byte, startCounter int) (*big.Int, int, error) {
	digestSize := h.Size()
	cLen := digestSize
	if cLen < 4 {
		cLen = 4
	}

	c0 := make([]byte, cLen)
	c1 := make([]byte, cLen)
	counter := startCounter
	mask := ^uint32(0) >> uint(32-length)

	for {
		hashInto(h, seed, c0)
		incSeed(seed, 1)
		hashInto(h, seed, c1)
		incSeed(seed, 1)

		var c uint32
		for i := 0; i < 4; i++ {
			c = c<<8 | uint32(c0[i]^c1[i])
		}
		c &= mask
		c |= (uint32(1) << uint(length-1)) | 1

		counter++
		if IsPrimeUint32(c) {
			return ValueOf(c), counter, nil
		}
		if counter > 4*length {
			return nil, counter, ErrGenerationExhausted
		}
	}
}

// hashInto computes hash(seed) and right-aligns it into out, zero-padding
// on the left when out is longer than the digest.
func hashInto(h hash.Hash, seed []byte, out []byte) {
	h.Reset()
	h.Write(seed)
	sum := h.Sum(nil)
	for i := range out {
		out[i] = 0
	}
	copy(out[len(out)-len(sum):], sum)
}

// hashGen concatenates count successive hash(seed) outputs into a
// big-endian buffer, writing the first hash at the highest-address slot,
// and advances seed by one after each hash. Returns the buffer as a
// non-negative BigInt.
func hashGen(h hash.Hash, seed []byte, count int) *big.Int {
	digestSize := h.Size()
	buf := make([]byte, count*digestSize)
	for i := 0; i < count; i++ {
		h.Reset()
		h.Write(seed)
		sum := h.Sum(nil)
		offset := (count - 1 - i) * digestSize
		copy(buf[offset:offset+digestSize], sum)
		incSeed(seed, 1)
	}
	return new(big.Int).SetBytes(buf)
}

// advanceSeed increments seed by 1, `times` times, without computing any
// hash output. Used to replicate hash_gen's seed advancement on the
// small-factor skip path, where the hash outputs themselves are discarded.
func advanceSeed(seed []byte, times int) {
	for i := 0; i < times; i++ {
		incSeed(seed, 1)
	}
}

// incSeed treats seed as a big-endian integer and adds c to it, starting
// from the least-significant byte and propagating carry leftward. It stops
// once c is exhausted or the most significant byte has been consumed;
// overflow past the top byte is silently discarded.
func incSeed(seed []byte, c uint64) {
	for i := len(seed) - 1; i >= 0 && c != 0; i-- {
		sum := uint64(seed[i]) + c
		seed[i] = byte(sum)
		c = sum >> 8
	}
}
