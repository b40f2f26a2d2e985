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
	cryptorand "crypto/rand"
	"io"
	"math/big"
)

// Commonly reused small constants, following the crypto/utils convention of
// module-level big1/big2/... rather than re-allocating them on every call.
var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// ValueOf builds a BigInt from a u32 word.
func ValueOf(x uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(x))
}

// BitLength returns the minimum number of bits needed to represent |x|.
// Zero has length 0, matching big.Int.BitLen.
func BitLength(x *big.Int) int {
	return x.BitLen()
}

// CreateRandomInRange uniformly samples an integer in the inclusive interval
// [min, max] using rng as the entropy source. When min == max, the shared
// value is returned directly without consulting rng.
func CreateRandomInRange(min, max *big.Int, rng io.Reader) (*big.Int, error) {
	switch min.Cmp(max) {
	case 1:
		return nil, ErrMinGreaterThanMax
	case 0:
		return new(big.Int).Set(min), nil
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	// span = max - min + 1, the size of the inclusive interval.
	span := new(big.Int).Sub(max, min)
	span.Add(span, big1)

	// crypto/rand.Int already performs uniform rejection sampling over
	// [0, span), so we don't hand-roll the next_u32 rejection loop ourselves.
	r, err := cryptorand.Int(rng, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, min), nil
}
