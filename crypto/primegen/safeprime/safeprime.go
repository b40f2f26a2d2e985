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

// Package safeprime searches for safe primes p = 2q+1, with p and q both
// prime, as a consumer of the primegen engine: every candidate q above
// primegen.SmallFactorLimit is sieved with primegen.HasAnySmallFactors, and
// every candidate q is checked with primegen.IsProbablePrime before p is
// checked against Pocklington's criterion.
package safeprime

import (
	"errors"
	"io"
	"math/big"

	"github.com/getamis/primegen/crypto/primegen"
	"github.com/getamis/primegen/logger"
)

var (
	// ErrLengthTooSmall is returned when the requested bit length for p
	// cannot hold a safe prime.
	ErrLengthTooSmall = errors.New("safeprime: length must be at least 3")
	// ErrNilRNG is returned when the randomness collaborator is nil.
	ErrNilRNG = errors.New("safeprime: nil rng")
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// Pair is a safe prime p = 2q+1 together with its Sophie Germain prime q.
type Pair struct {
	P *big.Int
	Q *big.Int
}

// Generate searches for a safe prime pair of the given bit length for p. It
// draws a random odd q of length-1 bits, rejects candidates caught by the
// small-factor sieve or by a Miller-Rabin pass on q, and certifies the
// resulting p = 2q+1 with Pocklington's criterion before running a
// Miller-Rabin pass on p itself.
func Generate(rng io.Reader, length int) (*Pair, error) {
	if length < 3 {
		return nil, ErrLengthTooSmall
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	qBits := length - 1
	min := new(big.Int).Lsh(big1, uint(qBits-1))
	max := new(big.Int).Sub(new(big.Int).Lsh(big1, uint(qBits)), big1)

	attempts := 0
	for {
		q, err := primegen.CreateRandomInRange(min, max, rng)
		if err != nil {
			return nil, err
		}
		q.SetBit(q, 0, 1)

		attempts++
		if attempts%4096 == 0 {
			logger.Logger().Debug("safeprime: search still running", "attempts", attempts, "length", length)
		}

		if q.Cmp(big.NewInt(primegen.SmallFactorLimit)) > 0 && primegen.HasAnySmallFactors(q) {
			continue
		}
		qPrime, err := primegen.IsProbablePrime(q, rng, 8)
		if err != nil {
			return nil, err
		}
		if !qPrime {
			continue
		}

		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big1)
		if primegen.BitLength(p) != length {
			continue
		}
		if !pocklingtonCertifies(p) {
			continue
		}
		pPrime, err := primegen.IsProbablePrime(p, rng, 20)
		if err != nil {
			return nil, err
		}
		if !pPrime {
			continue
		}

		logger.Logger().Debug("safeprime: found pair", "length", length, "attempts", attempts)
		return &Pair{P: p, Q: q}, nil
	}
}

// pocklingtonCertifies checks 2^(p-1) mod p == 1 for p = 2q+1, which proves
// p is prime given that q is already known to be prime.
// https://en.wikipedia.org/wiki/Pocklington_primality_test
func pocklingtonCertifies(p *big.Int) bool {
	pMinus1 := new(big.Int).Sub(p, big1)
	r := new(big.Int).Exp(big2, pMinus1, p)
	return r.Cmp(big1) == 0
}
