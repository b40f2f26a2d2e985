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

// Package paillierkeys assembles Paillier-style moduli N = p*q out of two
// FIPS 186-4 Shawe-Taylor provable primes, demonstrating the primegen
// engine feeding a higher-level protocol the way a full key-generation
// pipeline would.
package paillierkeys

import (
	"errors"
	"hash"
	"math/big"

	"github.com/getamis/primegen/crypto/primegen"
	"github.com/getamis/primegen/logger"
)

const (
	// SafeModulusBits is the minimum permitted bit length of N, matching the
	// teacher's safePubKeySize convention for Paillier public keys.
	SafeModulusBits = 2048

	maxFactorAttempts = 100
)

var (
	// ErrSmallModulus is returned when the requested modulus size falls
	// below SafeModulusBits.
	ErrSmallModulus = errors.New("paillierkeys: modulus size below safe minimum")
	// ErrExceedMaxRetry is returned when two distinct provable primes could
	// not be produced within maxFactorAttempts tries.
	ErrExceedMaxRetry = errors.New("paillierkeys: exceeded max retries drawing distinct factors")
)

// Modulus is an assembled Paillier-style RSA modulus N = P*Q, carrying both
// factors so the caller can derive lambda(N) = lcm(P-1, Q-1) itself.
type Modulus struct {
	N *big.Int
	P *big.Int
	Q *big.Int
}

// Generate draws two distinct Shawe-Taylor provable primes of bits/2 length
// each via h and seed, and assembles N = P*Q. bits must be at least
// SafeModulusBits. seed is advanced independently for each factor so the two
// primes never collide on the same hash-generator trajectory.
func Generate(h hash.Hash, bits int, seed []byte) (*Modulus, error) {
	if bits < SafeModulusBits {
		return nil, ErrSmallModulus
	}

	factorBits := bits / 2
	workingSeed := append([]byte(nil), seed...)

	p, err := drawFactor(h, factorBits, workingSeed)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxFactorAttempts; attempt++ {
		incSeedOnce(workingSeed)
		q, err := drawFactor(h, factorBits, workingSeed)
		if err != nil {
			return nil, err
		}
		if q.Cmp(p) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		logger.Logger().Debug("paillierkeys: assembled modulus", "bits", primegen.BitLength(n))
		return &Modulus{N: n, P: p, Q: q}, nil
	}
	return nil, ErrExceedMaxRetry
}

func drawFactor(h hash.Hash, length int, seed []byte) (*big.Int, error) {
	out, err := primegen.GenerateRandomPrime(h, length, seed)
	if err != nil {
		return nil, err
	}
	copy(seed, out.PrimeSeed)
	return out.Prime, nil
}

func incSeedOnce(seed []byte) {
	for i := len(seed) - 1; i >= 0; i-- {
		seed[i]++
		if seed[i] != 0 {
			return
		}
	}
}
