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
	"crypto/rand"
	"crypto/sha256"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GenerateRandomPrime", func() {
	It("rejects a nil hash", func() {
		_, err := GenerateRandomPrime(nil, 256, []byte{0x01})
		Expect(err).Should(Equal(ErrNilHash))
	})

	It("rejects a length below 2", func() {
		_, err := GenerateRandomPrime(sha256.New(), 1, []byte{0x01})
		Expect(err).Should(Equal(ErrLengthTooSmall))
	})

	It("rejects an empty seed", func() {
		_, err := GenerateRandomPrime(sha256.New(), 256, []byte{})
		Expect(err).Should(Equal(ErrEmptySeed))
	})

	It("returns a 256-bit prime for SHA-256 deterministically (P9, P10)", func() {
		seed := []byte{0x01}
		seedCopy := append([]byte(nil), seed...)

		first, err := GenerateRandomPrime(sha256.New(), 256, seed)
		Expect(err).Should(BeNil())
		Expect(seed).Should(Equal(seedCopy), "caller's seed buffer must be untouched")

		second, err := GenerateRandomPrime(sha256.New(), 256, seed)
		Expect(err).Should(BeNil())

		Expect(BitLength(first.Prime)).Should(Equal(256))
		Expect(first.Prime.Cmp(second.Prime)).Should(Equal(0))
		Expect(first.PrimeSeed).Should(Equal(second.PrimeSeed))
		Expect(first.PrimeGenCounter).Should(Equal(second.PrimeGenCounter))
	})

	It("produces a prime that also passes the Miller-Rabin test (P8)", func() {
		out, err := GenerateRandomPrime(sha256.New(), 128, []byte{0x2a, 0x00})
		Expect(err).Should(BeNil())
		ok, err := IsProbablePrime(out.Prime, rand.Reader, 20)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("produces primes of various lengths, including below the base-case cutoff", func() {
		for _, length := range []int{8, 16, 32, 33, 64, 100} {
			out, err := GenerateRandomPrime(sha256.New(), length, []byte{0x10, 0x20})
			Expect(err).Should(BeNil())
			Expect(BitLength(out.Prime)).Should(Equal(length))
		}
	})
})
