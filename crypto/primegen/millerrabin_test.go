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
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

var _ = Describe("IsProbablePrime", func() {
	It("rejects the Carmichael number 561", func() {
		ok, err := IsProbablePrime(big.NewInt(561), rand.Reader, 40)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("accepts the Mersenne prime M31 = 2147483647", func() {
		ok, err := IsProbablePrime(big.NewInt(2147483647), rand.Reader, 40)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a nil candidate", func() {
		_, err := IsProbablePrime(nil, rand.Reader, 1)
		Expect(err).Should(Equal(ErrCandidateTooSmall))
	})

	It("rejects zero iterations", func() {
		_, err := IsProbablePrime(big.NewInt(7), rand.Reader, 0)
		Expect(err).Should(Equal(ErrIterationsTooSmall))
	})
})

var _ = Describe("EnhancedProbablePrimeTest", func() {
	It("extracts a factor of 3 or 5 from 15", func() {
		out, err := EnhancedProbablePrimeTest(big.NewInt(15), rand.Reader, 10)
		Expect(err).Should(BeNil())
		Expect(out.ProvablyComposite()).Should(BeTrue())
		f, ok := out.Factor()
		Expect(ok).Should(BeTrue())
		Expect(f.Int64() == 3 || f.Int64() == 5).Should(BeTrue())
	})

	It("reports 2 as the factor of an even candidate", func() {
		out, err := EnhancedProbablePrimeTest(big.NewInt(100), rand.Reader, 5)
		Expect(err).Should(BeNil())
		f, ok := out.Factor()
		Expect(ok).Should(BeTrue())
		Expect(f.Int64()).Should(Equal(int64(2)))
	})
})

func isPrimeTrialDivisionBig(n int64) bool {
	return isPrimeTrialDivision(n)
}

// zeroReader always fills its buffer with zero bytes, forcing every
// CreateRandomInRange draw it feeds to return exactly the range's min. Used
// to pin EnhancedProbablePrimeTest to a fixed base for regression tests,
// since crypto/rand.Int returns the first sampled value that is < span and
// an all-zero sample is always 0 < span.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// TestEnhancedProbablePrimeTestFactorsCarmichael561WithBase2 pins the
// witness to base=2 against the Carmichael number 561 = 3*11*17. The
// witness chain is 2^35 mod 561 = 263 -> 166 -> 67 -> 1, so x must be 67
// (the value squared to reach 1, not 1 itself) when the factor is
// extracted: gcd(67-1, 561) = 33. A prior version of this test only used
// rand.Reader, so it could not reliably catch a regression that reported
// the wrong x here.
func TestEnhancedProbablePrimeTestFactorsCarmichael561WithBase2(t *testing.T) {
	out, err := EnhancedProbablePrimeTest(big.NewInt(561), zeroReader{}, 1)
	assert.NoError(t, err)
	assert.True(t, out.ProvablyComposite())
	f, ok := out.Factor()
	assert.True(t, ok)
	assert.Equal(t, int64(33), f.Int64())
}

// TestEnhancedFactorValidity covers P6: whenever a factor is extracted it
// must be a nontrivial divisor of the candidate.
func TestEnhancedFactorValidity(t *testing.T) {
	composites := []int64{4, 6, 9, 15, 21, 25, 33, 35, 49, 51, 77, 91, 100, 121, 561, 1001}
	for _, n := range composites {
		candidate := big.NewInt(n)
		out, err := EnhancedProbablePrimeTest(candidate, rand.Reader, 20)
		assert.NoError(t, err)
		f, ok := out.Factor()
		if !ok {
			continue
		}
		assert.True(t, f.Cmp(big1) > 0, "factor of %d must be > 1, got %s", n, f)
		assert.True(t, f.Cmp(candidate) < 0, "factor of %d must be < candidate, got %s", n, f)
		rem := new(big.Int).Mod(candidate, f)
		assert.Zero(t, rem.Int64(), "factor %s does not divide %d", f, n)
	}
}

// TestMillerRabinSoundnessOnComposites covers P4: every tested composite has
// at least one base that is rejected by is_probable_prime_to_base.
func TestMillerRabinSoundnessOnComposites(t *testing.T) {
	for n := int64(4); n <= 2000; n++ {
		if isPrimeTrialDivisionBig(n) {
			continue
		}
		candidate := big.NewInt(n)
		rejected := false
		for b := int64(2); b <= n-2; b++ {
			ok, err := IsProbablePrimeToBase(candidate, big.NewInt(b))
			assert.NoError(t, err)
			if !ok {
				rejected = true
				break
			}
		}
		assert.True(t, rejected, "no base rejected composite %d", n)
	}
}

// TestMillerRabinCompletenessOnPrimes covers P5: every base in range must
// pass is_probable_prime_to_base for a genuine prime.
func TestMillerRabinCompletenessOnPrimes(t *testing.T) {
	for p := int64(3); p <= 500; p++ {
		if !isPrimeTrialDivisionBig(p) {
			continue
		}
		candidate := big.NewInt(p)
		for b := int64(2); b <= p-2; b++ {
			ok, err := IsProbablePrimeToBase(candidate, big.NewInt(b))
			assert.NoError(t, err)
			assert.True(t, ok, "prime %d rejected base %d", p, b)
		}
	}
}
