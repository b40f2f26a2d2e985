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
	"io"
	"math/big"

	"github.com/getamis/primegen/logger"
)

// MillerRabinVerdict is the tag of a MillerRabinOutput.
type MillerRabinVerdict int

const (
	// VerdictProbablyPrime means no witness of compositeness was found.
	VerdictProbablyPrime MillerRabinVerdict = iota
	// VerdictCompositeWithFactor means a nontrivial factor was extracted.
	VerdictCompositeWithFactor
	// VerdictCompositeNotPrimePower means the candidate was proven composite
	// but no factor fell out of the gcd step.
	VerdictCompositeNotPrimePower
)

// MillerRabinOutput is the tri-valued result of EnhancedProbablePrimeTest.
// Only this package can construct one, so the three reachable shapes
// (ProbablyPrime, CompositeWithFactor, CompositeNotPrimePower) are the only
// ones that exist; factor is never set without ProvablyComposite() being true.
type MillerRabinOutput struct {
	verdict MillerRabinVerdict
	factor  *big.Int
}

// ProvablyComposite reports whether the candidate was proven composite.
func (o MillerRabinOutput) ProvablyComposite() bool {
	return o.verdict != VerdictProbablyPrime
}

// Factor returns the extracted nontrivial factor and true, or (nil, false)
// if no factor was extracted by this run.
func (o MillerRabinOutput) Factor() (*big.Int, bool) {
	if o.factor == nil {
		return nil, false
	}
	return new(big.Int).Set(o.factor), true
}

// IsNotPrimePower reports the derived predicate: provably composite and no
// factor was extracted.
func (o MillerRabinOutput) IsNotPrimePower() bool {
	return o.verdict == VerdictCompositeNotPrimePower
}

func probablyPrimeOutput() MillerRabinOutput {
	return MillerRabinOutput{verdict: VerdictProbablyPrime}
}

func compositeWithFactorOutput(f *big.Int) MillerRabinOutput {
	return MillerRabinOutput{verdict: VerdictCompositeWithFactor, factor: f}
}

func compositeNotPrimePowerOutput() MillerRabinOutput {
	return MillerRabinOutput{verdict: VerdictCompositeNotPrimePower}
}

func validateMillerRabinArgs(candidate *big.Int, rng io.Reader, iterations int) error {
	if candidate == nil || candidate.Cmp(big2) < 0 {
		return ErrCandidateTooSmall
	}
	if rng == nil {
		return ErrNilRNG
	}
	if iterations < 1 {
		return ErrIterationsTooSmall
	}
	return nil
}

// decompose writes nMinus1 = m * 2^a with m odd and returns (m, a).
func decompose(nMinus1 *big.Int) (*big.Int, int) {
	m := new(big.Int).Set(nMinus1)
	a := 0
	for m.Bit(0) == 0 {
		m.Rsh(m, 1)
		a++
	}
	return m, a
}

// millerRabinWitness runs the FIPS 186-4 C.3 inner loop: it returns true if
// base fails to witness that candidate is composite.
func millerRabinWitness(candidate, nMinus1, m *big.Int, a int, base *big.Int) bool {
	z := new(big.Int).Exp(base, m, candidate)
	if z.Cmp(big1) == 0 || z.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < a-1; i++ {
		z = new(big.Int).Exp(z, big2, candidate)
		if z.Cmp(nMinus1) == 0 {
			return true
		}
		if z.Cmp(big1) == 0 {
			return false
		}
	}
	return false
}

// IsProbablePrime runs the plain FIPS 186-4 C.3.1 Miller-Rabin test:
// iterations independent random bases, rejecting on the first witness.
func IsProbablePrime(candidate *big.Int, rng io.Reader, iterations int) (bool, error) {
	if err := validateMillerRabinArgs(candidate, rng, iterations); err != nil {
		return false, err
	}
	if BitLength(candidate) == 2 {
		return true, nil
	}
	if candidate.Bit(0) == 0 {
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(candidate, big1)
	m, a := decompose(nMinus1)
	upper := new(big.Int).Sub(candidate, big2)

	for i := 0; i < iterations; i++ {
		b, err := CreateRandomInRange(big2, upper, rng)
		if err != nil {
			return false, err
		}
		if !millerRabinWitness(candidate, nMinus1, m, a, b) {
			return false, nil
		}
	}
	return true, nil
}

// IsProbablePrimeToBase runs a single FIPS 186-4 C.3 witness check against a
// fixed, caller-chosen base instead of a random one.
func IsProbablePrimeToBase(candidate, base *big.Int) (bool, error) {
	if candidate == nil || candidate.Cmp(big2) < 0 {
		return false, ErrCandidateTooSmall
	}
	nMinus1 := new(big.Int).Sub(candidate, big1)
	if base == nil || base.Cmp(big2) < 0 || base.Cmp(nMinus1) >= 0 {
		return false, ErrBaseOutOfRange
	}
	if BitLength(candidate) == 2 {
		return true, nil
	}
	if candidate.Bit(0) == 0 {
		return false, nil
	}

	m, a := decompose(nMinus1)
	return millerRabinWitness(candidate, nMinus1, m, a, base), nil
}

// EnhancedProbablePrimeTest runs the FIPS 186-4 C.3.2 enhanced test, which
// additionally distinguishes a provably composite candidate with an
// extracted factor from one that is merely not a prime power.
func EnhancedProbablePrimeTest(candidate *big.Int, rng io.Reader, iterations int) (MillerRabinOutput, error) {
	if err := validateMillerRabinArgs(candidate, rng, iterations); err != nil {
		return MillerRabinOutput{}, err
	}
	if BitLength(candidate) == 2 {
		return probablyPrimeOutput(), nil
	}
	if candidate.Bit(0) == 0 {
		return compositeWithFactorOutput(new(big.Int).Set(big2)), nil
	}

	nMinus1 := new(big.Int).Sub(candidate, big1)
	m, a := decompose(nMinus1)
	upper := new(big.Int).Sub(candidate, big2)

	for i := 0; i < iterations; i++ {
		b, err := CreateRandomInRange(big2, upper, rng)
		if err != nil {
			return MillerRabinOutput{}, err
		}

		g := new(big.Int).GCD(nil, nil, b, candidate)
		if g.Cmp(big1) > 0 {
			logger.Logger().Debug("enhanced MR: base shares a factor with candidate")
			return compositeWithFactorOutput(g), nil
		}

		z := new(big.Int).Exp(b, m, candidate)
		if z.Cmp(big1) == 0 || z.Cmp(nMinus1) == 0 {
			continue
		}

		// x trails z by one squaring: when z becomes 1, x is the value that
		// was squared to reach it. The checks above already ruled out x
		// being 1 or candidate-1 on this and every prior iteration, so x is
		// a genuine non-trivial square root of unity and gcd(x-1, candidate)
		// is guaranteed to be a nontrivial factor of candidate.
		x := new(big.Int)
		cleared := false
		for j := 0; j < a-1 && !cleared; j++ {
			x.Set(z)
			z = new(big.Int).Exp(z, big2, candidate)
			if z.Cmp(big1) == 0 {
				g = new(big.Int).GCD(nil, nil, new(big.Int).Sub(x, big1), candidate)
				if g.Cmp(big1) > 0 {
					logger.Logger().Debug("enhanced MR: extracted factor from non-trivial root of unity")
					return compositeWithFactorOutput(g), nil
				}
				return compositeNotPrimePowerOutput(), nil
			}
			if z.Cmp(nMinus1) == 0 {
				cleared = true
			}
		}
		if cleared {
			continue
		}
		// z is neither 1 nor candidate-1 here: square once more and keep
		// the last value that is not 1 as x before the final gcd.
		x.Set(z)
		z = new(big.Int).Exp(z, big2, candidate)
		if z.Cmp(big1) != 0 {
			x.Set(z)
		}
		g = new(big.Int).GCD(nil, nil, new(big.Int).Sub(x, big1), candidate)
		if g.Cmp(big1) > 0 {
			return compositeWithFactorOutput(g), nil
		}
		return compositeNotPrimePowerOutput(), nil
	}
	return probablyPrimeOutput(), nil
}
