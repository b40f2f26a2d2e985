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

import "errors"

var (
	// ErrNilHash is returned if the digest collaborator is nil.
	ErrNilHash = errors.New("primegen: nil hash")
	// ErrNilRNG is returned if the randomness collaborator is nil.
	ErrNilRNG = errors.New("primegen: nil rng")
	// ErrNilSeed is returned if the seed is nil.
	ErrNilSeed = errors.New("primegen: nil seed")
	// ErrEmptySeed is returned if the seed has zero length.
	ErrEmptySeed = errors.New("primegen: empty seed")
	// ErrLengthTooSmall is returned if the requested bit length is below 2.
	ErrLengthTooSmall = errors.New("primegen: length must be at least 2")
	// ErrIterationsTooSmall is returned if iterations is below 1.
	ErrIterationsTooSmall = errors.New("primegen: iterations must be at least 1")
	// ErrCandidateTooSmall is returned if the candidate is below 2.
	ErrCandidateTooSmall = errors.New("primegen: candidate must be at least 2")
	// ErrBaseOutOfRange is returned if base >= candidate-1.
	ErrBaseOutOfRange = errors.New("primegen: base must be less than candidate-1")
	// ErrMinGreaterThanMax is returned if CreateRandomInRange is asked for an empty range.
	ErrMinGreaterThanMax = errors.New("primegen: min is greater than max")
	// ErrGenerationExhausted is returned if GenerateRandomPrime exceeds its iteration budget.
	ErrGenerationExhausted = errors.New("primegen: prime generation counter exceeded budget")
)
