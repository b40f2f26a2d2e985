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

import "math/big"

// SmallFactorLimit is the largest prime tested by HasAnySmallFactors.
const SmallFactorLimit = 211

// smallPrimeGroups bundles the primes <= SmallFactorLimit so that each
// group's product fits in 32 bits. A candidate is reduced mod the group
// product once via big.Int.Mod, then checked against every prime in the
// group with plain uint32 remainders. The grouping changes nothing
// observable; the tests check coverage against their own prime list.
var smallPrimeGroups = []struct {
	product uint32
	primes  []uint32
}{
	{223092870, []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	{58642669, []uint32{29, 31, 37, 41, 43}},
	{600662303, []uint32{47, 53, 59, 61, 67}},
	{33984931, []uint32{71, 73, 79, 83}},
	{89809099, []uint32{89, 97, 101, 103}},
	{167375713, []uint32{107, 109, 113, 127}},
	{371700317, []uint32{131, 137, 139, 149}},
	{645328247, []uint32{151, 157, 163, 167}},
	{1070560157, []uint32{173, 179, 181, 191}},
	{1596463769, []uint32{193, 197, 199, 211}},
}

// HasAnySmallFactors reports whether any prime <= SmallFactorLimit divides
// candidate. candidate must be >= 2.
func HasAnySmallFactors(candidate *big.Int) bool {
	mod := new(big.Int)
	product := new(big.Int)
	for _, group := range smallPrimeGroups {
		product.SetUint64(uint64(group.product))
		mod.Mod(candidate, product)
		m := uint32(mod.Uint64())
		for _, p := range group.primes {
			if m%p == 0 {
				return true
			}
		}
	}
	return false
}
