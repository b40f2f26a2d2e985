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

// smallPrimeMask has bit i set iff i is prime, for i in [0, 32). Used to
// decide primality of x < 32 in a single AND.
const smallPrimeMask uint32 = 0xA08A28AC

// wheelResidues are the residues mod 30 coprime to 2*3*5; every prime above
// 5 falls on base+r for some block base and some r here.
var wheelResidues = [8]uint32{1, 7, 11, 13, 17, 19, 23, 29}

// IsPrimeUint32 decides primality for any x fitting in a u32 word via
// wheel-2-3-5 trial division.
func IsPrimeUint32(x uint32) bool {
	if x < 32 {
		return smallPrimeMask&(1<<x) != 0
	}
	if x%2 == 0 || x%3 == 0 || x%5 == 0 {
		return false
	}

	base := uint32(0)
	for {
		if uint64(base)*uint64(base) >= uint64(x) {
			return true
		}
		if base > 0xFFFF {
			// base has overflowed 16 bits; any remaining factor would
			// exceed sqrt(x) for any x representable in 32 bits, so the
			// remaining work is bounded and x is declared prime.
			return true
		}
		for _, r := range wheelResidues {
			d := base + r
			if d > 1 && x%d == 0 {
				return false
			}
		}
		base += 30
	}
}
