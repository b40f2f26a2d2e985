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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("BigInt", func() {
	DescribeTable("BitLength()", func(x *big.Int, expected int) {
		Expect(BitLength(x)).Should(Equal(expected))
	},
		Entry("zero", big.NewInt(0), 0),
		Entry("one", big.NewInt(1), 1),
		Entry("two", big.NewInt(2), 2),
		Entry("255", big.NewInt(255), 8),
		Entry("256", big.NewInt(256), 9),
	)

	Context("CreateRandomInRange()", func() {
		It("returns min directly when min == max", func() {
			min := big.NewInt(7)
			got, err := CreateRandomInRange(min, big.NewInt(7), nil)
			Expect(err).Should(BeNil())
			Expect(got.Cmp(min)).Should(Equal(0))
		})

		It("fails when min > max", func() {
			_, err := CreateRandomInRange(big.NewInt(8), big.NewInt(7), rand.Reader)
			Expect(err).Should(Equal(ErrMinGreaterThanMax))
		})

		It("fails on a nil rng when a draw is actually needed", func() {
			_, err := CreateRandomInRange(big.NewInt(1), big.NewInt(7), nil)
			Expect(err).Should(Equal(ErrNilRNG))
		})

		It("samples within the inclusive interval", func() {
			min := big.NewInt(10)
			max := big.NewInt(20)
			for i := 0; i < 200; i++ {
				got, err := CreateRandomInRange(min, max, rand.Reader)
				Expect(err).Should(BeNil())
				Expect(got.Cmp(min)).Should(BeNumerically(">=", 0))
				Expect(got.Cmp(max)).Should(BeNumerically("<=", 0))
			}
		})
	})

	It("ValueOf constructs from a u32 word", func() {
		Expect(ValueOf(42).Cmp(big.NewInt(42))).Should(Equal(0))
	})
})
