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

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/blake2b"

	"github.com/getamis/primegen/crypto/primegen/paillierkeys"
)

var paillierCmd = &cobra.Command{
	Use:   "paillier-modulus",
	Short: `Assemble a Paillier-style modulus from two provable primes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := viper.GetInt("bits")
		seedHex := viper.GetString("seed-hex")

		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return err
		}
		if len(seed) == 0 {
			seed = []byte{0x01, 0x02}
		}

		h, err := blake2b.New256(nil)
		if err != nil {
			log.Crit("Failed to construct blake2b digest", "err", err)
		}

		mod, err := paillierkeys.Generate(h, bits, seed)
		if err != nil {
			return err
		}

		fmt.Println("n:", mod.N.String())
		fmt.Println("p:", mod.P.String())
		fmt.Println("q:", mod.Q.String())
		return nil
	},
}

func init() {
	paillierCmd.Flags().Int("bits", paillierkeys.SafeModulusBits, "requested bit length of N")
	paillierCmd.Flags().String("seed-hex", "0102", "hex-encoded initial seed")
}
