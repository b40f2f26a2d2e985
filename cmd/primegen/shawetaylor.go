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

	"github.com/getamis/primegen/crypto/primegen"
)

var shaweTaylorCmd = &cobra.Command{
	Use:   "shawe-taylor",
	Short: `Derive a FIPS 186-4 C.6 provable prime from a hash and seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := viper.GetInt("length")
		seedHex := viper.GetString("seed-hex")

		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return err
		}
		if len(seed) == 0 {
			seed = []byte{0x01}
		}

		h, err := blake2b.New256(nil)
		if err != nil {
			log.Crit("Failed to construct blake2b digest", "err", err)
		}

		out, err := primegen.GenerateRandomPrime(h, length, seed)
		if err != nil {
			return err
		}

		fmt.Println("prime:", out.Prime.String())
		fmt.Println("prime_seed:", hex.EncodeToString(out.PrimeSeed))
		fmt.Println("prime_gen_counter:", out.PrimeGenCounter)
		return nil
	},
}

func init() {
	shaweTaylorCmd.Flags().Int("length", 256, "requested bit length of the prime")
	shaweTaylorCmd.Flags().String("seed-hex", "01", "hex-encoded initial seed")
}
