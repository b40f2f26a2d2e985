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
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/primegen/crypto/primegen/safeprime"
)

var safePrimeCmd = &cobra.Command{
	Use:   "safe-prime",
	Short: `Search for a safe prime p = 2q+1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := viper.GetInt("length")

		pair, err := safeprime.Generate(rand.Reader, length)
		if err != nil {
			return err
		}

		fmt.Println("p:", pair.P.String())
		fmt.Println("q:", pair.Q.String())
		return nil
	},
}

func init() {
	safePrimeCmd.Flags().Int("length", 128, "requested bit length of p")
}
