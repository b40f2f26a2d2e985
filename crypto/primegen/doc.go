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

// Package primegen implements the FIPS 186-4 Appendix C prime machinery:
// the Miller-Rabin probabilistic tests of C.3 and the Shawe-Taylor provable
// prime construction of C.6. Candidates are plain *big.Int; the only
// collaborators an implementation borrows are an io.Reader for randomness
// and a hash.Hash for the Shawe-Taylor digest.
package primegen
