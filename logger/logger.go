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

// Package logger holds the package-level logger shared by the primegen
// engine. It is silent by default; callers embedding the engine in a larger
// service call SetLogger to route output into their own log pipeline.
package logger

import "github.com/getamis/sirius/log"

var current = log.Discard()

// Logger returns the currently configured logger.
func Logger() log.Logger {
	return current
}

// SetLogger replaces the package-level logger.
func SetLogger(l log.Logger) {
	current = l
}
