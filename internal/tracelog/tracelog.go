// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package tracelog provides the logging surface shared by every propagator.
// The engine itself has no user-visible failure mode and no CLI, so logging
// here is purely diagnostic: debug-level traces of a propagator's inputs and
// outputs, off by default.
package tracelog

import (
	log "github.com/sirupsen/logrus"
)

// SetLevel raises or lowers the verbosity of propagator tracing. Callers
// embedding this engine in a larger solver would typically wire this to
// their own `--verbose` flag; this library has none.
func SetLevel(level log.Level) {
	log.SetLevel(level)
}

// Propagation logs the inputs and outputs of a single propagator
// application at debug level, mirroring the inclusion/exclusion tracing in
// schema_stack.go's "including source file %s" idiom.
func Propagation(op string, inputs []string, outputs []string) {
	log.Debugf("%s: %v -> %v", op, inputs, outputs)
}

// Invalid logs that a propagator detected unsatisfiability, i.e. produced an
// invalid domain.
func Invalid(op string, reason string) {
	log.Debugf("%s: invalid (%s)", op, reason)
}

// RoundLimitExceeded logs that a fixed-point driver hit its defensive round
// cap without converging.
func RoundLimitExceeded(limit uint) {
	log.Warnf("propagate.FixedPoint: exceeded %d rounds without converging", limit)
}
