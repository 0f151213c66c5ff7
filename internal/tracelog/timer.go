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
package tracelog

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Timer provides a snapshot of wall-clock time at a given point. Unlike
// PerfStats it tracks only elapsed time, not memory/GC deltas, since
// propagators allocate nothing but their own return values.
type Timer struct {
	startTime time.Time
}

// NewTimer starts a new timer.
func NewTimer() *Timer {
	return &Timer{time.Now()}
}

// Log logs the elapsed time since the timer started, prefixed by name, at
// debug level.
func (p *Timer) Log(prefix string) {
	log.Debugf("%s took %s", prefix, p.String())
}

// String reports the elapsed time since the timer started.
func (p *Timer) String() string {
	return fmt.Sprintf("%0.6fs", time.Since(p.startTime).Seconds())
}
