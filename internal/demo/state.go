// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package demo

import "fmt"

// State is a step of the demo state machine.
type State int

const (
	StateStart State = iota
	StateReportedResult
	StateReportedRecovery
)

var stateNames = [...]string{
	StateStart:            "start",
	StateReportedResult:   "reported-result",
	StateReportedRecovery: "reported-recovery",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stateNames) {
		return nil, fmt.Errorf("unknown state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}
