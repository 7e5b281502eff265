// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package calc implements the integer calculator used by the divdemo CLI.
//
// Division reports a zero divisor through the ErrDivisionByZero sentinel
// instead of panicking. Callers that prefer to switch on a value rather than
// inspect an error can use Try, which returns a tagged Outcome.
package calc

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Calculator performs integer arithmetic. The zero value is ready to use.
type Calculator struct{}

// New returns a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Divide returns the quotient of dividend and divisor, truncated toward zero.
// It returns ErrDivisionByZero when divisor is zero.
func (c *Calculator) Divide(dividend, divisor int) (int, error) {
	if divisor == 0 {
		return 0, ErrDivisionByZero
	}
	return dividend / divisor, nil
}

// Kind tags the result of a division attempt.
type Kind int

const (
	// KindOK marks a division that produced a quotient.
	KindOK Kind = iota
	// KindDivisionByZero marks a division attempted with a zero divisor.
	KindDivisionByZero
)

var kindNames = map[Kind]string{
	KindOK:             "ok",
	KindDivisionByZero: "division_by_zero",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name. Both encoding/json and yaml.v3 use it.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown outcome kind %d", int(k))
	}
	return []byte(name), nil
}

// Outcome is the result of one division attempt.
// Quotient is meaningful only when Kind is KindOK.
type Outcome struct {
	Dividend int  `json:"dividend" yaml:"dividend"`
	Divisor  int  `json:"divisor" yaml:"divisor"`
	Kind     Kind `json:"outcome" yaml:"outcome"`
	Quotient *int `json:"quotient,omitempty" yaml:"quotient,omitempty"`
}

// OK reports whether the attempt produced a quotient.
func (o Outcome) OK() bool {
	return o.Kind == KindOK
}

// Try divides dividend by divisor and returns the tagged outcome.
func (c *Calculator) Try(dividend, divisor int) Outcome {
	out := Outcome{Dividend: dividend, Divisor: divisor}
	q, err := c.Divide(dividend, divisor)
	if errors.Is(err, ErrDivisionByZero) {
		out.Kind = KindDivisionByZero
		return out
	}
	out.Kind = KindOK
	out.Quotient = &q
	return out
}
