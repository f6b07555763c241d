// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// ValidValue returns true if v is a valid logic value (0 or 1).
//
func ValidValue(v int) bool {
	return v == 0 || v == 1
}

// A TruthTable maps input combinations to an output value.
//
// Outputs is indexed by the input values read as a binary number, the first
// input being the most significant bit. For example, the table of a 2 inputs
// AND gate is {0, 0, 0, 1}.
//
type TruthTable struct {
	Name    string
	Outputs []int
}

func newTruthTable(name string, outputs []int) (*TruthTable, error) {
	n := len(outputs)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.Errorf("truth table %s: output count %d is not a power of two", name, n)
	}
	for i, v := range outputs {
		if !ValidValue(v) {
			return nil, errors.Errorf("truth table %s: invalid output value %d at index %d", name, v, i)
		}
	}
	out := make([]int, n)
	copy(out, outputs)
	return &TruthTable{Name: name, Outputs: out}, nil
}

// Inputs returns the number of inputs of the table.
//
func (t *TruthTable) Inputs() int {
	return bits.TrailingZeros(uint(len(t.Outputs)))
}

// Lookup returns the output value for the given inputs. It panics if the number
// of inputs does not match the table.
//
func (t *TruthTable) Lookup(inputs ...int) int {
	if len(inputs) != t.Inputs() {
		panic("truth table " + t.Name + ": expected " + strconv.Itoa(t.Inputs()) + " inputs, got " + strconv.Itoa(len(inputs)))
	}
	i := 0
	for _, v := range inputs {
		i = i<<1 | v&1
	}
	return t.Outputs[i]
}

// A GateType associates a truth table with a propagation delay.
//
type GateType struct {
	Name  string
	Table *TruthTable
	Delay int
}
