// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package report serializes the results of a simulation run.
//
package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/circuit"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteText writes one "time gate value" line per probe record.
//
func WriteText(w io.Writer, probes gatesim.Probes) error {
	bw := bufio.NewWriter(w)
	for _, p := range probes {
		bw.WriteString(strconv.Itoa(p.Time))
		bw.WriteByte(' ')
		bw.WriteString(p.Gate)
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(p.Value))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write probes")
}

// Gate describes a gate in a Result.
//
type Gate struct {
	Name    string   `json:"id" yaml:"id"`
	Type    string   `json:"type" yaml:"type"`
	Table   string   `json:"table" yaml:"table"`
	Delay   int      `json:"delay" yaml:"delay"`
	Inputs  []string `json:"inputs" yaml:"inputs"`
	Outputs []string `json:"outputs" yaml:"outputs"`
	Probed  bool     `json:"probed" yaml:"probed"`
	Output  int      `json:"output" yaml:"output"`
}

// Circuit describes a circuit in a Result.
//
type Circuit struct {
	Tables map[string][]int `json:"tables" yaml:"tables"`
	Gates  []Gate           `json:"gates" yaml:"gates"`
}

// Entry is a probe record. It is serialized as a [time, gate, value] array.
//
type Entry gatesim.Probe

func (e Entry) array() []interface{} {
	return []interface{}{e.Time, e.Gate, e.Value}
}

// MarshalJSON implements json.Marshaler.
//
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.array())
}

// MarshalYAML implements yaml.Marshaler.
//
func (e Entry) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{}
	if err := n.Encode(e.array()); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

// Result is the full output of a simulation run: the circuit, the trace of
// probe records and the layout passed through from the netlist.
//
type Result struct {
	Circuit Circuit `json:"circuit" yaml:"circuit"`
	Trace   []Entry `json:"trace" yaml:"trace"`
	Layout  string  `json:"layout" yaml:"layout"`
}

// NewResult builds a Result. The gate outputs and probe flags are those of c
// at the time of the call.
//
func NewResult(c *circuit.Circuit, probes gatesim.Probes, layout string) *Result {
	r := &Result{
		Circuit: Circuit{Tables: make(map[string][]int)},
		Trace:   make([]Entry, len(probes)),
		Layout:  layout,
	}
	for _, t := range c.Tables() {
		r.Circuit.Tables[t.Name] = t.Outputs
	}
	for _, g := range c.Gates() {
		t := g.Type()
		r.Circuit.Gates = append(r.Circuit.Gates, Gate{
			Name:    g.Name(),
			Type:    t.Name,
			Table:   t.Table.Name,
			Delay:   t.Delay,
			Inputs:  g.InputNames(),
			Outputs: g.OutputNames(),
			Probed:  g.Probed(),
			Output:  g.Output(),
		})
	}
	for i, p := range probes {
		r.Trace[i] = Entry(p)
	}
	return r
}

func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	// layouts are usually SVG
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc
}

// WriteJSON writes r as indented JSON.
//
func WriteJSON(w io.Writer, r *Result) error {
	return errors.Wrap(newJSONEncoder(w).Encode(r), "write json")
}

// JSONPCallback is the function name used by WriteJSONP.
//
const JSONPCallback = "onJsonp"

// WriteJSONP writes r as JSON wrapped in a call to JSONPCallback, suitable for
// loading with a script tag.
//
func WriteJSONP(w io.Writer, r *Result) error {
	var b bytes.Buffer
	if err := newJSONEncoder(&b).Encode(r); err != nil {
		return errors.Wrap(err, "write jsonp")
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(JSONPCallback + "(")
	bw.Write(bytes.TrimSuffix(b.Bytes(), []byte{'\n'}))
	bw.WriteString(");\n")
	return errors.Wrap(bw.Flush(), "write jsonp")
}

// WriteYAML writes r as YAML.
//
func WriteYAML(w io.Writer, r *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "write yaml")
	}
	return errors.Wrap(enc.Close(), "write yaml")
}
