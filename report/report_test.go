package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/netlist"
	"github.com/db47h/gatesim/report"
	"github.com/db47h/gatesim/simtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T) (*netlist.Netlist, *gatesim.Simulation) {
	t.Helper()
	n, err := netlist.ParseString(simtest.Preamble(1) + `
gate a input
gate b buf a
probe b
flip a 1 0
done
layout
<svg/>
`)
	require.NoError(t, err)
	s, err := n.Simulation()
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return n, s
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	err := report.WriteText(&b, gatesim.Probes{
		{Time: 0, Gate: "a", Value: 1},
		{Time: 12, Gate: "out", Value: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "0 a 1\n12 out 0\n", b.String())
}

func TestWriteJSON(t *testing.T) {
	n, s := run(t)
	r := report.NewResult(n.Circuit, s.Probes(), n.Layout)

	var b bytes.Buffer
	require.NoError(t, report.WriteJSON(&b, r))

	var doc struct {
		Circuit struct {
			Tables map[string][]int `json:"tables"`
			Gates  []map[string]interface{}
		} `json:"circuit"`
		Trace  [][]interface{} `json:"trace"`
		Layout string          `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &doc))
	assert.Equal(t, []int{1, 0}, doc.Circuit.Tables["not"])
	require.Len(t, doc.Circuit.Gates, 2)
	assert.Equal(t, "b", doc.Circuit.Gates[1]["id"])
	assert.Equal(t, "buf", doc.Circuit.Gates[1]["type"])
	assert.Equal(t, true, doc.Circuit.Gates[1]["probed"])
	assert.Equal(t, []interface{}{"b"}, doc.Circuit.Gates[0]["outputs"])
	assert.Equal(t, [][]interface{}{{1.0, "b", 1.0}}, doc.Trace)
	assert.Equal(t, "<svg/>\n", doc.Layout)
}

func TestWriteJSONP(t *testing.T) {
	r := &report.Result{Trace: []report.Entry{{Time: 3, Gate: "g", Value: 1}}, Layout: "<svg/>"}
	var b bytes.Buffer
	require.NoError(t, report.WriteJSONP(&b, r))
	out := b.String()
	assert.Contains(t, out, `"layout": "<svg/>"`)
	require.True(t, strings.HasPrefix(out, "onJsonp({"), out)
	require.True(t, strings.HasSuffix(out, "});\n"), out)

	var doc map[string]interface{}
	body := strings.TrimSuffix(strings.TrimPrefix(out, "onJsonp("), ");\n")
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, []interface{}{[]interface{}{3.0, "g", 1.0}}, doc["trace"])
}

func TestWriteYAML(t *testing.T) {
	r := &report.Result{
		Trace:  []report.Entry{{Time: 3, Gate: "g", Value: 1}, {Time: 4, Gate: "h", Value: 0}},
		Layout: "x",
	}
	var b bytes.Buffer
	require.NoError(t, report.WriteYAML(&b, r))
	assert.Contains(t, b.String(), "- [3, g, 1]")

	var doc struct {
		Trace  [][]interface{} `yaml:"trace"`
		Layout string          `yaml:"layout"`
	}
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &doc))
	assert.Equal(t, [][]interface{}{{3, "g", 1}, {4, "h", 0}}, doc.Trace)
	assert.Equal(t, "x", doc.Layout)
}
