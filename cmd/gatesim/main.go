// Command gatesim runs a logic circuit simulation described by a netlist file
// and prints the changes of probed gates.
//
// Usage:
//
//	gatesim [flags] <netlist> [json]
//
// The optional json argument is a shorthand for --format jsonp, which writes
// the circuit, the trace of all gates and the layout to circuit.jsonp.
//
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
