/*
Package gatesim provides a discrete-event simulator for digital logic
networks.

A circuit is a graph of gates, each with an output value, a truth table, a
fixed propagation delay and a list of downstream gates. Stimuli are injected
as transitions ("gate G's output becomes V at time T"). The simulator pops
transitions in time order, applies all the transitions of a given instant,
then schedules new transitions for every gate downstream of a changed gate.
Value changes on probed gates are recorded in a probe log.

The core in this package only deals with scheduling. The circuit graph itself
lives in package circuit and is reached through the Gate and Graph
interfaces; netlist parsing and result serialization live in packages netlist
and report.

A run is single threaded: a Simulation must not be used concurrently, and the
gates it references must not be mutated by anyone else while it runs.

*/
package gatesim
