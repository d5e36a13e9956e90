// Package core defines the shared value types exchanged between the
// agentroute packages: conversation turns, tool results, routing decisions
// and parsed tool actions. Keeping these contracts in one leaf package
// prevents cyclic dependencies between the router, parser, memory and
// agent packages.
package core
