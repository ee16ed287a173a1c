// Package driving defines the driving ports (primary adapters' contracts)
// for Wikihop. Driving adapters (CLI commands, the game loop) call the
// core exclusively through these interfaces.
package driving
