// Package commands wires the barbell CLI: the interactive screen on the bare
// command, plus subcommands that read or change the same persisted loadout.
package commands
