// Package harness runs end-to-end CLI scenarios against a fresh database.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - args: [add, buy milk, walk dog]
//	  - args: [add, buy milk]
//	    exit: 1
//	  - args: []
//	final:
//	  todos:
//	    - { id: 1, title: buy milk, done: false }
//
// Each step runs the CLI once with the given arguments. A step passes when
// the process exit code equals exit (default 0). When final is present, the
// store contents after the last step must equal todos exactly, in id order.
//
// # Transcripts
//
// Every run records a transcript: the command line, its stdout and its exit
// code, for each step. RunWithGolden compares the transcript against
// testdata/golden/<name>.golden. Stderr is not part of the transcript since
// it carries driver-specific error text.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
