// SPDX-License-Identifier: MIT

// Command rotconv converts rotations between Euler angles, axis-angle,
// quaternions and matrices, one at a time or from a YAML job file.
//
//	rotconv convert --euler 0,0,90
//	rotconv convert --quat 1,0,1,0 --order zyx --unit rad
//	rotconv batch jobs.yaml --workers 4
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
