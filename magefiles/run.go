//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Evaluates the example rig once and prints the report.
func (Run) Rig() error {
	fmt.Println("Run rig...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-rig", "testbed/testdata/arm.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Watches the example rig and re-evaluates it on every save.
func (Run) Watch() error {
	if _, err := executeCmd("go", withArgs("run", "main.go", "-rig", "testbed/testdata/arm.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

// Evaluates the example rig with the precondition checks compiled in.
func (Run) Debug() error {
	_, err := executeCmd("go", withArgs("run", "main.go", "-rig", "testbed/testdata/arm.toml", "-log-level", "debug"),
		withEnv("GOFLAGS=-tags="+debugTag), withStream())
	return err
}
