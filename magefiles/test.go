//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests with precondition checks compiled out.
func (Test) Unit() error {
	return goTest()
}

// Runs the unit tests with the extramath_debug precondition checks enabled.
func (Test) Debug() error {
	return goTest(debugTag)
}

// Runs both test configurations.
func (Test) All() {
	mg.SerialDeps(Test.Unit, Test.Debug)
}

// Tidies go.mod and vets every package.
func (Test) Vet() error {
	return goTidy()
}
