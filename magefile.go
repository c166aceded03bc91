//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

func Build() error {
	mg.Deps(BuildEvaluator)
	mg.Deps(BuildMeasureAlgos)
	fmt.Println("Compilation finished")
	return nil
}

func BuildEvaluator() error {
	fmt.Println("Building evaluator executable...")
	return goBuild("./bin/evaluator", "./evaluator")
}

func BuildMeasureAlgos() error {
	fmt.Println("Building measureAlgos executable...")
	return goBuild("./bin/measureAlgos", "./measureAlgos")
}

// Test runs the unit tests. The HDF5 writer needs cgo, the rest does not.
func Test() error {
	cmd := exec.Command("go", "test", "./pkg/...", "./evaluator/...")
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// HDF5 is linked through cgo, CGO_LDFLAGS and CGO_CFLAGS are passed through
func goBuild(output string, pkg string) error {
	cmd := exec.Command("go", "build", "-o", output, pkg)
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func cgoEnv() []string {
	ldflags := os.Getenv("CGO_LDFLAGS")
	cflags := os.Getenv("CGO_CFLAGS")
	return append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", ldflags),
		fmt.Sprintf("CGO_CFLAGS=%s", cflags))
}
