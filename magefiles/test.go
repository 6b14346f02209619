//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
)

// Test runs the full test suite with race detection.
func Test() error {
	return runGo("test", "-race", "./...")
}

// Vet runs static analysis over every package.
func Vet() error {
	return runGo("vet", "./...")
}

func runGo(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go %s: %w", args[0], err)
	}
	return nil
}
