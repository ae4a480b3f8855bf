//go:build mage

// hey mage targets: build, test, vet, install.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target: build the binary.
var Default = Build

func ldflags() string {
	version := os.Getenv("HEY_VERSION")
	if version == "" {
		version = "dev"
	}
	return "-X main.version=" + version
}

// Build builds the hey binary.
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "hey", "./cmd/hey")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Dev runs vet and tests, then builds with the race detector.
func Dev() error {
	mg.Deps(Vet, Test)
	return sh.RunV("go", "build", "-race", "-ldflags", ldflags(), "-o", "hey", "./cmd/hey")
}

// Install copies the built binary to GOPATH/bin (defaults to ~/go/bin when GOPATH is unset).
func Install() error {
	mg.Deps(Build)
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	bin := filepath.Join(gopath, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		return err
	}
	return sh.RunV("cp", "-v", "./hey", bin+"/")
}
