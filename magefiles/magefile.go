//go:build mage

// Package main provides build targets for blockdrop using Mage.
//
// Usage:
//
//	mage build    Compile the blockdrop binary to bin/
//	mage test     Run all tests
//	mage vet      Run go vet
//	mage sim      Run a headless simulation and print the report
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "blockdrop"
	binaryDir  = "bin"
	cmdDir     = "./cmd/blockdrop"
)

// ldflags stamps the version from BLOCKDROP_VERSION, defaulting to dev.
func ldflags() string {
	version := os.Getenv("BLOCKDROP_VERSION")
	if version == "" {
		version = "dev"
	}
	return "-X main.version=" + version
}

// Build compiles the blockdrop binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Sim builds first, then runs a ten second headless simulation with a report.
func Sim() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "sim", "--duration", "10s", "--report")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
