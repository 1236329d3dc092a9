//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/stylish"
	binPath    = "bin/stylish"
)

// Default target - build the binary
var Default = Build

// Build builds the stylish binary with version metadata
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), date)

	fmt.Println("Building stylish...")
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/stylish")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// Install puts stylish on GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/stylish")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci)
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet and renders its diagnostics through stylish
func (Lint) Vet() error {
	mg.Deps(Build)
	return pipe("go vet ./... 2>&1 | " + binPath + " wrap --linter govet | " + binPath + " --exit-code")
}

// Golangci runs golangci-lint and renders its SARIF through stylish
func (Lint) Golangci() error {
	mg.Deps(Build)
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return pipe("golangci-lint run --output.sarif.path=stdout ./... | " + binPath + " --exit-code")
}

// pipe runs a shell pipeline with the caller's streams.
func pipe(script string) error {
	cmd := exec.Command("bash", "-o", "pipefail", "-c", script)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
