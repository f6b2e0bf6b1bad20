//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "csvlocalizer"
	mainPkg = "./cmd/csvlocalizer"
	// sqlite3 needs cgo
	cgo = "1"
)

var Default = Build

// Build compiles the csvlocalizer binary into ./bin
func Build() error {
	mg.Deps(Vet)
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")

	ldflags := ""
	if version != "" {
		ldflags = fmt.Sprintf("-X codeberg.org/snonux/csvlocalizer/internal.Version=%s", version)
	}

	env := map[string]string{"CGO_ENABLED": cgo}
	return sh.RunWithV(env, "go", "build", "-ldflags", ldflags, "-o", filepath.Join("bin", binary), mainPkg)
}

// Test runs all unit tests
func Test() error {
	return sh.RunWithV(map[string]string{"CGO_ENABLED": cgo}, "go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs csvlocalizer into GOBIN
func Install() error {
	mg.Deps(Test)
	return sh.RunWithV(map[string]string{"CGO_ENABLED": cgo}, "go", "install", mainPkg)
}

// Clean removes build output
func Clean() error {
	fmt.Println("Removing bin/")
	return os.RemoveAll("bin")
}
