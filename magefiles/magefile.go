//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/stlvec/stlvec-go/internal/styles"
)

const buildDir = "build"

// Generate regenerates the C export files of cmd/libstlvec.
func Generate() error {
	fmt.Println(styles.Header("Generating export tables..."))
	if err := sh.RunV("go", "generate", "./cmd/libstlvec"); err != nil {
		return fmt.Errorf("%s generate failed: %v", styles.Error("Error:"), err)
	}
	return nil
}

// libraryName is the shared library file for goos. The exports are built
// only for cgo targets other than windows.
func libraryName(goos string) (string, error) {
	switch goos {
	case "darwin":
		return "libstlvec.dylib", nil
	case "windows":
		return "", fmt.Errorf("the C library has no exports on %s; build it on linux or darwin", goos)
	default:
		return "libstlvec.so", nil
	}
}

func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(version) == "" {
		return ""
	}
	return "-X github.com/stlvec/stlvec-go/pkg/stlvec.Version=" + strings.TrimSpace(version)
}

// Build compiles the shared library and its C header into build/.
func Build() error {
	name, err := libraryName(runtime.GOOS)
	if err != nil {
		return fmt.Errorf("%s %v", styles.Error("Error:"), err)
	}
	mg.Deps(Generate)
	fmt.Println(styles.Header("Building shared library..."))

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(buildDir, name)
	env := map[string]string{"CGO_ENABLED": "1"}
	if err := sh.RunWithV(env, "go", "build", "-buildmode=c-shared", "-ldflags", ldflags(), "-o", out, "./cmd/libstlvec"); err != nil {
		return fmt.Errorf("%s build failed: %v", styles.Error("Error:"), err)
	}
	fmt.Println(styles.Value("built " + out))
	return nil
}

// Test runs all tests with cgo enabled so the export tests are included.
func Test() error {
	fmt.Println(styles.Header("Running tests..."))
	env := map[string]string{"CGO_ENABLED": "1"}
	if err := sh.RunWithV(env, "go", "test", "./...", "-count=1"); err != nil {
		return fmt.Errorf("%s tests failed: %v", styles.Error("Error:"), err)
	}
	if err := sh.RunV("go", "test", "-tags", "mage", "./magefiles", "-count=1"); err != nil {
		return fmt.Errorf("%s magefile tests failed: %v", styles.Error("Error:"), err)
	}
	return nil
}

// Clean removes build outputs.
func Clean() error {
	return sh.Rm(buildDir)
}

// CI regenerates, vets, tests and builds.
func CI() error {
	mg.SerialDeps(Generate, Test, Build)
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("%s vet failed: %v", styles.Error("Error:"), err)
	}
	fmt.Println(styles.Value("CI pipeline completed"))
	return nil
}
