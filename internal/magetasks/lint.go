package magetasks

import (
	"errors"
	"fmt"
)

var golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Staticcheck and golangci-lint are skipped when
// they are not installed.
func LintAll() error {
	var errs []error

	if err := LintFormat(); err != nil {
		errs = append(errs, err)
	}
	if err := LintVet(); err != nil {
		errs = append(errs, err)
	}
	if err := LintStaticcheck(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return run("Go Format", "go", "fmt", "./...")
}

// LintVet runs go vet.
func LintVet() error {
	return run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optionalTool(run("Staticcheck", "staticcheck", "./..."),
		"Staticcheck not found (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optionalTool(run("Golangci-lint", "golangci-lint", "run", golangciDisabled, "--timeout=5m", "./..."),
		"Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optionalTool(run("Golangci-lint Fix", "golangci-lint", "run", "--fix", golangciDisabled, "--timeout=5m", "./..."),
		"Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
}

// optionalTool prints install hints for missing tools and passes err through.
func optionalTool(err error, hint string) error {
	if err == nil {
		return nil
	}
	if IsCommandNotFound(err) {
		PrintWarning(hint)
		return err
	}
	return fmt.Errorf("lint failed: %w", err)
}
