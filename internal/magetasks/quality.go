package magetasks

import (
	"fmt"
)

// QualityCheck runs the linters, the tests and a build, in that order. Lint
// findings are reported but do not stop the run.
func QualityCheck() error {
	PrintH1Header("flagwave Quality Assurance")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	PrintSuccess("Quality checks complete")
	return nil
}

// CheckFlags validates the sample flags file with the built binary.
func CheckFlags() error {
	PrintH2Header("Check flags.yaml")

	return run("flagwave -check", BinPath, "-check", "-config", "flags.yaml")
}
