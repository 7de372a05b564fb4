package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/flagwave"

	// MainPackage is the package built into the flagwave binary.
	MainPackage = "./cmd/flagwave"

	// BinPath is the output path for built binaries.
	BinPath = "./bin/flagwave"

	// ProjectRoot is the root directory of the project.
	ProjectRoot string
)

// Initialize sets up the magetasks package.
// Call this from the Magefile init() function.
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}

	binDir := filepath.Join(ProjectRoot, filepath.Dir(BinPath))
	return os.MkdirAll(binDir, 0o750)
}
