package render

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/browser"
)

// openFile is swapped in tests.
var openFile = browser.OpenFile

// OpenInBrowser opens a local file in the default browser.
func OpenInBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("open in browser: %w", err)
	}
	if err := openFile(abs); err != nil {
		return fmt.Errorf("open in browser %q: %w", abs, err)
	}
	return nil
}
