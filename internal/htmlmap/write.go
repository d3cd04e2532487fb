package htmlmap

import (
	"fmt"
	"os"
)

// Write renders the document to path, replacing any existing file.
func Write(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := docTmpl.Execute(f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
