package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/azula-lang/azula/token"
	"gopkg.in/yaml.v3"
)

// ErrorAt ties an error to the token it is about, so callers can render
// diagnostics with the token's own position information.
type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Kind == token.EndOfFile {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Where, e.Err.Error())
}

func (e ErrorAt) Unwrap() error {
	return e.Err
}

// FindSourceFiles returns every .azl file under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(path, ".azl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	return files, nil
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}
