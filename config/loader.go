// Package config reads the formatter's file configuration (config.yml).
package config

import (
	"chat-formatter/errors"
	"chat-formatter/format"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const header = `# Chat format.
# Placeholders: {name}, {prefix}, {suffix}
# Colours: &0-&f, &k-&o, &r and hex colours written &#rrggbb
`

var validate = validator.New()

// File is the content of config.yml.
type File struct {
	Format string `yaml:"format" validate:"max=256"`
}

type Loader struct {
	Path string `validate:"required"`
}

func NewLoader(path string) (*Loader, error) {
	l := &Loader{Path: path}
	if err := validate.Struct(l); err != nil {
		return nil, fmt.Errorf("config loader: %w", err)
	}
	return l, nil
}

// SaveDefault writes the default configuration unless a file already exists.
func (l *Loader) SaveDefault() error {
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}

	data, err := yaml.Marshal(File{Format: format.DefaultFormat})
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.Path, append([]byte(header), data...), 0o644)
}

// LoadFormat returns the raw format. A missing file or an empty key yields
// the default format.
func (l *Loader) LoadFormat() (string, error) {
	file, err := l.Load()
	if err != nil {
		return "", err
	}
	if file.Format == "" {
		return format.DefaultFormat, nil
	}
	return file.Format, nil
}

func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.Path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, err
	}

	var file File
	if err = yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("%w: %v", errors.ErrInvalidFormat, err)
	}
	if err = validate.Struct(file); err != nil {
		return File{}, fmt.Errorf("%w: %v", errors.ErrInvalidFormat, err)
	}
	return file, nil
}
