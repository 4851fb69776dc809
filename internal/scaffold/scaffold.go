// Package scaffold creates empty course step directories: a random id
// directory holding properties.json and README stubs.
package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/generate"
)

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idLength   = 35
)

// Layout selects which files a step starts with.
type Layout int

const (
	// Full creates es/, en/ and docker/ directories.
	Full Layout = iota
	// Minimal creates en/ only, with a TODO heading.
	Minimal
)

// Properties is the step metadata written to properties.json.
type Properties struct {
	NumExercises            int    `json:"numExercises"`
	EstimatedCompletionTime int    `json:"estimatedCompletionTime"`
	Author                  string `json:"author"`
	AuthorGithubID          string `json:"authorGithubId"`
}

// Scaffolder writes step directories to a filesystem.
type Scaffolder struct {
	fs     zfilesystem.ReadWriteFileFS
	gen    *generate.Generator
	author string
	github string
}

// New creates a scaffolder rooted at fsys.
func New(fsys zfilesystem.ReadWriteFileFS, gen *generate.Generator, author, github string) *Scaffolder {
	return &Scaffolder{fs: fsys, gen: gen, author: author, github: github}
}

// NewID returns a fresh step id.
func (s *Scaffolder) NewID() string {
	return s.gen.Token(idAlphabet, idLength)
}

// Create makes a new step directory and returns its id.
func (s *Scaffolder) Create(layout Layout) (string, error) {
	id := s.NewID()
	if err := s.CreateAt(id, layout); err != nil {
		return "", err
	}
	return id, nil
}

// CreateAt writes a step directory named id. It fails if id already exists.
func (s *Scaffolder) CreateAt(id string, layout Layout) error {
	if _, err := s.fs.ReadFile(path.Join(id, "properties.json")); err == nil {
		return fmt.Errorf("scaffold %s: already exists", id)
	}

	files, dirs, err := plan(layout)
	if err != nil {
		return fmt.Errorf("scaffold %s: %w", id, err)
	}

	for _, d := range dirs {
		if err := s.fs.MkdirAll(path.Join(id, d), 0o755); err != nil {
			return fmt.Errorf("scaffold %s: mkdir %s: %w", id, d, err)
		}
	}

	props, err := json.MarshalIndent(Properties{
		Author:         s.author,
		AuthorGithubID: s.github,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("scaffold %s: marshal properties: %w", id, err)
	}
	files["properties.json"] = string(props)

	for name, content := range files {
		if err := s.fs.WriteFile(path.Join(id, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("scaffold %s: write %s: %w", id, name, err)
		}
	}

	return nil
}

func plan(layout Layout) (files map[string]string, dirs []string, err error) {
	switch layout {
	case Full:
		return map[string]string{
			"es/README.md": "",
			"en/README.md": "# \n\n",
		}, []string{"es", "en", "docker"}, nil
	case Minimal:
		return map[string]string{
			"en/README.md": "# TODO\n",
		}, []string{"en"}, nil
	}
	return nil, nil, errors.New("unknown layout")
}
