// Package project reads and writes morph projects: a named pair of SVG path
// strings plus the paint and viewport shared by both shapes.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"shapeshifter/internal/actionmode"
	"shapeshifter/internal/pathdata"
)

// Project is the on-disk YAML document.
type Project struct {
	Name        string `yaml:"name"`
	Width       int    `yaml:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"`
	FillColor   string `yaml:"fillColor,omitempty"`
	StrokeColor string `yaml:"strokeColor,omitempty"`
	From        string `yaml:"from"`
	To          string `yaml:"to"`
}

var ErrEmptyPath = errors.New("path data is empty")

// Default returns a starter project morphing a square into a triangle.
func Default() *Project {
	return &Project{
		Name:      "untitled",
		Width:     24,
		Height:    24,
		FillColor: "#000000",
		From:      "M 4 4 L 20 4 L 20 20 L 4 20 Z",
		To:        "M 12 4 L 20 20 L 4 20 Z",
	}
}

// Load reads the project at path. A leading ~ is expanded.
func Load(path string) (*Project, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand project path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project YAML: %w", err)
	}
	if _, _, err := p.Paths(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes p to path, creating parent directories.
func Save(path string, p *Project) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand project path: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func parseSide(name, d string) (pathdata.Path, error) {
	if d == "" {
		return pathdata.Path{}, fmt.Errorf("%s: %w", name, ErrEmptyPath)
	}
	p, err := pathdata.Parse(d)
	if err != nil {
		return pathdata.Path{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// Paths parses both sides.
func (p *Project) Paths() (from, to pathdata.Path, err error) {
	if from, err = parseSide("from", p.From); err != nil {
		return
	}
	to, err = parseSide("to", p.To)
	return
}

// Layers returns the two sides as morphable layers sharing the project's
// paint.
func (p *Project) Layers() (from, to actionmode.MorphableLayer, err error) {
	fp, tp, err := p.Paths()
	if err != nil {
		return from, to, err
	}
	mk := func(side string, d pathdata.Path) actionmode.MorphableLayer {
		return actionmode.MorphableLayer{
			ID:          p.Name,
			Name:        p.Name + " (" + side + ")",
			PathData:    d,
			FillColor:   p.FillColor,
			StrokeColor: p.StrokeColor,
		}
	}
	return mk("from", fp), mk("to", tp), nil
}

// ToBlock returns the morph block of the project.
func (p *Project) ToBlock() (actionmode.Block, error) {
	fp, tp, err := p.Paths()
	if err != nil {
		return actionmode.Block{}, err
	}
	return actionmode.Block{LayerID: p.Name, From: fp, To: tp}, nil
}

// SetPaths stores both paths as SVG path data. Split bookkeeping is not
// kept: a reloaded project starts without split points or split sub-paths.
func (p *Project) SetPaths(from, to pathdata.Path) {
	p.From, p.To = from.String(), to.String()
}
