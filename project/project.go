// Package project is a file-backed host document: a YAML file holding the
// ordered units of a manuscript. It implements session.Host and
// session.Splitter.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// Unit types. An empty type is a normal scene.
const (
	TypeNormal = ""
	TypeNotes  = "notes"
	TypeTodo   = "todo"
	TypeUnused = "unused"
)

// Unit is one narrative unit (scene or section).
type Unit struct {
	ID               string `yaml:"id"`
	Title            string `yaml:"title,omitempty"`
	Type             string `yaml:"type,omitempty"`
	Status           string `yaml:"status,omitempty"`
	Viewpoint        string `yaml:"viewpoint,omitempty"`
	AppendToPrevious bool   `yaml:"append_to_previous,omitempty"`
	Content          string `yaml:"content"`
}

type document struct {
	Title  string `yaml:"title"`
	Locked bool   `yaml:"locked,omitempty"`
	Units  []Unit `yaml:"units"`
}

// Project is a loaded project file.
type Project struct {
	doc      document
	path     string
	modified bool

	prompter Prompter
	log      *zap.Logger
}

// Load reads the project at path. A nil log disables logging.
func Load(path string, prompter Prompter, log *zap.Logger) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read project: %w", err)
	}
	p, err := Parse(data, prompter, log)
	if err != nil {
		return nil, fmt.Errorf("unable to load project '%s': %w", path, err)
	}
	p.path = path
	return p, nil
}

// Parse decodes project data that is not backed by a file.
func Parse(data []byte, prompter Prompter, log *zap.Logger) (*Project, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode project data: %w", err)
	}
	seen := make(map[string]bool, len(doc.Units))
	for i, u := range doc.Units {
		if u.ID == "" {
			return nil, fmt.Errorf("unit %d has no id", i)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		switch u.Type {
		case TypeNormal, TypeNotes, TypeTodo, TypeUnused:
		default:
			return nil, fmt.Errorf("unit %q has unknown type %q", u.ID, u.Type)
		}
		seen[u.ID] = true
	}
	return &Project{doc: doc, prompter: prompter, log: log}, nil
}

func (p *Project) Title() string { return p.doc.Title }

func (p *Project) Path() string { return p.path }

// Units returns a copy of the units in order.
func (p *Project) Units() []Unit { return slices.Clone(p.doc.Units) }

// Unit returns the unit called id.
func (p *Project) Unit(id string) (Unit, bool) {
	i := p.index(id)
	if i < 0 {
		return Unit{}, false
	}
	return p.doc.Units[i], true
}

// SetPrompter changes who answers Confirm and Inform.
func (p *Project) SetPrompter(prompter Prompter) { p.prompter = prompter }

func (p *Project) IsModified() bool { return p.modified }

func (p *Project) Content(id string) (string, error) {
	i := p.index(id)
	if i < 0 {
		return "", fmt.Errorf("no unit %q", id)
	}
	return p.doc.Units[i].Content, nil
}

func (p *Project) SetContent(id, text string) error {
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("no unit %q", id)
	}
	p.doc.Units[i].Content = text
	return nil
}

func (p *Project) IsLocked() bool { return p.doc.Locked }

func (p *Project) Lock() {
	if !p.doc.Locked {
		p.doc.Locked = true
		p.modified = true
	}
}

func (p *Project) Unlock() {
	if p.doc.Locked {
		p.doc.Locked = false
		p.modified = true
		p.log.Info("Project unlocked")
	}
}

// Confirm asks the prompter; without one every question is answered no.
func (p *Project) Confirm(question string) bool {
	if p.prompter == nil {
		p.log.Warn("No prompter, assuming no", zap.String("question", question))
		return false
	}
	return p.prompter.Confirm(question)
}

func (p *Project) Inform(message string) {
	if p.prompter == nil {
		p.log.Info(message)
		return
	}
	p.prompter.Inform(message)
}

func (p *Project) NotifyModified() { p.modified = true }

// SplitUnit inserts an empty unit after id. The new unit continues the
// previous one: it takes over status and viewpoint and is marked as
// appended.
func (p *Project) SplitUnit(id string) (string, error) {
	i := p.index(id)
	if i < 0 {
		return "", fmt.Errorf("no unit %q", id)
	}
	newID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("unable to generate unit id: %w", err)
	}
	src := p.doc.Units[i]
	u := Unit{
		ID:               newID.String(),
		Type:             src.Type,
		Status:           src.Status,
		Viewpoint:        src.Viewpoint,
		AppendToPrevious: true,
	}
	p.doc.Units = slices.Insert(p.doc.Units, i+1, u)
	p.modified = true
	p.log.Debug("Unit added", zap.String("after", id), zap.String("unit", u.ID))
	return u.ID, nil
}

// Save writes the project back to its file when it was modified.
func (p *Project) Save() error {
	if !p.modified {
		return nil
	}
	if p.path == "" {
		return errors.New("project has no file")
	}
	if err := p.WriteFile(p.path); err != nil {
		return err
	}
	p.modified = false
	p.log.Info("Project saved", zap.String("file", p.path))
	return nil
}

// WriteFile writes the project to path through a temporary file in the same
// directory.
func (p *Project) WriteFile(path string) (err error) {
	data, err := yaml.Marshal(p.doc)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(f.Name()))
		}
	}()
	if _, err = f.Write(data); err != nil {
		err = multierr.Append(fmt.Errorf("unable to write project: %w", err), f.Close())
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("unable to write project: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("unable to replace project file: %w", err)
	}
	return nil
}

func (p *Project) index(id string) int {
	return slices.IndexFunc(p.doc.Units, func(u Unit) bool { return u.ID == id })
}
