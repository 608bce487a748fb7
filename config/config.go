// SPDX-License-Identifier: GPL-2.0-or-later

// Package config reads and writes the YAML file seeding the cvars.
package config

import (
	"os"
	"sort"

	"meshrender/conlog"
	"meshrender/cvar"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on disk layout:
//
//	cvars:
//	  gamma: 80
//	  vid_width: 1280
type File struct {
	Cvars map[string]string `yaml:"cvars"`
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

func (f *File) names() []string {
	names := make([]string, 0, len(f.Cvars))
	for n := range f.Cvars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply sets every listed cvar. Nothing is set if one of them is unknown.
func (f *File) Apply() error {
	names := f.names()
	for _, n := range names {
		if _, ok := cvar.Get(n); !ok {
			return errors.Errorf("unknown cvar %q", n)
		}
	}
	for _, n := range names {
		cv, _ := cvar.Get(n)
		cv.SetByString(f.Cvars[n])
		conlog.DPrintf("config: %s = %q\n", n, f.Cvars[n])
	}
	return nil
}

// Archived collects the current values of all ARCHIVE cvars.
func Archived() *File {
	f := &File{Cvars: make(map[string]string)}
	for _, cv := range cvar.All() {
		if cv.Archive() {
			f.Cvars[cv.Name()] = cv.String()
		}
	}
	return f
}

func (f *File) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "encoding config")
	}
	return data, nil
}

func (f *File) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
