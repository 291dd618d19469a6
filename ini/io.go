// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	goini "github.com/go-ini/ini"
)

// loadOptions configures the underlying parser for the game's dialect:
// sections repeat, options repeat within a section, bare option names
// are allowed and only "=" separates a name from its value.
var loadOptions = goini.LoadOptions{
	AllowNonUniqueSections:     true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	AllowBooleanKeys:           true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
	KeyValueDelimiters:         "=",
}

// Parse reads a text data file. Lines are either "[section]",
// "name = value", a bare "name" (read as "true"), blank, or ";" comments.
// Options before the first section are an error.
func Parse(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	gf, err := goini.LoadSources(loadOptions, b)
	if err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	f := &File{}
	for i, gs := range gf.Sections() {
		if i == 0 && gs.Name() == goini.DefaultSection {
			if keys := gs.Keys(); len(keys) > 0 {
				return nil, fmt.Errorf("ini: option %q outside of a section", keys[0].Name())
			}
			continue
		}
		sc := &Section{Name: strings.TrimSpace(gs.Name())}
		for _, k := range gs.Keys() {
			vals := k.ValueWithShadows()
			if len(vals) == 0 {
				vals = []string{k.Value()}
			}
			for _, v := range vals {
				sc.Add(k.Name(), v)
			}
		}
		f.Sections = append(f.Sections, sc)
	}
	return f, nil
}

// Open reads and parses the file at the given path.
func Open(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Write writes the file in text form, one blank line between sections.
// Options without values are not written.
func Write(w io.Writer, f *File) error {
	gf := goini.Empty(loadOptions)
	for _, sc := range f.Sections {
		gs, err := gf.NewSection(sc.Name)
		if err != nil {
			return fmt.Errorf("ini: section %q: %w", sc.Name, err)
		}
		for _, o := range sc.Options {
			for _, v := range o.Values {
				if _, err := gs.NewKey(o.Name, v); err != nil {
					return fmt.Errorf("ini: [%s] %s: %w", sc.Name, o.Name, err)
				}
			}
		}
	}
	_, err := gf.WriteTo(w)
	return err
}

// Save writes the file to the given path.
func Save(path string, f *File) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(fp, f)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
