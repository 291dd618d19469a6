// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ini provides the record data model of the game's text data
// files: a file is an ordered list of named sections, each holding an
// ordered list of named options, and each option holds the text of
// every line that assigned it (the first one being the primary value).
//
// Option names are matched case-insensitively, as the game does.
package ini

import (
	"strings"
)

// Option is a named option of a [Section]. Every line of the
// section that assigns the option contributes one entry to Values.
type Option struct {
	// Name is the option name as written in the file.
	Name string

	// Values has the raw text of each assignment, in file order.
	Values []string
}

// First returns the primary (first) value of the option,
// or "" if there is none.
func (o *Option) First() string {
	if o == nil || len(o.Values) == 0 {
		return ""
	}
	return o.Values[0]
}

// Section is a named record with ordered options.
type Section struct {
	// Name is the section name without brackets.
	Name string

	// Options are the options of the section, in file order.
	Options []*Option
}

// NewSection returns a new section with the given name and options
// given as alternating name, value pairs.
func NewSection(name string, nameValues ...string) *Section {
	sc := &Section{Name: name}
	for i := 0; i+1 < len(nameValues); i += 2 {
		sc.Add(nameValues[i], nameValues[i+1])
	}
	return sc
}

// Is returns whether the section has the given name (case-insensitive).
func (sc *Section) Is(name string) bool {
	return strings.EqualFold(sc.Name, name)
}

// Option returns the option with the given name, or nil if there is none.
func (sc *Section) Option(name string) *Option {
	for _, o := range sc.Options {
		if strings.EqualFold(o.Name, name) {
			return o
		}
	}
	return nil
}

// Value returns the primary value of the given option and whether the
// option exists with at least one value.
func (sc *Section) Value(name string) (string, bool) {
	o := sc.Option(name)
	if o == nil || len(o.Values) == 0 {
		return "", false
	}
	return o.Values[0], true
}

// Nickname returns the value of the "nickname" option.
func (sc *Section) Nickname() string {
	v, _ := sc.Value("nickname")
	return v
}

// Add appends a value for the given option, adding the option
// if it does not exist yet.
func (sc *Section) Add(name, value string) {
	if o := sc.Option(name); o != nil {
		o.Values = append(o.Values, value)
		return
	}
	sc.Options = append(sc.Options, &Option{Name: name, Values: []string{value}})
}

// SetFirst replaces the primary value of the given option, inserting
// a new single-value option if it does not exist or has no values.
func (sc *Section) SetFirst(name, value string) {
	o := sc.Option(name)
	if o == nil {
		sc.Options = append(sc.Options, &Option{Name: name, Values: []string{value}})
		return
	}
	if len(o.Values) == 0 {
		o.Values = []string{value}
		return
	}
	o.Values[0] = value
}

// ClearFirst removes the primary value of the given option.
// The option itself is removed once it has no values left.
// It returns false if there was nothing to remove.
func (sc *Section) ClearFirst(name string) bool {
	for i, o := range sc.Options {
		if !strings.EqualFold(o.Name, name) {
			continue
		}
		if len(o.Values) > 1 {
			o.Values = o.Values[1:]
			return true
		}
		sc.Options = append(sc.Options[:i], sc.Options[i+1:]...)
		return true
	}
	return false
}

// File is a parsed data file.
type File struct {
	// Path is the path the file was opened from, if any.
	Path string

	// Sections are the sections of the file, in file order.
	Sections []*Section
}

// SectionsNamed returns all sections with the given name, in file order.
func (f *File) SectionsNamed(name string) []*Section {
	var scs []*Section
	for _, sc := range f.Sections {
		if sc.Is(name) {
			scs = append(scs, sc)
		}
	}
	return scs
}

// Remove removes the given section, returning false if it is not in the file.
func (f *File) Remove(sc *Section) bool {
	for i, s := range f.Sections {
		if s == sc {
			f.Sections = append(f.Sections[:i], f.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// SplitValues splits a comma-separated value into trimmed fields.
// An empty value has no fields.
func SplitValues(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	fs := strings.Split(value, ",")
	for i := range fs {
		fs[i] = strings.TrimSpace(fs[i])
	}
	return fs
}
