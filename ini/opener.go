// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ini

import (
	"bytes"
	"io/fs"
	"path"
	"strings"

	"github.com/DomGries/FreelancerModStudio-sub001/base/errors"
)

// Opener opens the data file referenced by a path found in another
// data file. A file that cannot be opened or parsed is reported as
// not available (nil, false); the reason is only logged.
type Opener interface {
	Open(path string) (*File, bool)
}

// OpenerFunc adapts a function to the [Opener] interface.
type OpenerFunc func(path string) (*File, bool)

func (fn OpenerFunc) Open(path string) (*File, bool) {
	return fn(path)
}

// FSOpener opens files from a file system. Paths may use either slash
// style and are matched case-insensitively, since data files written
// for the game do not agree with the on-disk case of their targets.
type FSOpener struct {
	FS fs.FS
}

// Open implements [Opener].
func (fo *FSOpener) Open(name string) (*File, bool) {
	b, ok := fo.ReadFile(name)
	if !ok {
		return nil, false
	}
	f, err := Parse(bytes.NewReader(b))
	if errors.Debug(err, "ini: parse failed", "path", name) != nil {
		return nil, false
	}
	f.Path = name
	return f, true
}

// ReadFile returns the raw contents of the named file.
func (fo *FSOpener) ReadFile(name string) ([]byte, bool) {
	p, ok := Resolve(fo.FS, name)
	if !ok {
		errors.Debug(fs.ErrNotExist, "ini: file not found", "path", name)
		return nil, false
	}
	b, err := fs.ReadFile(fo.FS, p)
	if errors.Debug(err, "ini: read failed", "path", name) != nil {
		return nil, false
	}
	return b, true
}

// Resolve finds the actual path within fsys of the given game path,
// matching each element case-insensitively.
func Resolve(fsys fs.FS, name string) (string, bool) {
	name = CleanPath(name)
	if name == "" || name == "." {
		return "", false
	}
	if _, err := fs.Stat(fsys, name); err == nil {
		return name, true
	}
	dir := "."
	for _, el := range strings.Split(name, "/") {
		ents, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return "", false
		}
		found := ""
		for _, e := range ents {
			if strings.EqualFold(e.Name(), el) {
				found = e.Name()
				break
			}
		}
		if found == "" {
			return "", false
		}
		dir = path.Join(dir, found)
	}
	return dir, true
}

// CleanPath converts a game path (backslash separated, possibly
// relative with a leading separator) to a clean slash path.
func CleanPath(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}
	return path.Clean(name)
}

// MapOpener is an in-memory [Opener] keyed by path.
// Keys are matched after [CleanPath] and case folding.
type MapOpener map[string]*File

// Open implements [Opener].
func (mo MapOpener) Open(name string) (*File, bool) {
	want := CleanPath(name)
	for k, f := range mo {
		if strings.EqualFold(CleanPath(k), want) {
			return f, f != nil
		}
	}
	return nil, false
}
