// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/DomGries/FreelancerModStudio-sub001/base/errors"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
)

// Reader reads the raw contents of a model file by game path.
// A file that cannot be read is reported as not available.
type Reader interface {
	ReadFile(name string) ([]byte, bool)
}

// DefaultCacheSize is the number of models a [Cache] keeps by default.
const DefaultCacheSize = 256

// Cache is a bounded cache of loaded models keyed by path.
// It is safe for concurrent use; concurrent requests for the same
// model load it once.
type Cache struct {
	read   Reader
	hash   HashFunc
	models *lru.Cache[string, *Model]
	group  singleflight.Group

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	root    string
	done    chan bool
}

// NewCache returns a new cache of up to size models, read with read and
// loaded with hash. A size <= 0 uses [DefaultCacheSize].
func NewCache(size int, read Reader, hash HashFunc) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	models, err := lru.New[string, *Model](size)
	if err != nil {
		return nil, err
	}
	return &Cache{read: read, hash: hash, models: models}, nil
}

// cacheKey returns the key of a game path.
func cacheKey(name string) string {
	return strings.ToLower(ini.CleanPath(name))
}

// Model returns the model at the given path, loading it on first use.
// It returns nil if the file is not available or holds no model;
// that result is cached too.
func (c *Cache) Model(name string) *Model {
	key := cacheKey(name)
	if md, ok := c.models.Get(key); ok {
		return md
	}
	v, _, _ := c.group.Do(key, func() (any, error) {
		if md, ok := c.models.Get(key); ok {
			return md, nil
		}
		var md *Model
		if b, ok := c.read.ReadFile(name); ok {
			md = Load(b, c.hash)
		}
		if md == nil {
			slog.Debug("cmp: no model", "path", name)
		}
		c.models.Add(key, md)
		return md, nil
	})
	return v.(*Model)
}

// Evict removes the model at the given path, so the next request
// loads it again.
func (c *Cache) Evict(name string) {
	c.models.Remove(cacheKey(name))
}

// Len returns the number of cached models.
func (c *Cache) Len() int {
	return c.models.Len()
}

// Purge removes all cached models.
func (c *Cache) Purge() {
	c.models.Purge()
}

// Watch watches the directory tree at root, which must be the directory
// game paths are relative to, and evicts models whose files are
// written, removed or renamed.
func (c *Cache) Watch(root string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
	if err != nil {
		w.Close()
		return err
	}
	c.watcher = w
	c.root = root
	c.done = make(chan bool)
	go c.watch(w, c.done)
	return nil
}

func (c *Cache) watch(w *fsnotify.Watcher, done chan bool) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				c.evictFile(event.Name)
			case event.Op&fsnotify.Create == fsnotify.Create:
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
					errors.Log(w.Add(event.Name))
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// evictFile evicts the model of the file at the given file system path.
func (c *Cache) evictFile(p string) {
	rel, err := filepath.Rel(c.root, p)
	if err != nil {
		return
	}
	slog.Debug("cmp: model file changed", "path", rel)
	c.Evict(filepath.ToSlash(rel))
}

// Close stops watching for changes.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == nil {
		return nil
	}
	close(c.done)
	err := c.watcher.Close()
	c.watcher = nil
	return err
}
