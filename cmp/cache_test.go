// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmp

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomGries/FreelancerModStudio-sub001/crc"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
	"github.com/DomGries/FreelancerModStudio-sub001/utf"
)

// countReader serves files from memory and counts reads.
type countReader struct {
	files map[string][]byte
	reads atomic.Int32
}

func (cr *countReader) ReadFile(name string) ([]byte, bool) {
	cr.reads.Add(1)
	b, ok := cr.files[ini.CleanPath(name)]
	return b, ok
}

func TestCache(t *testing.T) {
	cr := &countReader{files: map[string][]byte{
		"ships/ship.cmp": utf.Encode(testModel(testPool())),
		"ships/bad.cmp":  []byte("not a model"),
	}}
	c, err := NewCache(2, cr, crc.MeshID)
	require.NoError(t, err)

	md := c.Model(`ships\ship.cmp`)
	require.NotNil(t, md)
	assert.Len(t, md.Meshes, 2)
	assert.Same(t, md, c.Model("Ships/SHIP.cmp"))
	assert.Equal(t, int32(1), cr.reads.Load())

	assert.Nil(t, c.Model("ships/bad.cmp"))
	assert.Nil(t, c.Model("ships/bad.cmp"))
	assert.Equal(t, int32(2), cr.reads.Load())
	assert.Equal(t, 2, c.Len())

	c.Evict(`SHIPS\ship.cmp`)
	assert.Equal(t, 1, c.Len())
	assert.NotSame(t, md, c.Model("ships/ship.cmp"))
	assert.Equal(t, int32(3), cr.reads.Load())

	// bounded
	assert.Nil(t, c.Model("ships/missing.cmp"))
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Close())
}

func TestCacheConcurrent(t *testing.T) {
	cr := &countReader{files: map[string][]byte{
		"ship.cmp": utf.Encode(testModel(testPool())),
	}}
	c, err := NewCache(0, cr, crc.MeshID)
	require.NoError(t, err)
	var wg sync.WaitGroup
	models := make([]*Model, 16)
	for i := range models {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			models[i] = c.Model("ship.cmp")
		}(i)
	}
	wg.Wait()
	for _, md := range models {
		assert.Same(t, models[0], md)
	}
	assert.Equal(t, 1, c.Len())
}

func TestCacheWatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ships"), 0o755))
	fn := filepath.Join(dir, "ships", "ship.cmp")
	b := utf.Encode(testModel(testPool()))
	require.NoError(t, os.WriteFile(fn, b, 0o644))

	c, err := NewCache(8, &ini.FSOpener{FS: os.DirFS(dir)}, crc.MeshID)
	require.NoError(t, err)
	require.NoError(t, c.Watch(dir))
	defer c.Close()

	require.NotNil(t, c.Model(`ships\ship.cmp`))
	assert.Equal(t, 1, c.Len())

	require.NoError(t, os.WriteFile(fn, b, 0o644))
	assert.Eventually(t, func() bool { return c.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
}
