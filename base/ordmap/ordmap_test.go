// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("Key0", 0)
	om.Add("Key1", 1)
	om.Add("Key2", 2)
	om.Add("Key1", 11)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"Key0", "Key1", "Key2"}, om.Keys())
	assert.Equal(t, []int{0, 11, 2}, om.Values())

	v, ok := om.ValueByKeyTry("Key2")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 0, om.ValueByKey("missing"))

	assert.True(t, om.DeleteKey("Key0"))
	assert.False(t, om.DeleteKey("Key0"))
	assert.Equal(t, []string{"Key1", "Key2"}, om.Keys())
	assert.Equal(t, 2, om.ValueByKey("Key2"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
	om.Add("a", 1)
	assert.Equal(t, 1, om.ValueByKey("a"))

	var nilmap *Map[string, int]
	assert.Equal(t, 0, nilmap.Len())
}
