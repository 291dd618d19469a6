// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crc provides the name hash that keys the mesh library of
// compiled models.
package crc

import (
	"strings"

	"github.com/klauspost/crc32"
)

// MeshID returns the identifier mesh references use for the mesh
// library entry with the given name. Names are matched without case.
func MeshID(name string) uint32 {
	return crc32.ChecksumIEEE([]byte(strings.ToLower(name)))
}
