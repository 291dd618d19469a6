// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DomGries/FreelancerModStudio-sub001/cmp"
	"github.com/DomGries/FreelancerModStudio-sub001/crc"
)

func newModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model file.cmp...",
		Short: "Summarize the parts of compiled models",
		Long:  `Model loads compiled models and prints their parts, submeshes and bounds in scene space.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runModel,
	}
}

func runModel(cmd *cobra.Command, args []string) error {
	open, err := opener()
	if err != nil {
		return err
	}
	cache, err := cmp.NewCache(settings.ModelCacheSize, open, crc.MeshID)
	if err != nil {
		return err
	}
	defer cache.Close()
	w := cmd.OutOrStdout()
	for _, path := range args {
		md := cache.Model(path)
		if md == nil {
			fmt.Fprintf(w, "%s: %s\n", nameColor.Sprint(path), warnColor.Sprint("no model"))
			continue
		}
		bb := md.BBox()
		fmt.Fprintf(w, "%s: %d meshes, bounds %v to %v\n", nameColor.Sprint(path), len(md.Meshes), bb.Min, bb.Max)
		for _, ms := range md.Meshes {
			fmt.Fprintf(w, "  %s material %#x: %d vertices, %d triangles\n",
				kindColor.Sprint(ms.Part), ms.Material, len(ms.Vertex)/3, len(ms.Index)/3)
		}
	}
	return nil
}
