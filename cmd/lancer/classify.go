// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DomGries/FreelancerModStudio-sub001/content"
)

var fileTypes = map[string]content.FileTypes{
	"system":    content.SystemFile,
	"universe":  content.UniverseFile,
	"archetype": content.ArchetypeFile,
	"any":       content.AnyFile,
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [flags] file.ini",
		Short: "List the classified content of a data file",
		Long:  `Classify places every section of a data file and prints its kind and scene transform.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runClassify,
	}
	cmd.Flags().String("type", "system", "file type (system|universe|archetype|any)")
	cmd.Flags().Bool("all", false, "also list sections of no kind")
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	ft, ok := fileTypes[strings.ToLower(typ)]
	if !ok {
		return fmt.Errorf("unknown file type: %s", typ)
	}
	all, _ := cmd.Flags().GetBool("all")
	open, err := opener()
	if err != nil {
		return err
	}
	f, ok := open.Open(args[0])
	if !ok {
		return fmt.Errorf("file %q not available", args[0])
	}
	var lookup content.ArchetypeLookup
	if ft != content.ArchetypeFile {
		lookup = archetypes(open)
	}
	st, err := settings.NewStyle()
	if err != nil {
		slog.Warn("invalid style color", "err", err)
	}
	printLayer(cmd.OutOrStdout(), content.NewLayer(f, ft, lookup), st, all)
	return nil
}

// styleColors returns a terminal color for each kind of the style.
func styleColors(st *content.Style) map[content.Kinds]*color.Color {
	cs := map[content.Kinds]*color.Color{}
	for _, k := range content.KindsValues() {
		c := st.Color(k)
		cs[k] = color.RGB(int(c.R), int(c.G), int(c.B))
	}
	return cs
}

func printLayer(w io.Writer, ly *content.Layer, st *content.Style, all bool) {
	colors := styleColors(st)
	counts := map[content.Kinds]int{}
	for _, ob := range ly.Objects() {
		counts[ob.Kind]++
		if ob.Kind == content.None && !all {
			continue
		}
		fmt.Fprintf(w, "%4d %-24s %s pos %v", ob.ID, nameColor.Sprint(ob.Nickname()), colors[ob.Kind].Sprint(ob.Kind), ob.Position)
		if !ob.Rotation.IsZero() {
			fmt.Fprintf(w, " rot %v", ob.Rotation)
		}
		if ob.Kind.IsZone() {
			bb := ob.BBox()
			fmt.Fprintf(w, " scale %v bounds %v %v", ob.Scale, bb.Min, bb.Max)
		}
		if ob.Archetype != nil && ob.Archetype.ModelPath != "" {
			fmt.Fprintf(w, " model %s", ob.Archetype.ModelPath)
		}
		fmt.Fprintln(w)
	}
	for _, k := range content.KindsValues() {
		if counts[k] > 0 {
			fmt.Fprintf(w, "%s: %d\n", k, counts[k])
		}
	}
}
