// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path"

	"github.com/spf13/cobra"

	"github.com/DomGries/FreelancerModStudio-sub001/ini"
	"github.com/DomGries/FreelancerModStudio-sub001/universe"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [universe.ini]",
		Short: "Print the jump connections between systems",
		Long:  `Graph scans every system of a universe file for jump gates and jump holes and prints the resulting connections.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGraph,
	}
}

func runGraph(cmd *cobra.Command, args []string) error {
	open, err := opener()
	if err != nil {
		return err
	}
	upath := settings.Universe
	if len(args) > 0 {
		upath = args[0]
	}
	uni, ok := open.Open(upath)
	if !ok {
		return fmt.Errorf("universe file %q not available", upath)
	}
	// system paths are relative to the universe file
	dir := path.Dir(ini.CleanPath(upath))
	sysOpen := ini.OpenerFunc(func(name string) (*ini.File, bool) {
		return open.Open(path.Join(dir, ini.CleanPath(name)))
	})
	g := universe.BuildFile(uni, sysOpen, archetypes(open))
	printGraph(cmd.OutOrStdout(), g)
	return nil
}

func printGraph(w io.Writer, g *universe.Graph) {
	for _, c := range g.Connections() {
		fmt.Fprintf(w, "%s %s <-> %s %s\n",
			nameColor.Sprint(g.Names[c.A.ID]), jumpLabel(c.A),
			nameColor.Sprint(g.Names[c.B.ID]), jumpLabel(c.B))
	}
	fmt.Fprintf(w, "%d connections\n", g.Len())
}

// jumpLabel returns the jump types of an endpoint.
func jumpLabel(ep universe.Endpoint) string {
	switch {
	case ep.JumpGate && ep.JumpHole:
		return "[" + gateColor.Sprint("gate") + "+" + holeColor.Sprint("hole") + "]"
	case ep.JumpGate:
		return "[" + gateColor.Sprint("gate") + "]"
	case ep.JumpHole:
		return "[" + holeColor.Sprint("hole") + "]"
	}
	return "[-]"
}
