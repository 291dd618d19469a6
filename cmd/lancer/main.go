// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lancer inspects game data the way the editor sees it:
// the jump connections of a universe, the parts of a model, and the
// classified content of a data file.
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DomGries/FreelancerModStudio-sub001/base/errors"
	"github.com/DomGries/FreelancerModStudio-sub001/config"
	"github.com/DomGries/FreelancerModStudio-sub001/content"
	"github.com/DomGries/FreelancerModStudio-sub001/ini"
)

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	kindColor = color.New(color.FgYellow)
	gateColor = color.New(color.FgGreen)
	holeColor = color.New(color.FgMagenta)
	warnColor = color.New(color.FgRed)
)

// settings are loaded before any command runs.
var settings *config.Settings

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lancer",
		Short:         "Inspect space sim mod data",
		Long:          `Lancer reads the universe, system, archetype and model files of a game data directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "settings file (default "+config.FileName+")")
	root.PersistentFlags().String("data", "", "game data directory (overrides the settings)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log skipped files and references")
	root.AddCommand(newGraphCmd(), newModelCmd(), newClassifyCmd())
	return root
}

func setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	verbose := errors.Log1(flags.GetBool("verbose"))
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	switch c, _ := flags.GetString("color"); c {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	path := errors.Ignore1(flags.GetString("config"))
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if dir, _ := flags.GetString("data"); dir != "" {
		s.DataDir = dir
	}
	settings = s
	return nil
}

// opener returns the opener of the data directory.
func opener() (*ini.FSOpener, error) {
	fsys, err := settings.FS()
	if err != nil {
		return nil, err
	}
	return &ini.FSOpener{FS: fsys}, nil
}

// archetypes loads the solar archetypes named by the settings.
// A missing archetype file leaves every object unclassified.
func archetypes(open ini.Opener) content.Archetypes {
	f, ok := open.Open(settings.Archetypes)
	if !ok {
		slog.Warn("archetype file not available", "path", settings.Archetypes)
		return content.Archetypes{}
	}
	return content.NewArchetypes(f)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		warnColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
