// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// vis is a modal terminal text editor. This command wires up the buffer,
// view, diff, and screen layers: it loads the named files, draws each view
// once, flushes the screen and exits. It has no event loop and reads no
// keystrokes; the modal keystroke dispatcher itself is an external
// collaborator (spec.md §1) and is not implemented here.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kylelemons/vis/internal/buffer"
	"github.com/kylelemons/vis/internal/diffengine"
	"github.com/kylelemons/vis/internal/linebuf"
	"github.com/kylelemons/vis/internal/rawterm"
	"github.com/kylelemons/vis/internal/screen"
	"github.com/kylelemons/vis/internal/view"
)

var (
	diffMode bool
	force    bool
)

func main() {
	root := &cobra.Command{
		Use:           "vis [FILES...]",
		Short:         "a modal terminal text editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
	}
	root.Flags().BoolVarP(&diffMode, "diff", "d", false, "enter diff mode immediately if exactly two files are given")
	root.Flags().BoolVarP(&force, "force", "f", false, "reserved, treated as a no-op by the core")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	paths := expandHome(args)
	pool := linebuf.NewPool()

	watcher, err := buffer.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("file watch unavailable, falling back to stat polling only")
	} else {
		defer watcher.Close()
	}

	bufs := make([]*buffer.FileBuf, 0, len(paths))
	for _, p := range paths {
		fb, err := buffer.ReadFile(p, pool)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", p, err)
		}
		bufs = append(bufs, fb)
		if watcher != nil {
			if err := watcher.Add(fb); err != nil {
				log.Warn().Err(err).Str("path", p).Msg("cannot watch file")
			}
		}
	}
	if len(bufs) == 0 {
		bufs = append(bufs, buffer.New(pool))
	}
	log.Info().Int("files", len(bufs)).Msg("loaded buffers")

	tio, err := rawterm.Raw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer tio.Reset()

	cols, rows, err := rawterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols == 0 || rows == 0 {
		cols, rows = 80, 24
	}
	comp := screen.New(os.Stdout, rows, cols)
	defer comp.Flush()

	views := make([]*view.View, 0, len(bufs))
	for _, fb := range bufs {
		v := view.New(fb, comp)
		v.SetTile(view.TileFull, rows, cols)
		views = append(views, v)
	}

	if diffMode && len(bufs) == 2 {
		eng := diffengine.New(bufs[0], bufs[1])
		eng.Run()
		log.Info().Int("diff_lines", len(eng.DIShort)).Msg("diff computed")
		views[0].SetTile(view.TileLeftHalf, rows, cols)
		views[1].SetTile(view.TileRightHalf, rows, cols)
		comp.SetScheme(screen.DiffLong)
	}

	for _, v := range views {
		v.FB.Update(v.TopLine + v.WorkingRows())
		v.Redraw()
	}
	comp.Update()
	return comp.Flush()
}

func setupLogger() zerolog.Logger {
	var out *os.File
	if p := os.Getenv("VIS_LOG_FILE"); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			out = f
		}
	}
	if out == nil {
		// Never write ordinary logs to the terminal: the screen is owned
		// by Compositor and interleaving would corrupt the display.
		devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			devnull = os.Stderr
		}
		out = devnull
	}
	return zerolog.New(out).With().Timestamp().Str("component", "vis").Logger()
}

func expandHome(paths []string) []string {
	home, _ := os.UserHomeDir()
	out := make([]string, len(paths))
	for i, p := range paths {
		if p == "~" || strings.HasPrefix(p, "~/") {
			p = home + p[1:]
		}
		out[i] = p
	}
	return out
}
