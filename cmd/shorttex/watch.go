// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/shorttex/transpile"
	"github.com/fsnotify/fsnotify"
)

// Watch transpiles the Input file, and again every time it is written,
// until interrupted.
func Watch(c *Config) error {
	tr, _, err := newTranspiler(c)
	if err != nil {
		return err
	}
	return watchFile(c, tr, os.Stdout, nil)
}

// watchFile transpiles the Input file to w every time it changes,
// until done is closed. The directory is watched rather than the file,
// since editors often save by replacing the file.
func watchFile(c *Config, tr *transpile.Transpiler, w io.Writer, done <-chan struct{}) error {
	if c.Input == "" {
		return errors.New("watch requires an input file")
	}
	fname, err := filepath.Abs(c.Input)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		return err
	}
	update := func() {
		b, err := os.ReadFile(fname)
		if err != nil {
			slog.Error(err.Error())
			return
		}
		fmt.Fprintf(w, "%% %s\n", filepath.Base(fname))
		errors.Log(transpileText(c, tr, w, string(b)))
	}
	update()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fname {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				update()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error(err.Error())
		}
	}
}
