// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command foldmap shows an interactive folded map of four places.
// Settings are read from foldmap.toml in the working directory, if present.
package main

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/core"
	"cogentcore.org/foldmap/foldmap"
)

func main() {
	cfg := foldmap.NewConfig()
	if errors.Log1(fsx.FileExists(foldmap.ConfigFile)) {
		var err error
		cfg, err = foldmap.OpenConfig(foldmap.ConfigFile)
		if errors.Log(err) == nil {
			slog.Info("foldmap: loaded config", "file", foldmap.ConfigFile, "variant", cfg.Variant)
		}
	}

	b := core.NewBody(cfg.Title)
	foldmap.NewView(b).SetConfig(cfg)
	b.RunMainWindow()
}
