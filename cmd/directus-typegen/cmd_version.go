// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"runtime/debug"

	"github.com/alecthomas/kong"
)

// version is set with -ldflags "-X main.version=...".
var version string

type cmdVersion struct{}

func (cmdVersion) Run(kctx *kong.Context) error {
	v, goVersion, revision, time := "unknown", "unknown", "unknown", "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		v, goVersion = info.Main.Version, info.GoVersion
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if len(setting.Value) >= 8 {
					revision = setting.Value[:8]
				}
			case "vcs.time":
				time = setting.Value
			}
		}
	}
	if version != "" {
		v = version
	}

	kctx.Printf("version %s built with %s from %s on %s", v, goVersion, revision, time)
	return nil
}
