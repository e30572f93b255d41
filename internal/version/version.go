// Package version holds build metadata injected via -ldflags.
// Package version 保存通过 -ldflags 注入的构建信息。
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is overridden at build time: -ldflags "-X github.com/livp123/monolog/internal/version.Version=v1.0.0"
var Version = "dev"

// Resolved returns Version, or the module version recorded by `go install`
// when no version was injected.
// Resolved 返回 Version；未注入版本时返回 `go install` 记录的模块版本。
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// String renders the version line printed by the CLI.
func String() string {
	return "monolog " + Resolved() + " (" + runtime.Version() + ")"
}
