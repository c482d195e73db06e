//go:build debug

package logx

import "log/slog"

// DefaultLevel is used when the configuration does not name a level.
var DefaultLevel = slog.LevelDebug
