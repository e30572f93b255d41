// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
)

// FormatBytes formats a byte count with binary K/M/G units.
// FormatBytes 使用二进制 K/M/G 单位格式化字节数。
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f%cB", float64(b)/float64(div), "KMG"[exp])
}

// FormatMegabytes formats a size given in megabytes, as rotation limits are.
func FormatMegabytes(mb int) string {
	if mb <= 0 {
		return "unlimited"
	}
	return FormatBytes(uint64(mb) << 20)
}

// FormatAge formats a retention period in days; zero keeps files forever.
// FormatAge 格式化以天为单位的保留期，0 表示永久保留。
func FormatAge(days int) string {
	switch {
	case days <= 0:
		return "forever"
	case days%7 == 0:
		return fmt.Sprintf("%dw", days/7)
	default:
		return fmt.Sprintf("%dd", days)
	}
}
