package fmtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatBytes tests FormatBytes function
// TestFormatBytes 测试 FormatBytes 函数
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0B"},
		{512, "512B"},
		{1023, "1023B"},
		{1024, "1.00KB"},
		{1536, "1.50KB"},
		{1048576, "1.00MB"},
		{1073741824, "1.00GB"},
		{1 << 40, "1024.00GB"},
	}

	for _, tt := range tests {
		result := FormatBytes(tt.input)
		assert.Equal(t, tt.expected, result, "FormatBytes(%d) = %s, want %s", tt.input, result, tt.expected)
	}
}

// TestFormatMegabytes tests FormatMegabytes function
// TestFormatMegabytes 测试 FormatMegabytes 函数
func TestFormatMegabytes(t *testing.T) {
	assert.Equal(t, "100.00MB", FormatMegabytes(100))
	assert.Equal(t, "2.00GB", FormatMegabytes(2048))
	assert.Equal(t, "unlimited", FormatMegabytes(0))
}

// TestFormatAge tests FormatAge function
// TestFormatAge 测试 FormatAge 函数
func TestFormatAge(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "forever"},
		{-1, "forever"},
		{1, "1d"},
		{7, "1w"},
		{28, "4w"},
		{30, "30d"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAge(tt.input), "FormatAge(%d)", tt.input)
	}
}
