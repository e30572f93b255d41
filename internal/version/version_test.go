package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolved tests the injected version takes precedence
// TestResolved 测试注入的版本优先
func TestResolved(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	assert.NotEmpty(t, Resolved())

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Resolved())
	assert.True(t, strings.HasPrefix(String(), "monolog v1.2.3 ("))
}
