package monolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mlerrors "github.com/livp123/monolog/pkg/errors"
)

func TestLevel_String(t *testing.T) {
	names := []string{"Verbose", "Debug", "Information", "Warning", "Error", "Fatal"}
	for i, level := range AllLevels() {
		assert.Equal(t, names[i], level.String())
		assert.Equal(t, i, int(level), "levels are ordinal 0-5")
	}
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestLevel_Ordering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, InformationLevel, DefaultSeverity)
	assert.Equal(t, VerboseLevel, MinValidLevel)
}

func TestLevel_Valid(t *testing.T) {
	for _, level := range AllLevels() {
		assert.True(t, level.Valid(), level.String())
	}
	assert.True(t, MinValidLevel.Valid())
	assert.False(t, (MinValidLevel - 1).Valid())
	assert.False(t, Level(-1).Valid())
	assert.False(t, Level(6).Valid())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"verbose", VerboseLevel},
		{"TRACE", VerboseLevel},
		{"Debug", DebugLevel},
		{"info", InformationLevel},
		{"Information", InformationLevel},
		{"warn", WarningLevel},
		{" warning ", WarningLevel},
		{"error", ErrorLevel},
		{"FATAL", FatalLevel},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, mlerrors.ErrInvalidLevel)
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, level := range AllLevels() {
		text, err := level.MarshalText()
		require.NoError(t, err)

		var decoded Level
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, level, decoded)
	}

	_, err := Level(7).MarshalText()
	assert.ErrorIs(t, err, mlerrors.ErrUnsupportedSeverity)

	var l Level
	assert.ErrorIs(t, l.UnmarshalText([]byte("nope")), mlerrors.ErrInvalidLevel)
}
