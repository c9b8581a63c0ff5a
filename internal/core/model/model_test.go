package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 450.0, config.Distance)
	assert.Equal(t, 100.0, config.Width)
	assert.Equal(t, 10.0, config.Trials)
	assert.NoError(t, config.Validate())
}

func TestGeometry(t *testing.T) {
	geometry := NewGeometry(50, 200, 745)

	assert.Equal(t, 50.0, geometry.NodeWidth)
	assert.Equal(t, 300.0, geometry.FittsWidth)
	assert.Equal(t, 700.0, geometry.FittsHeight)
	assert.Equal(t, geometry, Config{Distance: 200, Width: 50}.Geometry(745))
}

func TestGeometryPropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Span(math.NaN(), 200)))
	assert.True(t, math.IsNaN(Span(50, math.NaN())))
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"450", 450},
		{" 100 ", 100},
		{"12.9", 12},
		{"-7.5", -7},
		{"1e3", 1000},
		{"0", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseInput(tt.text), "input %q", tt.text)
	}
}

func TestParseInputNonNumeric(t *testing.T) {
	for _, text := range []string{"", "abc", "12px", "Inf", "NaN"} {
		assert.True(t, math.IsNaN(ParseInput(text)), "input %q", text)
	}
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "450", FormatInput(450))
	assert.Equal(t, "", FormatInput(math.NaN()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		err    error
	}{
		{"negative distance", Config{Distance: -1, Width: 10, Trials: 1}, ErrInvalidDistance},
		{"nan distance", Config{Distance: math.NaN(), Width: 10, Trials: 1}, ErrInvalidDistance},
		{"zero width", Config{Distance: 0, Width: 0, Trials: 1}, ErrInvalidWidth},
		{"zero trials", Config{Distance: 0, Width: 10, Trials: 0}, ErrInvalidTrials},
		{"fractional trials", Config{Distance: 0, Width: 10, Trials: 2.5}, ErrInvalidTrials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
