package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "", "convert", "Celsius to Fahrenheit", "0")
	require.NoError(t, err)
	assert.Equal(t, "32\n", out)

	out, err = execute(t, "", "convert", "--", "Fahrenheit to Celsius", "-40")
	require.NoError(t, err)
	assert.Equal(t, "-40\n", out)
}

func TestConvertCommand_UnknownModePassesThrough(t *testing.T) {
	out, err := execute(t, "", "convert", "Kelvin to Rankine", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestConvertCommand_InvalidNumber(t *testing.T) {
	_, err := execute(t, "", "convert", "Meter to Inch", "ten")
	assert.ErrorContains(t, err, "valid number")

	_, err = execute(t, "", "convert", "Meter to Inch")
	assert.Error(t, err)
}

func TestModesCommand(t *testing.T) {
	out, err := execute(t, "", "modes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "Meter to Inch", lines[0])
}

func TestLevelOnce(t *testing.T) {
	out, err := execute(t, "# x,y,z\n-19.62,4.905,0\n", "level", "--once")
	require.NoError(t, err)
	assert.Equal(t, "dx=-100.000 dy=50.000 level=false\n", out)

	out, err = execute(t, "0,0\n", "level", "--once", "--max-offset", "60")
	require.NoError(t, err)
	assert.Equal(t, "dx=0.000 dy=0.000 level=true\n", out)
}

func TestLevelOnce_NonFiniteSettingsFallBack(t *testing.T) {
	out, err := execute(t, "1,1\n", "level", "--once", "--max-offset", "NaN")
	require.NoError(t, err)
	assert.Equal(t, "dx=10.194 dy=10.194 level=false\n", out)

	out, err = execute(t, "0,0\n", "level", "--once", "--max-offset", "+Inf")
	require.NoError(t, err)
	assert.Equal(t, "dx=0.000 dy=0.000 level=true\n", out)

	path := filepath.Join(t.TempDir(), "levelkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  gravity: .nan\n"), 0644))
	out, err = execute(t, "9.81,0\n", "level", "--once", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "dx=100.000 dy=0.000 level=false\n", out)
}

func TestLevelOnce_NoInput(t *testing.T) {
	_, err := execute(t, "", "level", "--once")
	assert.Error(t, err)
}
