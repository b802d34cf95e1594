package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/amati"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI with args in an isolated home directory.
func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, t.TempDir())
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// blocks splits stdout into the forms written to it.
func blocks(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n\n")
}

func TestRun_ScaleCSVToStdout(t *testing.T) {
	t.Parallel()
	res := execute(t, "-t", "scale", "-k", "C", "-s", "major", "-f", "csv")
	require.NoError(t, res.err)

	got := blocks(res.stdout)
	require.Len(t, got, 3)
	assert.True(t, strings.HasPrefix(got[0], "Degree,Root,Triad,Quality,Numeral,Seventh\n"))
	assert.True(t, strings.HasPrefix(got[1], "Degree,Tone,Semitones,Interval,Short\n"))
	assert.True(t, strings.HasPrefix(got[2], "Step,From,To,Semitones,Size\n"))
	for _, b := range got {
		assert.Len(t, strings.Split(b, "\n"), 8, "header plus seven rows")
	}
	assert.Empty(t, res.stderr)
}

func TestRun_KeyTextToFile(t *testing.T) {
	t.Parallel()
	cfg := writeConfig(t, "text:\n  max_cell_width: 6\n")
	out := filepath.Join(t.TempDir(), "modes.txt")
	require.NoError(t, os.WriteFile(out, []byte("stale content that must disappear"), 0o644))

	res := execute(t, "--config", cfg, "-t", "key", "-k", "G", "-f", "TXT", "-o", out)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, "stale")
	assert.True(t, strings.HasPrefix(text, "Parallel Modes: G\n"))
	assert.Contains(t, text, "…")

	var tableRows int
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "|") {
			tableRows++
		}
	}
	assert.Equal(t, 8, tableRows, "header plus seven modes")
}

func TestRun_NonDiatonicScaleSkipsAnalytics(t *testing.T) {
	t.Parallel()
	res := execute(t, "-t", "scale", "-k", "A", "-s", "blues", "-f", "csv")
	require.NoError(t, res.err)

	got := blocks(res.stdout)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "Step,From,To,Semitones,Size\n"))
	assert.Contains(t, res.stderr, "RomanNumeralAnalytic")
	assert.Contains(t, res.stderr, "IntervalAnalytic")
}

func TestRun_FormatDefaultsFromConfig(t *testing.T) {
	t.Parallel()
	cfg := writeConfig(t, "format: csv\n")
	res := execute(t, "--config", cfg, "-t", "guitar", "-k", "A", "-c", "m7")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "String,0,1,2,"))
}

func TestRun_ReharmonizationFromConfig(t *testing.T) {
	t.Parallel()
	cfg := writeConfig(t, "format: csv\nanalytics:\n  reharmonization: true\n")
	res := execute(t, "--config", cfg, "-t", "scale", "-k", "D", "-s", "dorian")
	require.NoError(t, res.err)
	got := blocks(res.stdout)
	require.Len(t, got, 4)
	assert.True(t, strings.HasPrefix(got[3], "Degree,Tone,Root Of,Third Of,Fifth Of,Seventh Of\n"))
}

func TestRun_Views(t *testing.T) {
	t.Parallel()

	t.Run("flag keeps table order", func(t *testing.T) {
		t.Parallel()
		res := execute(t, "-t", "scale", "-k", "C", "-s", "major", "-f", "csv", "--views", "scalar, ROMAN")
		require.NoError(t, res.err)
		got := blocks(res.stdout)
		require.Len(t, got, 2)
		assert.True(t, strings.HasPrefix(got[0], "Degree,Root,Triad,Quality,Numeral,Seventh\n"))
		assert.True(t, strings.HasPrefix(got[1], "Step,From,To,Semitones,Size\n"))
	})

	t.Run("config", func(t *testing.T) {
		t.Parallel()
		cfg := writeConfig(t, "format: csv\nanalytics:\n  views: [reharmonization]\n")
		res := execute(t, "--config", cfg, "-t", "scale", "-k", "D", "-s", "dorian")
		require.NoError(t, res.err)
		got := blocks(res.stdout)
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0], "Degree,Tone,Root Of,Third Of,Fifth Of,Seventh Of\n"))
	})

	t.Run("flag overrides config", func(t *testing.T) {
		t.Parallel()
		cfg := writeConfig(t, "format: csv\nanalytics:\n  views: [reharmonization]\n")
		res := execute(t, "--config", cfg, "-t", "scale", "-k", "D", "-s", "dorian", "--views", "interval")
		require.NoError(t, res.err)
		got := blocks(res.stdout)
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0], "Degree,Tone,Semitones,Interval,Short\n"))
	})

	t.Run("key requests ignore views", func(t *testing.T) {
		t.Parallel()
		res := execute(t, "-t", "key", "-k", "C", "-f", "csv", "--views", "roman")
		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.stdout, "Mode,Tones,Step Pattern,Parent Major\n"))
	})
}

func TestCompletion_ScaleAndChordAliases(t *testing.T) {
	t.Parallel()
	lines := func(out string) []string { return strings.Split(strings.TrimSpace(out), "\n") }

	res := execute(t, "__complete", "--scale", "")
	require.NoError(t, res.err)
	assert.Contains(t, lines(res.stdout), "aeolian")
	assert.NotContains(t, lines(res.stdout), "m7b5")

	res = execute(t, "__complete", "--chord", "")
	require.NoError(t, res.err)
	assert.Contains(t, lines(res.stdout), "m7b5")
	assert.NotContains(t, lines(res.stdout), "aeolian")
}

func TestRun_UserConfigIsRead(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "amati")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: csv\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, home)
	cmd.SetArgs([]string{"-t", "key", "-k", "C"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(stdout.String(), "Mode,Tones,Step Pattern,Parent Major\n"))
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		args []string
		want string
		is   error
	}{
		{"missing kind", []string{"-k", "C"}, "request kind not specified", amati.ErrValidation},
		{"unknown kind", []string{"-t", "mode", "-k", "C"}, `unknown request kind "mode"`, amati.ErrValidation},
		{"missing key", []string{"-t", "key"}, "key not specified", amati.ErrValidation},
		{"unknown key", []string{"-t", "key", "-k", "H"}, "key", amati.ErrLookup},
		{"missing scale", []string{"-t", "scale", "-k", "C"}, "scale not specified", amati.ErrValidation},
		{"unknown scale", []string{"-t", "scale", "-k", "C", "-s", "bebop"}, "unknown scale", amati.ErrLookup},
		{"missing chord", []string{"-t", "chord", "-k", "C"}, "chord not specified", amati.ErrValidation},
		{"guitar ambiguous", []string{"-t", "guitar", "-k", "C", "-s", "major", "-c", "maj7"}, "ambiguous", amati.ErrValidation},
		{"guitar underspecified", []string{"-t", "guitar", "-k", "C"}, "underspecified", amati.ErrValidation},
		{"unknown format", []string{"-t", "key", "-k", "C", "-f", "pdf"}, `unknown output format "pdf"`, amati.ErrValidation},
		{"binary format to stdout", []string{"-t", "key", "-k", "C", "-f", "xlsx"}, "output file required for format XLSX", amati.ErrValidation},
		{"bad log level", []string{"--log-level", "loud", "-t", "key", "-k", "C"}, "log level", amati.ErrValidation},
		{"unknown view", []string{"-t", "scale", "-k", "C", "-s", "major", "--views", "roman,chords"}, `unknown view "chords"`, amati.ErrValidation},
		{"unspellable scale", []string{"-t", "scale", "-k", "Bx", "-s", "major"}, "B## Major", amati.ErrLookup},
		{"flat sign is lowercase", []string{"-t", "key", "-k", "BB"}, `unknown tone "BB"`, amati.ErrLookup},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, tc.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tc.want)
			assert.True(t, errors.Is(res.err, tc.is), "got %v", res.err)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	t.Parallel()
	res := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "-t", "key", "-k", "C")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()
	res := execute(t, "--log-level", "debug", "-t", "key", "-k", "C", "-f", "csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "analytic rendered")
	assert.Contains(t, res.stderr, "ParallelModeAnalytic")
}

func TestList(t *testing.T) {
	t.Parallel()
	t.Run("scales", func(t *testing.T) {
		t.Parallel()
		res := execute(t, "list", "scales")
		require.NoError(t, res.err)
		names := strings.Split(strings.TrimSpace(res.stdout), "\n")
		assert.Contains(t, names, "Major")
		assert.Contains(t, names, "Blues")
	})

	t.Run("chords", func(t *testing.T) {
		t.Parallel()
		res := execute(t, "list", "chords")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Dominant Seventh")
	})

	t.Run("unknown catalog", func(t *testing.T) {
		t.Parallel()
		res := execute(t, "list", "modes")
		assert.Error(t, res.err)
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()
	res := execute(t, "version")
	require.NoError(t, res.err)
	assert.Equal(t, "amati version 0.1.0\n", res.stdout)
}
