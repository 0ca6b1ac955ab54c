package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ==================== Comparison Session ====================

func TestCompareSmoke(t *testing.T) {
	cfgIterations = 10
	cfgFailFast = true
	cfgReportDir = t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, compare(&buf))

	out := buf.String()
	require.Contains(t, out, "Serialized sizes:")
	for _, row := range []string{
		"| MessagePack Write |",
		"| MessagePack Write (prealloc) |",
		"| Cap'n Proto Write |",
		"| FlatBuffers Write |",
		"| Protobuf Write |",
		"| JSON Write |",
		"| MessagePack Read |",
		"| Cap'n Proto Read |",
		"| FlatBuffers Read |",
		"| Protobuf Read |",
		"| JSON Read |",
		"| MessagePack |",
		"| Cap'n Proto |",
		"| FlatBuffers |",
		"| Protobuf |",
		"| JSON |",
	} {
		require.Contains(t, out, row)
	}
	require.Contains(t, out, "Round Trip")
	require.Contains(t, out, "Zero-Copy Read")
}

func TestCompareWritesReports(t *testing.T) {
	cfgIterations = 10
	cfgFailFast = true
	cfgReportDir = t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, compare(&buf))

	md, err := os.ReadFile(filepath.Join(cfgReportDir, "results.md"))
	require.NoError(t, err)
	require.Contains(t, string(md), "# Round Trip")
	require.Contains(t, string(md), "Iterations: 10")
	require.Contains(t, string(md), "1.00x")

	zc, err := os.ReadFile(filepath.Join(cfgReportDir, "results_zero_copy.md"))
	require.NoError(t, err)
	require.Contains(t, string(zc), "# Zero-Copy Read")

	for _, name := range []string{"results.svg", "results_zero_copy.svg"} {
		svg, err := os.ReadFile(filepath.Join(cfgReportDir, name))
		require.NoError(t, err)
		require.Contains(t, string(svg), "<svg")
	}
}

// ==================== Deep Dive ====================

func TestDeepDiveSmoke(t *testing.T) {
	cfgIterations = 10
	cfgFailFast = true

	var buf bytes.Buffer
	require.NoError(t, deepDive(&buf))

	out := buf.String()
	require.Contains(t, out, "MessagePack Benchmark")
	require.Contains(t, out, "Iterations: 10")
	require.Contains(t, out, "Serialized size: ")
	require.Contains(t, out, "| Write |")
	require.Contains(t, out, "| Write (prealloc) |")
	require.Contains(t, out, "| Read |")
}

// ==================== Configuration ====================

func TestIterationsMustBePositive(t *testing.T) {
	rootCmd.SetArgs([]string{"--iterations", "0"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "iterations")
}
