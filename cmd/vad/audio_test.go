package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWindows(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 10; i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(i)))
	}

	var windows [][]float32
	err := readWindows(&buf, 4, func(samples []float32) error {
		windows = append(windows, samples)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, 1, 2, 3}, {4, 5, 6, 7}}, windows)
}

func TestFloat32ToS16LE(t *testing.T) {
	b := float32ToS16LE([]float32{0, 1, -1, 2, 0.5})
	require.Len(t, b, 10)
	var values []int16
	for i := 0; i < len(b); i += 2 {
		values = append(values, int16(binary.LittleEndian.Uint16(b[i:])))
	}
	require.Equal(t, []int16{0, math.MaxInt16, -math.MaxInt16, math.MaxInt16, 16384}, values)
}
