package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// readWindows reads PCM float32LE windows of windowSize samples until EOF;
// an incomplete trailing window is dropped.
func readWindows(
	r io.Reader,
	windowSize int,
	callback func(samples []float32) error,
) error {
	for {
		samples := make([]float32, windowSize)
		err := binary.Read(r, binary.LittleEndian, samples)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil
		case err != nil:
			return fmt.Errorf("unable to read a window of %d samples: %w", windowSize, err)
		}
		if err := callback(samples); err != nil {
			return err
		}
	}
}

func float32ToS16LE(samples []float32) []byte {
	result := make([]byte, 0, len(samples)*2)
	for _, v := range samples {
		v = max(-1, min(1, v))
		result = binary.LittleEndian.AppendUint16(result, uint16(int16(math.Round(float64(v)*math.MaxInt16))))
	}
	return result
}
