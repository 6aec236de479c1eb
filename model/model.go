// Package model loads the trained value-function artifact consumed by the AI
// agent. The artifact is produced offline by the training pipeline; loading
// is a one-shot pure parse and the resulting weights are never mutated.
package model

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Artifact layout, all integers little-endian:
//
//	offset 0  magic       4 bytes "WSTR"
//	offset 4  version     uint16
//	offset 6  featureDim  uint16
//	offset 8  weightCount uint32
//	offset 12 weights     weightCount float32 values
const (
	Magic      = "WSTR"
	Version    = 1
	headerSize = 12
)

var (
	ErrBadMagic           = errors.New("bad magic tag")
	ErrUnsupportedVersion = errors.New("unsupported model version")
	ErrTruncatedData      = errors.New("truncated model data")
)

// Weights is the loaded value function: an immutable weight vector plus the
// artifact metadata. Loaded once at process start and shared read-only.
type Weights struct {
	Version    int
	FeatureDim int
	weights    []float32
}

// Load parses a model artifact. It fails with ErrBadMagic on a foreign file,
// ErrUnsupportedVersion on a version this build does not understand, and
// ErrTruncatedData when fewer bytes are present than the header declares.
func Load(data []byte) (*Weights, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the %d-byte header", ErrTruncatedData, len(data), headerSize)
	}
	if string(data[:4]) != Magic {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadMagic, data[:4], Magic)
	}

	version := binary.LittleEndian.Uint16(data[4:6])
	if version != Version {
		return nil, fmt.Errorf("%w: version %d, this build understands %d", ErrUnsupportedVersion, version, Version)
	}

	featureDim := int(binary.LittleEndian.Uint16(data[6:8]))
	weightCount := int(binary.LittleEndian.Uint32(data[8:12]))

	payload := data[headerSize:]
	if len(payload) < 4*weightCount {
		return nil, fmt.Errorf("%w: header declares %d weights (%d bytes), %d bytes present",
			ErrTruncatedData, weightCount, 4*weightCount, len(payload))
	}

	weights := make([]float32, weightCount)
	for i := range weights {
		bits := binary.LittleEndian.Uint32(payload[4*i:])
		weights[i] = math.Float32frombits(bits)
	}

	return &Weights{
		Version:    int(version),
		FeatureDim: featureDim,
		weights:    weights,
	}, nil
}

// New builds in-memory weights, mainly for tests and tooling.
func New(featureDim int, weights []float32) *Weights {
	dup := make([]float32, len(weights))
	copy(dup, weights)
	return &Weights{Version: Version, FeatureDim: featureDim, weights: dup}
}

// Len returns the number of weights.
func (w *Weights) Len() int {
	return len(w.weights)
}

// Dot returns the dot product of the weight vector with features. The two
// must have equal length; the agent checks dimensions up front.
func (w *Weights) Dot(features []float64) float64 {
	if len(features) != len(w.weights) {
		panic(fmt.Sprintf("model: dot product of %d weights with %d features", len(w.weights), len(features)))
	}
	var sum float64
	for i, f := range features {
		sum += f * float64(w.weights[i])
	}
	return sum
}

// Encode serializes the weights back into the artifact layout. Decoding the
// result yields bit-identical weights.
func (w *Weights) Encode() []byte {
	data := make([]byte, headerSize+4*len(w.weights))
	copy(data[:4], Magic)
	binary.LittleEndian.PutUint16(data[4:6], uint16(w.Version))
	binary.LittleEndian.PutUint16(data[6:8], uint16(w.FeatureDim))
	binary.LittleEndian.PutUint32(data[8:12], uint32(len(w.weights)))
	for i, weight := range w.weights {
		binary.LittleEndian.PutUint32(data[headerSize+4*i:], math.Float32bits(weight))
	}
	return data
}
