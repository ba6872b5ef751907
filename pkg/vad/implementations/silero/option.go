package silero

import (
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend/onnx"
)

type config struct {
	WindowSize        *int
	Protocol          ModelProtocol
	BackendFactory    backend.Factory
	SharedLibraryPath string
}

func defaultConfig() config {
	return config{
		Protocol:       ProtocolState128Context,
		BackendFactory: onnx.Factory,
	}
}

type Option interface {
	apply(*config)
}

type Options []Option

func (opts Options) apply(cfg *config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

func (opts Options) config() config {
	cfg := defaultConfig()
	opts.apply(&cfg)
	return cfg
}

// OptionWindowSize sets the amount of samples expected by every Detect call.
//
// Fixed-window protocols default to DefaultWindowSize; protocols with
// a trailing context accept windows of any size by default.
type OptionWindowSize int

func (opt OptionWindowSize) apply(cfg *config) {
	cfg.WindowSize = (*int)(&opt)
}

type OptionProtocol ModelProtocol

func (opt OptionProtocol) apply(cfg *config) {
	cfg.Protocol = ModelProtocol(opt)
}

type OptionBackendFactory backend.Factory

func (opt OptionBackendFactory) apply(cfg *config) {
	cfg.BackendFactory = backend.Factory(opt)
}

// OptionSharedLibraryPath sets the path to the ONNX Runtime shared library.
type OptionSharedLibraryPath string

func (opt OptionSharedLibraryPath) apply(cfg *config) {
	cfg.SharedLibraryPath = string(opt)
}
