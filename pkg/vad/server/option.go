package server

import (
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
)

type config struct {
	SileroOptions silero.Options
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
	cfg := config{}
	opts.apply(&cfg)
	return cfg
}

// OptionSileroOptions sets the options applied to every session before
// the options requested by the client.
type OptionSileroOptions silero.Options

func (opt OptionSileroOptions) apply(cfg *config) {
	cfg.SileroOptions = silero.Options(opt)
}
