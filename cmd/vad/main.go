package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/silerovad/pkg/vad/client"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/libfvad"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/goconv"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
)

func syntaxExit(message string) {
	fmt.Fprintf(os.Stderr, "syntax error: %s\n", message)
	pflag.Usage()
	os.Exit(2)
}

type params struct {
	LogLevel           logger.Level
	ModelPath          string
	ONNXRuntimeLibrary string
	ModelVersion       string
	WindowSize         uint
	IntraThreads       uint
	InterThreads       uint
	RemoteAddr         string
	Threshold          float64
	LibfvadMode        int
}

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	onnxRuntimeLibraryFlag := pflag.String("onnxruntime-library", "", "path to the ONNX Runtime shared library")
	modelVersionFlag := pflag.String("model-version", "", "Silero VAD model version (e.g. 4.0 or 5.1); the newest protocol is used if not set")
	windowSizeFlag := pflag.Uint("window-size", silero.DefaultWindowSize, "amount of samples per window")
	intraThreadsFlag := pflag.Uint("intra-threads", 1, "")
	interThreadsFlag := pflag.Uint("inter-threads", 1, "")
	remoteAddrFlag := pflag.String("remote-addr", "", "address of vadd; if set, the inference is performed remotely")
	thresholdFlag := pflag.Float64("threshold", 0.5, "minimal probability to consider a window as speech")
	engineFlag := pflag.String("engine", "silero", "silero|libfvad")
	libfvadModeFlag := pflag.Int("libfvad-mode", 1, "libfvad aggressiveness [0..3]")
	pflag.Parse()

	p := params{
		LogLevel:           loggerLevel,
		ONNXRuntimeLibrary: *onnxRuntimeLibraryFlag,
		ModelVersion:       *modelVersionFlag,
		WindowSize:         *windowSizeFlag,
		IntraThreads:       *intraThreadsFlag,
		InterThreads:       *interThreadsFlag,
		RemoteAddr:         *remoteAddrFlag,
		Threshold:          *thresholdFlag,
		LibfvadMode:        *libfvadModeFlag,
	}
	switch {
	case pflag.NArg() == 1:
		p.ModelPath = pflag.Arg(0)
	case pflag.NArg() == 0 && (p.RemoteAddr != "" || *engineFlag == "libfvad"):
	default:
		syntaxExit("expected one argument (Silero VAD model path)")
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	var err error
	switch *engineFlag {
	case "silero":
		err = runSilero(ctx, p)
	case "libfvad":
		err = runLibfvad(ctx, p)
	default:
		syntaxExit(fmt.Sprintf("unknown engine '%s'", *engineFlag))
	}
	if err != nil {
		logger.Fatal(ctx, err)
	}
}

func newDetector(
	ctx context.Context,
	p params,
) (silero.Detector, error) {
	if p.RemoteAddr != "" {
		return client.New(ctx, p.RemoteAddr, &vad_grpc.NewSessionRequest{
			ModelPath:    p.ModelPath,
			ModelVersion: p.ModelVersion,
			WindowSize:   uint64(p.WindowSize),
			IntraThreads: uint64(p.IntraThreads),
			InterThreads: uint64(p.InterThreads),
			LogLevel:     goconv.LogLevelToGRPC(p.LogLevel),
		})
	}

	opts := silero.Options{
		silero.OptionWindowSize(p.WindowSize),
	}
	if p.ONNXRuntimeLibrary != "" {
		opts = append(opts, silero.OptionSharedLibraryPath(p.ONNXRuntimeLibrary))
	}
	if p.ModelVersion != "" {
		protocol, err := silero.ProtocolForModelVersion(p.ModelVersion)
		if err != nil {
			return nil, err
		}
		opts = append(opts, silero.OptionProtocol(protocol))
	}
	return silero.New(ctx, p.ModelPath, p.LogLevel, int(p.IntraThreads), int(p.InterThreads), opts...)
}

func runSilero(
	ctx context.Context,
	p params,
) error {
	detector, err := newDetector(ctx, p)
	if err != nil {
		return fmt.Errorf("unable to initialize the detector: %w", err)
	}
	defer detector.Close()
	logger.Infof(ctx, "initialized a Silero VAD detector")

	async := silero.NewAsync(ctx, detector, 16)
	defer async.Close()

	results := make(chan (<-chan silero.Result), 16)
	printerErr := make(chan error, 1)
	windowDuration := time.Duration(p.WindowSize) * time.Second / silero.SampleRate
	observability.Go(ctx, func() {
		defer close(printerErr)
		var offset time.Duration
		for ch := range results {
			r := <-ch
			if r.Err != nil {
				printerErr <- r.Err
				for range results {
				}
				return
			}
			printProbability(offset, float64(r.Probability), p.Threshold)
			offset += windowDuration
		}
	})

	err = readWindows(os.Stdin, int(p.WindowSize), func(samples []float32) error {
		select {
		case err := <-printerErr:
			return err
		default:
		}
		results <- async.DetectAsync(ctx, samples)
		return nil
	})
	close(results)
	if err != nil {
		return err
	}
	return <-printerErr
}

func runLibfvad(
	ctx context.Context,
	p params,
) error {
	v, err := libfvad.NewVAD(silero.SampleRate, p.LibfvadMode)
	if err != nil {
		return fmt.Errorf("unable to initialize libfvad: %w", err)
	}
	defer v.Close()

	// 30ms is the longest frame supported by libfvad
	const frameSize = silero.SampleRate * 30 / 1000
	var offset time.Duration
	return readWindows(os.Stdin, frameSize, func(samples []float32) error {
		probability, err := v.VoiceProbability(ctx, float32ToS16LE(samples))
		if err != nil {
			return err
		}
		printProbability(offset, probability, p.Threshold)
		offset += 30 * time.Millisecond
		return nil
	})
}

func printProbability(
	offset time.Duration,
	probability float64,
	threshold float64,
) {
	mark := ""
	if probability >= threshold {
		mark = " speech"
	}
	fmt.Printf("%10s %.3f%s\n", offset.Truncate(time.Millisecond), probability, mark)
}
