package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/server"
)

func syntaxExit(message string) {
	fmt.Fprintf(os.Stderr, "syntax error: %s\n", message)
	pflag.Usage()
	os.Exit(2)
}

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	sessionsFlag := pflag.Uint("sessions", 16, "maximal amount of simultaneously open sessions")
	cacheSizeFlag := pflag.Uint("cache-size", 4, "amount of closed sessions kept initialized for reuse")
	defaultModelFlag := pflag.String("default-model", "", "path to the Silero VAD model used when a client does not specify one")
	onnxRuntimeLibraryFlag := pflag.String("onnxruntime-library", "", "path to the ONNX Runtime shared library")
	pflag.Parse()
	if pflag.NArg() != 1 {
		syntaxExit("expected one argument (bind address)")
	}
	listenAddr := pflag.Arg(0)

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	listener, err := getListener(ctx, listenAddr)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	var opts silero.Options
	if *onnxRuntimeLibraryFlag != "" {
		opts = append(opts, silero.OptionSharedLibraryPath(*onnxRuntimeLibraryFlag))
	}

	srv := server.NewServer(*defaultModelFlag, *sessionsFlag, *cacheSizeFlag, server.OptionSileroOptions(opts))
	defer srv.Close()

	logger.Infof(ctx, "started at %v", listener.Addr())
	err = srv.Serve(ctx, listener)
	logger.Fatal(ctx, err)
}
