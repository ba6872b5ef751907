package onnx

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xsync"
	ort "github.com/yalue/onnxruntime_go"
)

// The ONNX Runtime environment is process-wide, so it is initialized by the first
// backend (with its log level) and destroyed together with the last one.
var (
	environmentLocker xsync.Mutex
	environmentUsers  uint
)

func acquireEnvironment(
	ctx context.Context,
	sharedLibraryPath string,
	logLevel logger.Level,
) error {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &environmentLocker, func() error {
		if environmentUsers > 0 {
			logger.Tracef(ctx, "the ONNX Runtime environment is already initialized, ignoring log level %v", logLevel)
			environmentUsers++
			return nil
		}

		if sharedLibraryPath != "" {
			logger.Debugf(ctx, "using ONNX Runtime library '%s'", sharedLibraryPath)
			ort.SetSharedLibraryPath(sharedLibraryPath)
		}
		if !ort.IsInitialized() {
			if err := ort.InitializeEnvironment(environmentOptions(logLevel)...); err != nil {
				return fmt.Errorf("unable to initialize the ONNX Runtime environment: %w", err)
			}
		}
		environmentUsers++
		return nil
	})
}

func releaseEnvironment(ctx context.Context) error {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &environmentLocker, func() error {
		if environmentUsers == 0 {
			return fmt.Errorf("the ONNX Runtime environment is not acquired")
		}
		environmentUsers--
		if environmentUsers > 0 {
			return nil
		}

		logger.Debugf(ctx, "destroying the ONNX Runtime environment")
		if err := ort.DestroyEnvironment(); err != nil {
			return fmt.Errorf("unable to destroy the ONNX Runtime environment: %w", err)
		}
		return nil
	})
}

func environmentOptions(logLevel logger.Level) []ort.EnvironmentOption {
	switch logLevel {
	case logger.LevelTrace, logger.LevelDebug:
		return []ort.EnvironmentOption{ort.WithLogLevelVerbose()}
	case logger.LevelInfo:
		return []ort.EnvironmentOption{ort.WithLogLevelInfo()}
	case logger.LevelWarning:
		return []ort.EnvironmentOption{ort.WithLogLevelWarning()}
	case logger.LevelError:
		return []ort.EnvironmentOption{ort.WithLogLevelError()}
	case logger.LevelPanic, logger.LevelFatal:
		return []ort.EnvironmentOption{ort.WithLogLevelFatal()}
	}
	return nil
}
