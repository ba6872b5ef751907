package goconv

import (
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
)

func LogLevelFromGRPC(l vad_grpc.LoggingLevel) logger.Level {
	switch l {
	case vad_grpc.LoggingLevel_LoggingLevelNone:
		return logger.LevelUndefined
	case vad_grpc.LoggingLevel_LoggingLevelFatal:
		return logger.LevelFatal
	case vad_grpc.LoggingLevel_LoggingLevelPanic:
		return logger.LevelPanic
	case vad_grpc.LoggingLevel_LoggingLevelError:
		return logger.LevelError
	case vad_grpc.LoggingLevel_LoggingLevelWarning:
		return logger.LevelWarning
	case vad_grpc.LoggingLevel_LoggingLevelInfo:
		return logger.LevelInfo
	case vad_grpc.LoggingLevel_LoggingLevelDebug:
		return logger.LevelDebug
	case vad_grpc.LoggingLevel_LoggingLevelTrace:
		return logger.LevelTrace
	}
	return logger.LevelUndefined
}

func LogLevelToGRPC(l logger.Level) vad_grpc.LoggingLevel {
	switch l {
	case logger.LevelUndefined:
		return vad_grpc.LoggingLevel_LoggingLevelNone
	case logger.LevelFatal:
		return vad_grpc.LoggingLevel_LoggingLevelFatal
	case logger.LevelPanic:
		return vad_grpc.LoggingLevel_LoggingLevelPanic
	case logger.LevelError:
		return vad_grpc.LoggingLevel_LoggingLevelError
	case logger.LevelWarning:
		return vad_grpc.LoggingLevel_LoggingLevelWarning
	case logger.LevelInfo:
		return vad_grpc.LoggingLevel_LoggingLevelInfo
	case logger.LevelDebug:
		return vad_grpc.LoggingLevel_LoggingLevelDebug
	case logger.LevelTrace:
		return vad_grpc.LoggingLevel_LoggingLevelTrace
	}
	return vad_grpc.LoggingLevel_LoggingLevelNone
}
