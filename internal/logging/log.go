package logging

import "github.com/rs/zerolog"

// Logger returns the active logger, configuring the runtime profile on
// first use.
func Logger() *zerolog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	ConfigureRuntime()
	return current.Load()
}

func Trace(msg string) { Logger().Trace().Msg(msg) }
func Debug(msg string) { Logger().Debug().Msg(msg) }

func Tracef(format string, args ...any) { Logger().Trace().Msgf(format, args...) }
func Debugf(format string, args ...any) { Logger().Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { Logger().Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { Logger().Warn().Msgf(format, args...) }
func Errf(format string, args ...any)   { Logger().Error().Msgf(format, args...) }

// Logf writes regardless of level.
func Logf(format string, args ...any) { Logger().Log().Msgf(format, args...) }
