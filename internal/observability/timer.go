package observability

import (
	"time"

	"github.com/rs/zerolog"
)

// Timer measures one evaluated batch.
type Timer struct {
	logger zerolog.Logger
	symbol string
	dims   int
	start  time.Time
}

func StartTimer(logger zerolog.Logger, symbol string, dims int) *Timer {
	return &Timer{logger: logger, symbol: symbol, dims: dims, start: time.Now()}
}

// Done records samples against the batch and logs it at debug level.
func (t *Timer) Done(samples int) time.Duration {
	elapsed := time.Since(t.start)
	RecordEvaluation(t.symbol, t.dims, samples, elapsed)
	t.logger.Debug().
		Str("symbol", t.symbol).
		Int("dims", t.dims).
		Int("samples", samples).
		Dur("duration", elapsed).
		Msg("eval_batch")
	return elapsed
}
