package discord

import (
	"time"

	"go.uber.org/zap"
)

func (r *Router) step(label string) func() {
	start := time.Now()
	return func() { r.log.Debug("[trace] "+label, zap.Duration("took", time.Since(start))) }
}
