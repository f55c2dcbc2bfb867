package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"inspirehub/config"
	"inspirehub/infras/otel"
	bookingService "inspirehub/internal/domains/booking/service"
	"inspirehub/shared/constant"
	"inspirehub/shared/timezone"
)

// Sweeper closes out accepted bookings whose end time has passed. It only
// decides WHEN to sweep; the booking service decides WHAT is elapsed, against
// the timestamp handed to it.
type Sweeper struct {
	service bookingService.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func NewSweeper(service bookingService.Booking, cfg *config.Config, otel otel.Otel) *Sweeper {
	return &Sweeper{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

// Run blocks until the context is cancelled, sweeping at the configured
// interval.
func (s *Sweeper) Run(ctx context.Context) {
	interval := time.Duration(s.cfg.Booking.SweepIntervalSecond) * time.Second
	ticker := time.NewTicker(interval)

	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("Booking sweeper started.")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Booking sweeper stopped.")

			return
		case <-ticker.C:
			s.SweepOnce(ctx, timezone.Now())
		}
	}
}

// SweepOnce performs a single sweep against the given timestamp.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".sweep")
	defer scope.End()

	swept, err := s.service.Sweep(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("booking sweep failed")
		scope.TraceError(err)

		return
	}

	if swept > 0 {
		log.Info().Int("swept", swept).Msg("marked elapsed bookings done")
	}
}
