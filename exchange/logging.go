package exchange

import (
	"currency-converter/domain"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(input string, from domain.Currency, to domain.Currency, dir domain.Direction) (ex domain.Exchanged) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "convert",
			"input", input,
			"from", from,
			"to", to,
			"direction", dir,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"outcome", ex.Outcome,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(input, from, to, dir)
}
