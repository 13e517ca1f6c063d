package postgres

import (
	"context"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
)

// sourceUnavailable keeps the driver error as detail while matching battedball.ErrSourceUnavailable.
// Context cancellation is passed through untouched.
func sourceUnavailable(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return crerr.Wrap(err, op)
	}
	return crerr.WithSecondaryError(crerr.Wrapf(battedball.ErrSourceUnavailable, "%s: %v", op, err), err)
}
