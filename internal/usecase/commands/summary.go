package commands

//go:generate mockgen -source=summary.go -destination=../../../tests/mock/commands/summary.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/domain/summary"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

type SummaryCommands interface {
	// Recompute rebuilds the summary of one owner and date from the committed slots and bookings.
	Recompute(ctx context.Context, key summary.Key) (*summary.DaySummary, error)
	// RecomputeMany recomputes keys concurrently, retrying each one before giving up.
	RecomputeMany(ctx context.Context, keys []summary.Key) error
	// Rebuild recomputes every date in [from, to] and returns how many dates were written.
	Rebuild(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int, error)
}

type summaryUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   booking.Policy
	attempts int
	parallel int
	backoff  time.Duration
}

func NewSummaryCommands(uow shared.UnitOfWork, clk clock.Clock, policy booking.Policy, cfg config.Config) SummaryCommands {
	attempts := cfg.Booking.RecomputeAttempts
	if attempts < 1 {
		attempts = 1
	}
	parallel := cfg.Booking.RecomputeParallel
	if parallel < 1 {
		parallel = 1
	}
	return &summaryUseCaseImpl{
		uow:      uow,
		clock:    clk,
		policy:   policy,
		attempts: attempts,
		parallel: parallel,
		backoff:  50 * time.Millisecond,
	}
}

func (uc *summaryUseCaseImpl) Recompute(ctx context.Context, key summary.Key) (*summary.DaySummary, error) {
	ctx, span := tracer.Start(ctx, "SummaryCommands.Recompute")
	defer span.End()
	span.SetAttributes(
		attribute.String("owner.id", key.OwnerID.String()),
		attribute.String("summary.date", key.Date.Format(time.DateOnly)),
	)

	from, to := slot.DayBounds(key.Date, uc.policy.Location)

	var result summary.DaySummary
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Summaries().LockKey(ctx, tx.DB(), key); err != nil {
			return err
		}

		available, err := tx.Slots().ListAvailable(ctx, tx.DB(), key.OwnerID, from, to)
		if err != nil {
			return err
		}
		booked, err := tx.Bookings().CountInRange(ctx, tx.DB(), key.OwnerID, from, to)
		if err != nil {
			return err
		}

		ranges := make([]slot.TimeRange, len(available))
		for i, s := range available {
			ranges[i] = s.TimeRange()
		}
		result = summary.Compute(key, ranges, int(booked), uc.clock.Now(), uc.policy.MinNotice)

		return tx.Summaries().Upsert(ctx, tx.DB(), result)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "recompute failed")
		return nil, err
	}
	return &result, nil
}

func (uc *summaryUseCaseImpl) RecomputeMany(ctx context.Context, keys []summary.Key) error {
	var g errgroup.Group
	g.SetLimit(uc.parallel)

	for _, key := range keys {
		g.Go(func() error {
			return uc.recomputeWithRetry(ctx, key)
		})
	}
	return g.Wait()
}

func (uc *summaryUseCaseImpl) recomputeWithRetry(ctx context.Context, key summary.Key) error {
	var err error
	for attempt := 1; attempt <= uc.attempts; attempt++ {
		if _, err = uc.Recompute(ctx, key); err == nil {
			return nil
		}
		if attempt == uc.attempts {
			break
		}
		slog.Warn("day summary recompute failed, retrying",
			"owner_id", key.OwnerID,
			"date", key.Date.Format(time.DateOnly),
			"attempt", attempt,
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * uc.backoff):
		}
	}

	// the cache now disagrees with the source of truth until the next mutation or rebuild
	slog.Error("day summary is stale: recompute gave up",
		"owner_id", key.OwnerID,
		"date", key.Date.Format(time.DateOnly),
		"attempts", uc.attempts,
		"error", err.Error())
	return err
}

func (uc *summaryUseCaseImpl) Rebuild(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (int, error) {
	if err := queries.ValidateDateRange(from, to); err != nil {
		return 0, err
	}

	keys := make([]summary.Key, 0, queries.DaysBetween(from, to))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, summary.Key{OwnerID: ownerID, Date: d})
	}
	if err := uc.RecomputeMany(ctx, keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
