package components

import (
	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	func(clock clock.Clock, policy booking.Policy) *booking.Services {
		return &booking.Services{
			Clock:  clock,
			Policy: policy,
		}
	},
)

func NewBookingPolicy(cfg config.Config) (booking.Policy, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return booking.Policy{}, err
	}
	return booking.NewPolicy(cfg.Booking.MinNotice, loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSummaryCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSummaryQueries,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
	),
)
