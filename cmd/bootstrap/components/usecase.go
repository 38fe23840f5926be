package components

import (
	"hosteed/internal/infra/calendar"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"
	"hosteed/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		calendar.NewICSCodec,
		fx.As(new(shared.CalendarCodec)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBlackoutCommands,
		commands.NewCalendarImportCommands,
		commands.NewCommissionRuleCommands,
		commands.NewExtraCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewCostQueries,
		queries.NewPricingQueries,
		queries.NewPromotionQueries,
		queries.NewPropertyQueries,
	),
)
