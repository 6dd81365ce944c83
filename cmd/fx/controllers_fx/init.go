package controllers_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewItineraryController,
	controllers.NewDestinationController,
	controllers.NewAuthController,
)
