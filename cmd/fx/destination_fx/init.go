package destination_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(provideDestinationService)

func provideDestinationService(generationClient utils.GenerationClientInterface) services.DestinationServiceInterface {
	return services.NewDestinationService(generationClient)
}
