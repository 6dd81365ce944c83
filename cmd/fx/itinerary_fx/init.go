package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(provideQuestionnaireRepo, provideItineraryService)

func provideQuestionnaireRepo(db *gorm.DB) repositories.QuestionnaireRepository {
	return repositories.NewQuestionnaireRepository(db)
}

func provideItineraryService(
	questionnaireRepo repositories.QuestionnaireRepository,
	generationClient utils.GenerationClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(questionnaireRepo, generationClient)
}
