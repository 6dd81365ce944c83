package generation_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripcraft/pkg/utils"
)

var Module = fx.Provide(provideGenerationClient)

func provideGenerationClient() utils.GenerationClientInterface {
	model := os.Getenv("GENERATION_MODEL")
	timeout := 60 * time.Second
	if raw := os.Getenv("GENERATION_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	if os.Getenv("GENERATION_PROVIDER") == "gemini" {
		client, err := utils.NewGeminiGenerationClient(os.Getenv("GEMINI_API_KEY"), model, timeout)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		return client
	}

	return utils.NewOpenAIGenerationClient(os.Getenv("OPENAI_API_KEY"), model, timeout)
}
