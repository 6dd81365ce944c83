package db_models

import (
	"github.com/google/uuid"
)

// Activity is one generator-suggested activity owned by a questionnaire.
// OriginalID is the identifier the generator emitted ("act_001", ...) and
// is stored verbatim so client selections can be correlated back.
type Activity struct {
	BaseModel
	OriginalID      string    `gorm:"index"`
	QuestionnaireID uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Description     string
	Category        string
	DurationHours   float64
	Cost            float64
	Priority        string `gorm:"default:medium"`
}
