package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Questionnaire struct {
	BaseModel
	DestinationID        string
	DestinationName      string
	StartDate            *time.Time
	EndDate              *time.Time
	ReadyForOptimization bool
	PriorityInterests    pq.StringArray `gorm:"type:text[]"`
	MustSeeAttractions   pq.StringArray `gorm:"type:text[]"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE"`
}
