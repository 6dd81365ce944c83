package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

type QuestionnaireRepository interface {
	// ReplaceQuestionnaireActivities persists the questionnaire and its full
	// activity set in one transaction. Any activities already stored under
	// the questionnaire id are removed first; the set is replaced wholesale,
	// never merged.
	ReplaceQuestionnaireActivities(ctx context.Context, questionnaire *db_models.Questionnaire, activities []db_models.Activity) error
	GetQuestionnaireById(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error)
	ListActivitiesByQuestionnaireId(ctx context.Context, questionnaireId string) ([]db_models.Activity, error)
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

func (r *questionnaireRepository) ReplaceQuestionnaireActivities(
	ctx context.Context,
	questionnaire *db_models.Questionnaire,
	activities []db_models.Activity,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if questionnaire.ID == uuid.Nil {
			questionnaire.ID = uuid.New()
		}

		if err := tx.Create(questionnaire).Error; err != nil {
			return err
		}

		if err := tx.Where("questionnaire_id = ?", questionnaire.ID).
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}

		for i := range activities {
			activities[i].QuestionnaireID = questionnaire.ID
		}
		if len(activities) > 0 {
			if err := tx.CreateInBatches(activities, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *questionnaireRepository) GetQuestionnaireById(ctx context.Context, questionnaireId string) (*db_models.Questionnaire, error) {

	var questionnaire db_models.Questionnaire
	err := r.db.WithContext(ctx).First(&questionnaire, "id = ?", questionnaireId).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &questionnaire, nil
}

func (r *questionnaireRepository) ListActivitiesByQuestionnaireId(ctx context.Context, questionnaireId string) ([]db_models.Activity, error) {

	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("questionnaire_id = ?", questionnaireId).
		Find(&activities).Error

	if err != nil {
		return nil, err
	}

	return activities, nil
}
