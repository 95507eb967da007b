package postgres

import (
	"context"

	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// planRepository implements the repository.PlanRepository interface. Meal and
// workout plans live in separate tables; the kind selects which one.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// FindCurrent retrieves the current plan of the given kind for the user.
func (repo *planRepository) FindCurrent(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error) {
	if kind == entity.PlanKindMeal {
		var planM model.MealPlanModel
		if err := repo.db.WithContext(ctx).
			Where("user_id = ?", userID).
			First(&planM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrPlanNotFound
			}

			return nil, errors.Wrap(err, "failed to find meal plan")
		}

		return toMealPlanDomain(&planM), nil
	}

	var planM model.WorkoutPlanModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout plan")
	}

	return toWorkoutPlanDomain(&planM), nil
}

// Upsert atomically replaces the current plan for (user, kind). The conflict
// target is the unique index on user_id, so a concurrent upsert can never
// produce two current rows.
func (repo *planRepository) Upsert(ctx context.Context, plan *entity.Plan) error {
	onUserConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "overview", "data", "updated_at",
		}),
	}

	if plan.Kind == entity.PlanKindMeal {
		onUserConflict.DoUpdates = clause.AssignmentColumns([]string{
			"title", "overview", "daily_calories", "data", "updated_at",
		})
		planM := fromMealPlanDomain(plan)
		if err := repo.db.WithContext(ctx).
			Clauses(onUserConflict).
			Create(planM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to upsert meal plan")
		}

		return nil
	}

	onUserConflict.DoUpdates = clause.AssignmentColumns([]string{
		"title", "overview", "weekly_goal", "data", "updated_at",
	})
	planM := fromWorkoutPlanDomain(plan)
	if err := repo.db.WithContext(ctx).
		Clauses(onUserConflict).
		Create(planM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert workout plan")
	}

	return nil
}

func toMealPlanDomain(data *model.MealPlanModel) *entity.Plan {
	return &entity.Plan{
		ID:            data.ID,
		UserID:        data.UserID,
		Kind:          entity.PlanKindMeal,
		Title:         data.Title,
		Overview:      data.Overview,
		DailyCalories: data.DailyCalories,
		Data:          data.Data,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromMealPlanDomain(data *entity.Plan) *model.MealPlanModel {
	return &model.MealPlanModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Title:         data.Title,
		Overview:      data.Overview,
		DailyCalories: data.DailyCalories,
		Data:          data.Data,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toWorkoutPlanDomain(data *model.WorkoutPlanModel) *entity.Plan {
	return &entity.Plan{
		ID:         data.ID,
		UserID:     data.UserID,
		Kind:       entity.PlanKindWorkout,
		Title:      data.Title,
		Overview:   data.Overview,
		WeeklyGoal: data.WeeklyGoal,
		Data:       data.Data,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromWorkoutPlanDomain(data *entity.Plan) *model.WorkoutPlanModel {
	return &model.WorkoutPlanModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Overview:   data.Overview,
		WeeklyGoal: data.WeeklyGoal,
		Data:       data.Data,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
