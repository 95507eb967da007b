package postgres

import (
	"context"
	"time"

	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// progressRepository implements the repository.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// FindByUserAndDate retrieves the progress entry for one calendar date.
func (repo *progressRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.ProgressEntry, error) {
	var entryM model.ProgressEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find progress entry")
	}

	return toProgressDomain(&entryM), nil
}

// FindSince retrieves entries on or after the given date, newest first.
func (repo *progressRepository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.ProgressEntry, error) {
	var entryMs []model.ProgressEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Limit(limit).
		Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find progress entries")
	}

	entries := make([]*entity.ProgressEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toProgressDomain(&entryMs[i]))
	}

	return entries, nil
}

// UpsertWeight sets the weight field for (user, date), leaving the other
// fields untouched.
func (repo *progressRepository) UpsertWeight(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) error {
	entryM := &model.ProgressEntryModel{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              date,
		Weight:            &weightKg,
		WorkoutsCompleted: model.StringSlice{},
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert weight")
	}

	return nil
}

// AddWaterGlasses atomically adds delta glasses for (user, date) while the
// resulting total stays within cap. The guard lives in the upsert's WHERE
// clause, so the check and the increment are one statement and a racing pair
// of calls can never push the stored total past the cap. Zero rows affected
// means the whole delta was rejected.
func (repo *progressRepository) AddWaterGlasses(ctx context.Context, userID uuid.UUID, date time.Time, delta, cap int) (bool, error) {
	result := repo.db.WithContext(ctx).Exec(`
		INSERT INTO progress_entries (id, user_id, date, water_glasses, workouts_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, '[]', NOW(), NOW())
		ON CONFLICT (user_id, date) DO UPDATE
		SET water_glasses = progress_entries.water_glasses + EXCLUDED.water_glasses,
		    updated_at = NOW()
		WHERE progress_entries.water_glasses + EXCLUDED.water_glasses <= ?`,
		uuid.New(), userID, date, delta, cap)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to add water glasses")
	}

	return result.RowsAffected > 0, nil
}

// UpsertWorkouts replaces the completed-workouts set for (user, date).
func (repo *progressRepository) UpsertWorkouts(ctx context.Context, userID uuid.UUID, date time.Time, workouts []string) error {
	entryM := &model.ProgressEntryModel{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              date,
		WorkoutsCompleted: model.StringSlice(workouts),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"workouts_completed", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert workouts")
	}

	return nil
}

// toProgressDomain converts a GORM model to a domain entity.
func toProgressDomain(data *model.ProgressEntryModel) *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:                data.ID,
		UserID:            data.UserID,
		Date:              data.Date,
		Weight:            data.Weight,
		WaterGlasses:      data.WaterGlasses,
		WorkoutsCompleted: data.WorkoutsCompleted,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
