package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"fitflow/config"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	mockRepo "fitflow/internal/mocks/repository"
	mockSvc "fitflow/internal/mocks/service"
	mockUC "fitflow/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planServiceMocks struct {
	profileRepo  *mockRepo.MockProfileRepository
	planRepo     *mockRepo.MockPlanRepository
	entitlements *mockUC.MockEntitlementUsecase
	generator    *mockSvc.MockPlanTextGenerator
	publisher    *mockSvc.MockEventPublisher
}

func newPlanService(t *testing.T) (*planServiceMocks, *planService) {
	m := &planServiceMocks{
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		planRepo:     mockRepo.NewMockPlanRepository(t),
		entitlements: mockUC.NewMockEntitlementUsecase(t),
		generator:    mockSvc.NewMockPlanTextGenerator(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	service := NewPlanService(PlanServiceParams{
		ProfileRepo:  m.profileRepo,
		PlanRepo:     m.planRepo,
		Entitlements: m.entitlements,
		Generator:    m.generator,
		Publisher:    m.publisher,
		Config: &config.Config{
			Gemini: &config.GeminiConfig{GenerationTimeout: 5 * time.Second},
		},
		Logger: newTestLogger(),
	})

	return m, service.(*planService)
}

func completeProfile(userID uuid.UUID) *entity.Profile {
	age := 30
	weight := 75.0
	height := 180.0

	return &entity.Profile{
		UserID:            userID,
		Age:               &age,
		WeightKg:          &weight,
		HeightCm:          &height,
		FitnessGoal:       entity.GoalLoseWeight,
		DietaryPreference: entity.DietNone,
	}
}

func validMealPlanJSON() string {
	data := entity.MealPlanData{
		Title:         "Personalized 7-Day Meal Plan",
		Overview:      "Balanced meals for steady weight loss",
		DailyCalories: 2000,
	}
	for _, day := range entity.Weekdays {
		item := entity.MealItem{Name: "Oatmeal", Calories: 350, Description: "With berries"}
		data.Days = append(data.Days, entity.MealDay{
			Day: day,
			Meals: entity.MealSlots{
				Breakfast: item,
				Lunch:     entity.MealItem{Name: "Chicken salad", Calories: 500},
				Dinner:    entity.MealItem{Name: "Grilled salmon", Calories: 600},
				Snack1:    entity.MealItem{Name: "Apple", Calories: 80},
				Snack2:    entity.MealItem{Name: "Greek yogurt", Calories: 150},
			},
		})
	}

	raw, _ := json.Marshal(&data)

	return string(raw)
}

func validWorkoutPlanJSON() string {
	data := entity.WorkoutPlanData{
		Title:      "Personalized 7-Day Workout Plan",
		Overview:   "Progressive full-body split",
		WeeklyGoal: "Build strength",
	}
	for i, day := range entity.Weekdays {
		wd := entity.WorkoutDay{Day: day, Focus: "Full Body", Duration: "45 minutes"}
		// Sunday stays a rest day with no exercises.
		if i < 6 {
			wd.Exercises = []entity.Exercise{{
				Name:        "Squat",
				Type:        "strength",
				Sets:        3,
				Reps:        "10-12",
				Rest:        "60 seconds",
				Description: "Keep your back straight",
			}}
		} else {
			wd.Focus = "Rest"
		}
		data.Days = append(data.Days, wd)
	}

	raw, _ := json.Marshal(&data)

	return string(raw)
}

func TestPlanService_GeneratePlan_MealSuccess_FreeTrial(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{UserID: userID, Tier: entity.TierBasic}, nil)

	m.generator.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, prompt string) {
			assert.Contains(t, prompt, "7-day meal plan")
			assert.Contains(t, prompt, "Age: 30 years")
			assert.Contains(t, prompt, "Dietary Preference: none")
		}).
		Return("```json\n"+validMealPlanJSON()+"\n```", nil)

	m.planRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Plan")).
		Return(nil)

	m.entitlements.EXPECT().
		ConsumeFreeTrial(ctx, userID, entity.PlanKindMeal).
		Return(nil)

	m.publisher.EXPECT().
		PublishPlanGenerated(ctx, mock.AnythingOfType("*service.PlanGeneratedEvent")).
		Return(nil)

	plan, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanKindMeal, plan.Kind)
	assert.Equal(t, "Personalized 7-Day Meal Plan", plan.Title)
	assert.Equal(t, 2000, plan.DailyCalories)
	assert.NotEmpty(t, plan.Data)
}

func TestPlanService_GeneratePlan_WorkoutSuccess_Regeneration(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{
			UserID:              userID,
			Tier:                entity.TierPro,
			FreeWorkoutPlanUsed: true,
			RegenerationsUsed:   1,
			RegenerationsLimit:  3,
		}, nil)

	m.generator.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("string")).
		Return(validWorkoutPlanJSON(), nil)

	m.planRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Plan")).
		Return(nil)

	m.entitlements.EXPECT().
		ConsumeRegeneration(ctx, userID).
		Return(true, nil)

	m.publisher.EXPECT().
		PublishPlanGenerated(ctx, mock.AnythingOfType("*service.PlanGeneratedEvent")).
		Return(nil)

	plan, err := service.GeneratePlan(ctx, userID, entity.PlanKindWorkout)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanKindWorkout, plan.Kind)
	assert.Equal(t, "Build strength", plan.WeeklyGoal)
}

func TestPlanService_GeneratePlan_IncompleteProfile(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	partial := completeProfile(userID)
	partial.Age = nil

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(partial, nil)

	plan, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileIncomplete))
}

func TestPlanService_GeneratePlan_MissingProfile(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileIncomplete))
}

func TestPlanService_GeneratePlan_DeniedBeforeModelCall(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	// Basic tier, free trial spent, no regenerations. The generator mock has
	// no expectations, so any call to it fails the test.
	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Tier:             entity.TierBasic,
			FreeMealPlanUsed: true,
		}, nil)

	_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntitlementDenied))
}

func TestPlanService_GeneratePlan_GenerationFailure(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{UserID: userID, Tier: entity.TierBasic}, nil)

	m.generator.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("upstream unavailable"))

	_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrGenerationFailed))
}

func TestPlanService_GeneratePlan_MalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json at all", "Sorry, I cannot help with that."},
		{"truncated json", `{"title": "Plan", "days": [`},
		{"wrong day order", `{"title": "Plan", "overview": "x", "dailyCalories": 2000, "days": [{"day": "Tuesday"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, service := newPlanService(t)

			ctx := context.Background()
			userID := uuid.New()

			m.profileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(completeProfile(userID), nil)

			m.entitlements.EXPECT().
				GetOrCreate(ctx, userID).
				Return(&entity.Subscription{UserID: userID, Tier: entity.TierBasic}, nil)

			m.generator.EXPECT().
				GenerateContent(mock.Anything, mock.AnythingOfType("string")).
				Return(tt.response, nil)

			// No Upsert and no consume expectations: a rejected response must
			// neither persist nor burn the entitlement.
			_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedPlan))
		})
	}
}

func TestPlanService_GeneratePlan_PersistenceFailureDoesNotConsume(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{UserID: userID, Tier: entity.TierBasic}, nil)

	m.generator.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("string")).
		Return(validMealPlanJSON(), nil)

	m.planRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Plan")).
		Return(errors.New("connection reset"))

	_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceFailed))
}

func TestPlanService_GeneratePlan_ConcurrentQuotaRace(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(completeProfile(userID), nil)

	m.entitlements.EXPECT().
		GetOrCreate(ctx, userID).
		Return(&entity.Subscription{
			UserID:             userID,
			Tier:               entity.TierPro,
			FreeMealPlanUsed:   true,
			RegenerationsUsed:  2,
			RegenerationsLimit: 3,
		}, nil)

	m.generator.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("string")).
		Return(validMealPlanJSON(), nil)

	m.planRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Plan")).
		Return(nil)

	// A concurrent request took the last slot while the model call ran.
	m.entitlements.EXPECT().
		ConsumeRegeneration(ctx, userID).
		Return(false, nil)

	_, err := service.GeneratePlan(ctx, userID, entity.PlanKindMeal)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntitlementDenied))
}

func TestPlanService_GeneratePlan_InvalidKind(t *testing.T) {
	_, service := newPlanService(t)

	_, err := service.GeneratePlan(context.Background(), uuid.New(), entity.PlanKind("yoga"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlanService_GetCurrentPlan_NotFound(t *testing.T) {
	m, service := newPlanService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.planRepo.EXPECT().
		FindCurrent(ctx, userID, entity.PlanKindWorkout).
		Return(nil, repository.ErrPlanNotFound)

	_, err := service.GetCurrentPlan(ctx, userID, entity.PlanKindWorkout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"markdown fences", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"surrounding prose", `Here is your plan: {"a":1} Enjoy!`, `{"a":1}`, true},
		{"no braces", "no json here", "", false},
		{"empty", "", "", false},
		{"only closing brace", "}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDays(t *testing.T) {
	ordered := entity.Weekdays[:]

	require.NoError(t, validateDays(ordered))

	shuffled := append([]string{}, ordered...)
	shuffled[0], shuffled[1] = shuffled[1], shuffled[0]
	require.Error(t, validateDays(shuffled))

	require.Error(t, validateDays(ordered[:6]))
	require.Error(t, validateDays(append(append([]string{}, ordered...), "Monday")))
}

func TestValidateWorkoutPlan_RestDayIsValid(t *testing.T) {
	var data entity.WorkoutPlanData
	require.NoError(t, json.Unmarshal([]byte(validWorkoutPlanJSON()), &data))
	require.NoError(t, validateWorkoutPlan(&data))

	// Every day empty is still a structurally valid plan.
	for i := range data.Days {
		data.Days[i].Exercises = nil
	}
	require.NoError(t, validateWorkoutPlan(&data))
}

func TestValidateMealPlan_MissingSlotName(t *testing.T) {
	var data entity.MealPlanData
	require.NoError(t, json.Unmarshal([]byte(validMealPlanJSON()), &data))
	require.NoError(t, validateMealPlan(&data))

	data.Days[3].Meals.Dinner.Name = ""
	err := validateMealPlan(&data)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "dinner"), fmt.Sprintf("unexpected error: %v", err))
}
