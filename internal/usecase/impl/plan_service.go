package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fitflow/config"
	deliverycontext "fitflow/internal/delivery/context"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/domain/service"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planService implements the PlanUsecase interface. It composes the
// entitlement gate, the text-generation gateway and the plan store.
type planService struct {
	profileRepo       repository.ProfileRepository
	planRepo          repository.PlanRepository
	entitlements      usecase.EntitlementUsecase
	generator         service.PlanTextGenerator
	publisher         service.EventPublisher
	generationTimeout time.Duration
	logger            *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	PlanRepo     repository.PlanRepository
	Entitlements usecase.EntitlementUsecase
	Generator    service.PlanTextGenerator
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPlanService creates a new plan service instance
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	timeout := time.Duration(0)
	if params.Config != nil && params.Config.Gemini != nil {
		timeout = params.Config.Gemini.GenerationTimeout
	}

	return &planService{
		profileRepo:       params.ProfileRepo,
		planRepo:          params.PlanRepo,
		entitlements:      params.Entitlements,
		generator:         params.Generator,
		publisher:         params.Publisher,
		generationTimeout: timeout,
		logger:            params.Logger,
	}
}

func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePlan runs the full generation workflow. The entitlement is consumed
// only after the plan row has been persisted; a generation or persistence
// failure burns nothing.
func (srv *planService) GeneratePlan(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error) {
	if !kind.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid plan kind")
	}

	profile, err := srv.loadCompleteProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub, err := srv.entitlements.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The free-trial check comes first and is independent of tier. Only when
	// the trial is spent does the tier/quota path matter.
	freeTrial := sub.FreeGenerationAvailable(kind)
	if !freeTrial && !sub.CanGenerate(kind) {
		return nil, errors.Wrap(domainerrors.ErrEntitlementDenied, "no free trial and no regenerations remaining")
	}

	plan, err := srv.generate(ctx, userID, kind, profile)
	if err != nil {
		return nil, err
	}

	if err := srv.planRepo.Upsert(ctx, plan); err != nil {
		srv.log(ctx).Error("Failed to persist generated plan",
			slog.String("user_id", userID.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPersistenceFailed, "failed to save generated plan")
	}

	if err := srv.consumeEntitlement(ctx, userID, kind, freeTrial); err != nil {
		return nil, err
	}

	srv.publishGeneratedEvent(ctx, plan, freeTrial)

	return plan, nil
}

// GetCurrentPlan returns the user's current plan of the given kind.
func (srv *planService) GetCurrentPlan(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error) {
	if !kind.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid plan kind")
	}

	plan, err := srv.planRepo.FindCurrent(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound.WrapMessage("no current plan of this kind")
		}

		return nil, errors.Wrap(err, "failed to find current plan")
	}

	return plan, nil
}

func (srv *planService) loadCompleteProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileIncomplete.WrapMessage("profile not set up")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if !profile.Complete() {
		return nil, domainerrors.ErrProfileIncomplete.WrapMessage("age, weight and height are required")
	}

	return profile, nil
}

// generate runs the model round trip and validates the response into a Plan.
func (srv *planService) generate(ctx context.Context, userID uuid.UUID, kind entity.PlanKind, profile *entity.Profile) (*entity.Plan, error) {
	prompt := buildPlanPrompt(kind, profile)

	genCtx := ctx
	if srv.generationTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, srv.generationTimeout)
		defer cancel()
	}

	raw, err := srv.generator.GenerateContent(genCtx, prompt)
	if err != nil {
		srv.log(ctx).Error("Plan generation call failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGenerationFailed, err.Error())
	}

	payload, ok := extractJSON(raw)
	if !ok {
		return nil, domainerrors.ErrMalformedPlan.WrapMessage("response contains no JSON object")
	}

	plan, err := buildPlanFromPayload(userID, kind, payload)
	if err != nil {
		srv.log(ctx).Warn("Generated plan failed validation",
			slog.String("kind", string(kind)),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMalformedPlan, err.Error())
	}

	return plan, nil
}

func (srv *planService) consumeEntitlement(ctx context.Context, userID uuid.UUID, kind entity.PlanKind, freeTrial bool) error {
	if freeTrial {
		return srv.entitlements.ConsumeFreeTrial(ctx, userID, kind)
	}

	consumed, err := srv.entitlements.ConsumeRegeneration(ctx, userID)
	if err != nil {
		return err
	}
	if !consumed {
		// A concurrent generation took the last slot while the model call was
		// in flight. The plan is already saved; the caller is still denied.
		return errors.Wrap(domainerrors.ErrEntitlementDenied, "regeneration quota exhausted concurrently")
	}

	return nil
}

func (srv *planService) publishGeneratedEvent(ctx context.Context, plan *entity.Plan, freeTrial bool) {
	if srv.publisher == nil {
		return
	}

	event := &service.PlanGeneratedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		UserID:        plan.UserID.String(),
		PlanKind:      string(plan.Kind),
		Title:         plan.Title,
		DailyCalories: plan.DailyCalories,
		FreeTrial:     freeTrial,
	}
	if err := srv.publisher.PublishPlanGenerated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish plan generated event", slog.Any("error", err))
	}
}

// extractJSON recovers the JSON object from model output that may be wrapped
// in markdown fences or prose. It slices from the first '{' to the last '}'
// and makes a single attempt; anything still unparsable is rejected upstream.
func extractJSON(raw string) (string, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return "", false
	}

	return cleaned[start : end+1], true
}

// buildPlanFromPayload parses and validates the extracted JSON into a Plan
// whose Data field holds the normalized payload.
func buildPlanFromPayload(userID uuid.UUID, kind entity.PlanKind, payload string) (*entity.Plan, error) {
	now := time.Now()
	plan := &entity.Plan{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case entity.PlanKindMeal:
		var data entity.MealPlanData
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			return nil, errors.Wrap(err, "meal plan payload is not valid JSON")
		}
		if err := validateMealPlan(&data); err != nil {
			return nil, err
		}

		normalized, err := json.Marshal(&data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to normalize meal plan payload")
		}

		plan.Title = data.Title
		plan.Overview = data.Overview
		plan.DailyCalories = data.DailyCalories
		plan.Data = normalized

	case entity.PlanKindWorkout:
		var data entity.WorkoutPlanData
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			return nil, errors.Wrap(err, "workout plan payload is not valid JSON")
		}
		if err := validateWorkoutPlan(&data); err != nil {
			return nil, err
		}

		normalized, err := json.Marshal(&data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to normalize workout plan payload")
		}

		plan.Title = data.Title
		plan.Overview = data.Overview
		plan.WeeklyGoal = data.WeeklyGoal
		plan.Data = normalized
	}

	return plan, nil
}

// validateDays checks that the day labels cover Monday through Sunday exactly
// once, in order.
func validateDays(labels []string) error {
	if len(labels) != len(entity.Weekdays) {
		return errors.Errorf("expected %d days, got %d", len(entity.Weekdays), len(labels))
	}
	for i, want := range entity.Weekdays {
		if labels[i] != want {
			return errors.Errorf("day %d should be %s, got %q", i+1, want, labels[i])
		}
	}

	return nil
}

func validateMealPlan(data *entity.MealPlanData) error {
	if data.Title == "" {
		return errors.New("meal plan is missing a title")
	}

	labels := make([]string, 0, len(data.Days))
	for _, day := range data.Days {
		labels = append(labels, day.Day)
	}
	if err := validateDays(labels); err != nil {
		return err
	}

	for _, day := range data.Days {
		slots := map[string]entity.MealItem{
			"breakfast": day.Meals.Breakfast,
			"lunch":     day.Meals.Lunch,
			"dinner":    day.Meals.Dinner,
			"snack1":    day.Meals.Snack1,
			"snack2":    day.Meals.Snack2,
		}
		for slot, item := range slots {
			if item.Name == "" {
				return errors.Errorf("%s: %s is missing a name", day.Day, slot)
			}
			if item.Calories < 0 {
				return errors.Errorf("%s: %s has negative calories", day.Day, slot)
			}
		}
	}

	return nil
}

func validateWorkoutPlan(data *entity.WorkoutPlanData) error {
	if data.Title == "" {
		return errors.New("workout plan is missing a title")
	}

	labels := make([]string, 0, len(data.Days))
	for _, day := range data.Days {
		labels = append(labels, day.Day)
	}
	if err := validateDays(labels); err != nil {
		return err
	}

	// An empty exercises list is a rest day, not an error.
	for _, day := range data.Days {
		for _, ex := range day.Exercises {
			if ex.Name == "" {
				return errors.Errorf("%s: exercise is missing a name", day.Day)
			}
		}
	}

	return nil
}

// buildPlanPrompt renders the generation prompt for the kind from the user's
// profile attributes.
func buildPlanPrompt(kind entity.PlanKind, profile *entity.Profile) string {
	if kind == entity.PlanKindMeal {
		return buildMealPrompt(profile)
	}

	return buildWorkoutPrompt(profile)
}

func buildMealPrompt(profile *entity.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed 7-day meal plan for a person with the following characteristics:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", *profile.Age)
	fmt.Fprintf(&b, "- Weight: %.1f kg\n", *profile.WeightKg)
	fmt.Fprintf(&b, "- Height: %.1f cm\n", *profile.HeightCm)
	fmt.Fprintf(&b, "- Fitness Goal: %s\n", profile.FitnessGoal)
	fmt.Fprintf(&b, "- Dietary Preference: %s\n", profile.DietaryPreference)
	b.WriteString(`
Please provide:
1. A structured 7-day meal plan with breakfast, lunch, dinner, and 2 snacks each day
2. Include calorie estimates for each meal
3. Consider the dietary preferences and fitness goals
4. Make it practical and easy to follow
5. Include variety throughout the week

IMPORTANT: Respond ONLY with valid JSON. Do not include any text before or after the JSON.

Format the response as JSON with this structure:
{
  "title": "Personalized 7-Day Meal Plan",
  "overview": "Brief overview of the plan",
  "dailyCalories": estimated daily calories,
  "days": [
    {
      "day": "Monday",
      "meals": {
        "breakfast": {"name": "meal name", "calories": 000, "description": "brief description"},
        "lunch": {"name": "meal name", "calories": 000, "description": "brief description"},
        "dinner": {"name": "meal name", "calories": 000, "description": "brief description"},
        "snack1": {"name": "snack name", "calories": 000, "description": "brief description"},
        "snack2": {"name": "snack name", "calories": 000, "description": "brief description"}
      }
    }
  ]
}`)

	return b.String()
}

func buildWorkoutPrompt(profile *entity.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed 7-day workout plan for a person with the following characteristics:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", *profile.Age)
	fmt.Fprintf(&b, "- Weight: %.1f kg\n", *profile.WeightKg)
	fmt.Fprintf(&b, "- Height: %.1f cm\n", *profile.HeightCm)
	fmt.Fprintf(&b, "- Fitness Goal: %s\n", profile.FitnessGoal)
	b.WriteString(`
Please provide:
1. A structured 7-day workout plan appropriate for their fitness goal
2. Include different types of exercises (cardio, strength, flexibility)
3. Specify sets, reps, and duration for each exercise
4. Consider rest days
5. Make it progressive and achievable

IMPORTANT: Respond ONLY with valid JSON. Do not include any text before or after the JSON.

Format the response as JSON with this structure:
{
  "title": "Personalized 7-Day Workout Plan",
  "overview": "Brief overview of the plan",
  "weeklyGoal": "Weekly fitness objective",
  "days": [
    {
      "day": "Monday",
      "focus": "workout focus (e.g., Upper Body, Cardio, Rest)",
      "duration": "estimated duration in minutes",
      "exercises": [
        {
          "name": "exercise name",
          "type": "cardio/strength/flexibility",
          "sets": 3,
          "reps": "10-12",
          "duration": "30 seconds",
          "rest": "60 seconds",
          "description": "brief description or form tips"
        }
      ]
    }
  ]
}`)

	return b.String()
}
