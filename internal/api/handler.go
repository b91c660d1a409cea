package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Praashon/devtrackr/internal/aggregator"
	"github.com/Praashon/devtrackr/internal/config"
	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
	"github.com/Praashon/devtrackr/internal/source"
	"github.com/Praashon/devtrackr/internal/store"
	"github.com/Praashon/devtrackr/internal/week"
)

const dateLayout = "2006-01-02"

// Handler handles API requests
type Handler struct {
	cfg         *config.Config
	events      store.Events
	reviews     store.Reviews
	goals       store.Goals
	habits      store.Habits
	repos       store.Repositories
	connections store.Connections
	source      source.Source
}

// Stores bundles the store set the handler operates on
type Stores struct {
	Events       store.Events
	Reviews      store.Reviews
	Goals        store.Goals
	Habits       store.Habits
	Repositories store.Repositories
	Connections  store.Connections
}

// NewHandler creates a new API handler
func NewHandler(cfg *config.Config, stores Stores, src source.Source) *Handler {
	return &Handler{
		cfg:         cfg,
		events:      stores.Events,
		reviews:     stores.Reviews,
		goals:       stores.Goals,
		habits:      stores.Habits,
		repos:       stores.Repositories,
		connections: stores.Connections,
		source:      src,
	}
}

// HealthCheck returns the service health status
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "devtrackr-api",
	})
}

// GetCurrentWeek returns the current week with its aggregate
// GET /api/v1/weeks/current
func (h *Handler) GetCurrentWeek(c *gin.Context) {
	window, err := week.Calculate(time.Now(), h.cfg.Timezone, h.cfg.WeekStartsOn)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWeek(c, window)
}

// GetWeek returns a week by its identifier
// GET /api/v1/weeks/:weekId
func (h *Handler) GetWeek(c *gin.Context) {
	window, err := week.FromID(c.Param("weekId"), h.cfg.Timezone, h.cfg.WeekStartsOn)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWeek(c, window)
}

func (h *Handler) respondWeek(c *gin.Context, window domain.WeekWindow) {
	events, err := h.eventsForWindow(c, window)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := week.Status(window.StartDate.Format(dateLayout), h.cfg.Timezone)
	if err != nil {
		respondError(c, err)
		return
	}

	aggregate := aggregator.ComputeWeekAggregate(window.ID, h.cfg.UserID, events, window)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"week": domain.Week{
				ID:        window.ID,
				UserID:    h.cfg.UserID,
				StartDate: window.StartDate.Format(dateLayout),
				EndDate:   window.EndDate.Format(dateLayout),
				Status:    status,
			},
			"aggregate":    aggregate,
			"repositories": h.repos.List(h.cfg.UserID),
			"events":       events,
		},
	})
}

// eventsForWindow returns the stored events for a window, falling back to
// the configured source on a cold cache
func (h *Handler) eventsForWindow(c *gin.Context, window domain.WeekWindow) ([]domain.Event, error) {
	events := h.events.EventsForWeek(h.cfg.UserID, window.ID)
	if len(events) > 0 {
		return events, nil
	}

	events, err := h.source.EventsForWeek(c.Request.Context(), h.cfg.UserID, window, h.repos.List(h.cfg.UserID))
	if err != nil {
		return nil, err
	}
	h.events.ReplaceWeek(h.cfg.UserID, window.ID, events)
	return events, nil
}

// GetWeeklyReviews returns the review history with the current streak.
// The current week's review is created on the fly if it does not exist.
// GET /api/v1/weekly-reviews
func (h *Handler) GetWeeklyReviews(c *gin.Context) {
	window, err := week.Calculate(time.Now(), h.cfg.Timezone, h.cfg.WeekStartsOn)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := h.eventsForWindow(c, window)
	if err != nil {
		respondError(c, err)
		return
	}
	aggregate := aggregator.ComputeWeekAggregate(window.ID, h.cfg.UserID, events, window)
	h.reviews.GetOrCreate(h.cfg.UserID, window, aggregator.ActivitySummaryFrom(aggregate))

	reviews := h.reviews.List(h.cfg.UserID)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"reviews":       reviews,
			"streak":        aggregator.CurrentStreak(reviews),
			"currentWeekId": window.ID,
		},
	})
}

type reviewPatchRequest struct {
	Reflections *store.ReflectionsPatch `json:"reflections"`
	Targets     *[]domain.Target        `json:"targets"`
}

// PatchWeeklyReview updates a review's reflections and/or targets
// PATCH /api/v1/weekly-reviews/:weekId
func (h *Handler) PatchWeeklyReview(c *gin.Context) {
	weekID := c.Param("weekId")

	var req reviewPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Reflections == nil && req.Targets == nil {
		respondError(c, apperrors.NewBadRequestError("nothing to update"))
		return
	}

	var review domain.WeeklyReview
	var err error
	if req.Reflections != nil {
		review, err = h.reviews.UpdateReflections(h.cfg.UserID, weekID, *req.Reflections)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Targets != nil {
		review, err = h.reviews.ReplaceTargets(h.cfg.UserID, weekID, *req.Targets)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": review})
}

type reviewActionRequest struct {
	Action   string `json:"action"`
	Text     string `json:"text"`
	TargetID string `json:"targetId"`
}

// PostWeeklyReviewAction dispatches a review action: complete, add-target,
// remove-target or toggle-target
// POST /api/v1/weekly-reviews/:weekId
func (h *Handler) PostWeeklyReviewAction(c *gin.Context) {
	weekID := c.Param("weekId")

	var req reviewActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	var review domain.WeeklyReview
	var err error
	switch req.Action {
	case "complete":
		review, err = h.reviews.Complete(h.cfg.UserID, weekID)
	case "add-target":
		if req.Text == "" {
			respondError(c, apperrors.NewValidationError("target text is required"))
			return
		}
		review, err = h.reviews.AddTarget(h.cfg.UserID, weekID, req.Text)
	case "remove-target":
		review, err = h.reviews.RemoveTarget(h.cfg.UserID, weekID, req.TargetID)
	case "toggle-target":
		review, err = h.reviews.ToggleTarget(h.cfg.UserID, weekID, req.TargetID)
	default:
		respondError(c, apperrors.NewBadRequestError("unknown action: "+req.Action))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": review})
}

type goalCreateRequest struct {
	Title             string             `json:"title"`
	Description       *string            `json:"description"`
	Status            *domain.GoalStatus `json:"status"`
	TargetDate        *string            `json:"targetDate"`
	CreatedFromReview *string            `json:"createdFromReview"`
}

// CreateGoal creates a new goal
// POST /api/v1/goals
func (h *Handler) CreateGoal(c *gin.Context) {
	var req goalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		respondError(c, apperrors.NewValidationError("title is required"))
		return
	}

	status := domain.GoalStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	goal := h.goals.Create(h.cfg.UserID, store.GoalInput{
		Title:             req.Title,
		Description:       req.Description,
		Status:            status,
		TargetDate:        req.TargetDate,
		CreatedFromReview: req.CreatedFromReview,
	})

	c.JSON(http.StatusCreated, gin.H{"data": goal})
}

// UpdateGoal applies a partial update to a goal
// PATCH /api/v1/goals/:goalId
func (h *Handler) UpdateGoal(c *gin.Context) {
	var patch store.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	goal, err := h.goals.Update(c.Param("goalId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goal})
}

// DeleteGoal removes a goal
// DELETE /api/v1/goals/:goalId
func (h *Handler) DeleteGoal(c *gin.Context) {
	if err := h.goals.Delete(c.Param("goalId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"success": true}})
}

type goalActionRequest struct {
	Action string `json:"action"`
}

// PostGoalAction dispatches a goal action; archive is the only one
// POST /api/v1/goals/:goalId
func (h *Handler) PostGoalAction(c *gin.Context) {
	var req goalActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Action != "archive" {
		respondError(c, apperrors.NewBadRequestError("unknown action: "+req.Action))
		return
	}

	goal, err := h.goals.Archive(c.Param("goalId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": goal})
}

type habitCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// CreateHabit creates a new habit
// POST /api/v1/habits
func (h *Handler) CreateHabit(c *gin.Context) {
	var req habitCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		respondError(c, apperrors.NewValidationError("title is required"))
		return
	}

	habit := h.habits.Create(h.cfg.UserID, store.HabitInput{
		Title:       req.Title,
		Description: req.Description,
	})
	c.JSON(http.StatusCreated, gin.H{"data": habit})
}

// UpdateHabit applies a partial update to a habit
// PATCH /api/v1/habits/:habitId
func (h *Handler) UpdateHabit(c *gin.Context) {
	var patch store.HabitPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	habit, err := h.habits.Update(c.Param("habitId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": habit})
}

// DeleteHabit removes a habit
// DELETE /api/v1/habits/:habitId
func (h *Handler) DeleteHabit(c *gin.Context) {
	if err := h.habits.Delete(c.Param("habitId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"success": true}})
}

type habitToggleRequest struct {
	WeekStartDate string `json:"weekStartDate"`
	Completed     *bool  `json:"completed"`
}

// ToggleHabitWeek records a habit's completion for one week
// POST /api/v1/habits/:habitId/toggle
func (h *Handler) ToggleHabitWeek(c *gin.Context) {
	var req habitToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.WeekStartDate == "" || req.Completed == nil {
		respondError(c, apperrors.NewValidationError("weekStartDate and completed are required"))
		return
	}

	habit, err := h.habits.ToggleWeek(c.Param("habitId"), req.WeekStartDate, *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": habit})
}

// GetGoalsHabits returns the combined goals and habits payload
// GET /api/v1/goals-habits
func (h *Handler) GetGoalsHabits(c *gin.Context) {
	window, err := week.Calculate(time.Now(), h.cfg.Timezone, h.cfg.WeekStartsOn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"goals":            h.goals.List(h.cfg.UserID),
			"habits":           h.habits.List(h.cfg.UserID),
			"currentWeekStart": window.StartDate.Format(dateLayout),
		},
	})
}

// GetRepositories returns the user's registered repositories
// GET /api/v1/repositories
func (h *Handler) GetRepositories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"repositories": h.repos.List(h.cfg.UserID)},
	})
}

type repoToggleRequest struct {
	Included *bool `json:"included"`
}

// ToggleRepository flips a repository's inclusion in aggregation
// POST /api/v1/repositories/:repoId/toggle
func (h *Handler) ToggleRepository(c *gin.Context) {
	var req repoToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Included == nil {
		respondError(c, apperrors.NewBadRequestError("included is required"))
		return
	}

	repo, err := h.repos.Toggle(c.Param("repoId"), *req.Included)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": repo})
}

// GetConnection returns the GitHub connection state
// GET /api/v1/github/connection
func (h *Handler) GetConnection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.connections.Get()})
}

// SyncEvents pulls fresh events from the configured source into the event
// store for the current week
// POST /api/v1/github/sync
func (h *Handler) SyncEvents(c *gin.Context) {
	window, err := week.Calculate(time.Now(), h.cfg.Timezone, h.cfg.WeekStartsOn)
	if err != nil {
		respondError(c, err)
		return
	}

	h.connections.SetSyncing(true)
	events, err := h.source.EventsForWeek(c.Request.Context(), h.cfg.UserID, window, h.repos.List(h.cfg.UserID))
	if err != nil {
		h.connections.SetSyncing(false)
		respondError(c, err)
		return
	}
	h.events.ReplaceWeek(h.cfg.UserID, window.ID, events)

	username := h.cfg.GitHubUser
	if username == "" {
		if current := h.connections.Get().GitHubUsername; current != nil {
			username = *current
		}
	}
	h.connections.MarkSynced(username, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"connection":   h.connections.Get(),
			"weekId":       window.ID,
			"syncedEvents": len(events),
		},
	})
}

// respondError writes the error envelope for an application error
func respondError(c *gin.Context, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.NewInternalError("internal server error", err)
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeValidation, apperrors.ErrCodeBadRequest:
		status = http.StatusBadRequest
	case apperrors.ErrCodeConfiguration, apperrors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
