package handler

import (
	"errors"
	"strconv"

	"job-routing/internal/delivery/http/dto"
	"job-routing/internal/delivery/http/middleware"
	"job-routing/internal/pkg/response"
	"job-routing/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid page", nil, err)
	}
	if page < 1 {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid page", nil, usecase.ErrInvalidInput)
	}

	out, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Query: c.Query("q"),
		Page:  page,
	})
	if err != nil {
		return mapJobListUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(out))
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobListUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
