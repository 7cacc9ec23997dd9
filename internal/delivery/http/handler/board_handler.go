package handler

import (
	"bytes"

	"job-routing/internal/config"
	"job-routing/internal/delivery/http/middleware"
	"job-routing/internal/domain/listing"
	"job-routing/internal/usecase"
	"job-routing/internal/view"

	"github.com/gofiber/fiber/v3"
)

// BoardHandler serves the HTML board. Query and page come from the URL, so
// every search or page click is a fresh, stateless render.
type BoardHandler struct {
	uc       usecase.JobListUsecase
	renderer *view.Renderer
	board    config.BoardConfig
	theme    config.ThemeConfig
}

func NewBoardHandler(uc usecase.JobListUsecase, renderer *view.Renderer, board config.BoardConfig, theme config.ThemeConfig) *BoardHandler {
	return &BoardHandler{uc: uc, renderer: renderer, board: board, theme: theme}
}

func (h *BoardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleBoard)
}

func (h *BoardHandler) HandleBoard(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid page", nil, err)
	}
	state := listing.ApplyPage(listing.ApplyQuery(listing.NewState(), c.Query("q")), page)

	out, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{Query: state.Query, Page: state.Page})
	if err != nil {
		return mapJobListUsecaseError(err)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view.Build(out, h.board, h.theme)); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
