package usecase

import (
	"context"

	"job-routing/internal/config"
	"job-routing/internal/domain/job"
	"job-routing/internal/domain/listing"

	"go.uber.org/zap"
)

type JobListParams struct {
	Query string
	// Page is 1-based; 0 means the first page.
	Page int
}

type JobListItem struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type JobListPage struct {
	Query     string        `json:"query"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
	Items     []JobListItem `json:"items"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobListPage, error)
}

type JobList struct {
	catalog   *job.Catalog
	pageSize  int
	maxSkills int
	cache     SearchCache
	logger    *zap.Logger
}

func NewJobListUsecase(catalog *job.Catalog, board config.BoardConfig, cache SearchCache, logger *zap.Logger) *JobList {
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := board.PageSize
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &JobList{
		catalog:   catalog,
		pageSize:  pageSize,
		maxSkills: board.MaxSkills,
		cache:     cache,
		logger:    logger.Named("jobs"),
	}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobListPage, error) {
	if u == nil || u.catalog == nil {
		return JobListPage{}, ErrInternal
	}
	page := params.Page
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return JobListPage{}, ErrInvalidInput
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = BoardCacheKey(u.catalog.Fingerprint(), params.Query, page, u.pageSize, u.maxSkills)
		var cached JobListPage
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug("cache hit", zap.String("key", cacheKey))
			// The key folds case; report the caller's own spelling.
			cached.Query = params.Query
			return cached, nil
		}
		u.logger.Debug("cache miss", zap.String("key", cacheKey))
	}

	state := listing.ApplyPage(listing.ApplyQuery(listing.NewState(), params.Query), page)
	computed := listing.Compute(u.catalog.All(), state, u.pageSize)

	out := JobListPage{
		Query:     computed.Query,
		Page:      computed.Page,
		PageSize:  computed.PageSize,
		PageCount: computed.PageCount,
		Total:     computed.Total,
		Items:     make([]JobListItem, 0, len(computed.Items)),
	}
	for _, p := range computed.Items {
		out.Items = append(out.Items, JobListItem{
			JobID:       p.ID.String(),
			Title:       p.Title,
			Description: p.Description,
			Skills:      p.VisibleSkills(u.maxSkills),
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Debug("cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return out, nil
}
