package dto

import "job-routing/internal/usecase"

type JobResponse struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type JobListResponse struct {
	Query     string        `json:"query"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	PageCount int           `json:"page_count"`
	Total     int           `json:"total"`
	Jobs      []JobResponse `json:"jobs"`
}

func NewJobListResponse(p usecase.JobListPage) JobListResponse {
	out := JobListResponse{
		Query:     p.Query,
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
		Total:     p.Total,
		Jobs:      make([]JobResponse, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		skills := it.Skills
		if skills == nil {
			skills = []string{}
		}
		out.Jobs = append(out.Jobs, JobResponse{
			JobID:       it.JobID,
			Title:       it.Title,
			Description: it.Description,
			Skills:      skills,
		})
	}
	return out
}
