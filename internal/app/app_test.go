package app

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"job-routing/internal/config"
	"job-routing/internal/delivery/http/dto"
	"job-routing/internal/domain/job"
	"job-routing/internal/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		App:   config.AppConfig{AppName: "job-routing", Environment: "test", HTTPPort: "0"},
		Data:  config.DataConfig{Source: config.DataSourceEmbedded},
		Board: config.DefaultBoard(),
		Theme: config.DefaultTheme(),
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ps := make([]job.Posting, 0, 7)
	for i := 1; i <= 7; i++ {
		ps = append(ps, job.Posting{
			ID:          job.ID(fmt.Sprint(i)),
			Title:       fmt.Sprintf("J%d", i),
			Description: "Remote role",
			Skills:      []string{"Go", "SQL", "Docker", "Kubernetes", "gRPC", "Redis"},
		})
	}
	catalog, err := job.NewCatalog(ps)
	require.NoError(t, err)

	c, err := NewContainerWithCatalog(testConfig(), catalog, nil, nil)
	require.NoError(t, err)
	return New(c)
}

type jobsEnvelope struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Data    dto.JobListResponse `json:"data"`
}

func getJobs(t *testing.T, a *App, target string) (*http.Response, jobsEnvelope) {
	t.Helper()
	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env jobsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestJobsAPI_Pages(t *testing.T) {
	a := newTestApp(t)

	resp, env := getJobs(t, a, "/api/v1/jobs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, env.Data.Total)
	assert.Equal(t, 2, env.Data.PageCount)
	require.Len(t, env.Data.Jobs, 5)
	assert.Equal(t, "J1", env.Data.Jobs[0].Title)
	assert.Len(t, env.Data.Jobs[0].Skills, 4)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	_, env = getJobs(t, a, "/api/v1/jobs?page=2")
	require.Len(t, env.Data.Jobs, 2)
	assert.Equal(t, "J6", env.Data.Jobs[0].Title)
	assert.Equal(t, "J7", env.Data.Jobs[1].Title)
}

func TestJobsAPI_FilterAndOutOfRange(t *testing.T) {
	a := newTestApp(t)

	_, env := getJobs(t, a, "/api/v1/jobs?q=j3")
	require.Len(t, env.Data.Jobs, 1)
	assert.Equal(t, "J3", env.Data.Jobs[0].Title)
	assert.Equal(t, 1, env.Data.PageCount)

	resp, env := getJobs(t, a, "/api/v1/jobs?q=j3&page=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, env.Data.Jobs)
	assert.Empty(t, env.Data.Jobs)

	_, env = getJobs(t, a, "/api/v1/jobs?q=nothing-matches")
	assert.Equal(t, 0, env.Data.PageCount)
	assert.Empty(t, env.Data.Jobs)
}

func TestJobsAPI_HugePageIsEmpty(t *testing.T) {
	a := newTestApp(t)

	for _, page := range []int{math.MaxInt, math.MaxInt/5 + 2} {
		target := "/api/v1/jobs?page=" + strconv.Itoa(page)
		resp, env := getJobs(t, a, target)
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
		assert.Equal(t, page, env.Data.Page, target)
		assert.Equal(t, 2, env.Data.PageCount, target)
		assert.NotNil(t, env.Data.Jobs, target)
		assert.Empty(t, env.Data.Jobs, target)
	}
}

func TestJobsAPI_BadPage(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/api/v1/jobs?page=two", "/api/v1/jobs?page=0", "/api/v1/jobs?page=-3"} {
		resp, env := getJobs(t, a, target)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		assert.Equal(t, http.StatusBadRequest, env.Status, target)
	}
}

func TestBoard_RendersHTML(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(b)
	assert.Equal(t, 2, strings.Count(html, `class="card"`))
	assert.Equal(t, 1, strings.Count(html, `class="placeholder"`))
	assert.Contains(t, html, ">J6<")
	assert.NotContains(t, html, ">gRPC<")
}

func TestBoard_NegativePageClampsToFirst(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/?page=-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), ">J1<")
}

func TestBoard_HugePageIsEmpty(t *testing.T) {
	a := newTestApp(t)

	for _, page := range []int{math.MaxInt, math.MaxInt/5 + 2} {
		resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/?page="+strconv.Itoa(page), nil))
		require.NoError(t, err)

		b, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 0, strings.Count(string(b), `class="card"`))
	}
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Status int `json:"status"`
		Data   struct {
			Jobs     int    `json:"jobs"`
			Sessions int    `json:"sessions"`
			Cache    string `json:"cache"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, 7, env.Data.Jobs)
	assert.Equal(t, "disabled", env.Data.Cache)
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env response.SemanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}

func TestLoadCatalog_Embedded(t *testing.T) {
	catalog, err := LoadCatalog(t.Context(), testConfig())
	require.NoError(t, err)
	assert.Greater(t, catalog.Len(), 0)
}
