package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "orgassess/docs"
	"orgassess/internal/metrics"
	"orgassess/internal/model"
	"orgassess/internal/scoring"
	"orgassess/internal/service"
	"orgassess/internal/transport/ws"
)

type memRepo struct {
	mu   sync.Mutex
	byID map[string]*model.Assessment
}

func (r *memRepo) Create(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = a
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memRepo) ListByOrganization(_ context.Context, orgID string, _ int64) ([]model.AssessmentSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.AssessmentSummary{}
	for _, a := range r.byID {
		if a.OrganizationID == orgID {
			out = append(out, a.Summary())
		}
	}
	return out, nil
}

func (r *memRepo) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	list, _ := r.ListByOrganization(ctx, orgID, 0)
	return int64(len(list)), nil
}

type noCache struct{}

func (noCache) Get(context.Context, string) (*model.Assessment, error) { return nil, nil }
func (noCache) Set(context.Context, *model.Assessment) error           { return nil }

type memBenchmarks struct {
	mu     sync.Mutex
	scores []int
}

func (b *memBenchmarks) Record(_ context.Context, _ string, _ string, score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scores = append(b.scores, score)
	return nil
}

func (b *memBenchmarks) Rank(_ context.Context, _ string, score int) (int64, int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var below int64
	for _, s := range b.scores {
		if s < score {
			below++
		}
	}
	return below, int64(len(b.scores)), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	benchmarks := &memBenchmarks{}
	assessments := service.NewAssessmentService(
		&memRepo{byID: map[string]*model.Assessment{}}, noCache{}, benchmarks,
		scoring.NewSuite(), metrics.New(reg),
	)
	hub := ws.NewHub()
	assessments.SetBroadcaster(hub)

	srv := httptest.NewServer(NewRouter(&Container{
		AuthService:       service.NewAuthService("admin", "pw", "secret"),
		AssessmentService: assessments,
		ReportService:     service.NewReportService(assessments, benchmarks),
		WSHub:             hub,
		Gatherer:          reg,
		AllowedOrigins:    "https://dash.example.com",
	}))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, orgID string) string {
	t.Helper()
	body, _ := json.Marshal(model.LoginRequest{Username: "admin", Password: "pw", OrganizationID: orgID})
	resp, err := http.Post(srv.URL+"/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out model.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func call(t *testing.T, method, url, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

var submission = model.SubmitAssessmentRequest{
	Tier:             "enterprise-transformation",
	OrganizationType: "healthcare",
	Responses: []scoring.AssessmentResponse{
		{QuestionID: "q1", Value: 2, Section: "Governance", Tags: []string{"STRUCTURE"}},
		{QuestionID: "q2", Value: 4, Section: "Leadership", Tags: []string{"LEADERSHIP"}},
	},
}

func TestAssessmentLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "org-1")

	resp, data := call(t, http.MethodPost, srv.URL+"/v1/assessments", token, submission)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	var created model.Assessment
	require.NoError(t, json.Unmarshal(data, &created))
	require.NotNil(t, created.Result)
	assert.NotNil(t, created.Result.HOCI)

	resp, data = call(t, http.MethodGet, srv.URL+"/v1/assessments", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []model.AssessmentSummary
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Len(t, list, 1)

	resp, _ = call(t, http.MethodGet, srv.URL+"/v1/assessments/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = call(t, http.MethodGet, srv.URL+"/v1/assessments/"+created.ID+"/benchmark", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bench model.Benchmark
	require.NoError(t, json.Unmarshal(data, &bench))
	assert.Equal(t, int64(1), bench.PeerCount)

	other := login(t, srv, "org-2")
	resp, _ = call(t, http.MethodGet, srv.URL+"/v1/assessments/"+created.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, http.MethodGet, srv.URL+"/v1/assessments/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitValidation(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "org-1")

	resp, _ := call(t, http.MethodPost, srv.URL+"/v1/assessments", token, model.SubmitAssessmentRequest{Tier: "monthly-subscription"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	bad := submission
	bad.Tier = "platinum"
	resp, _ = call(t, http.MethodPost, srv.URL+"/v1/assessments", token, bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, http.MethodPost, srv.URL+"/v1/assessments", "", submission)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAnalyzeRestrictsToTier(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "org-1")

	req := submission
	req.Tier = "monthly-subscription"
	resp, data := call(t, http.MethodPost, srv.URL+"/v1/analyze", token, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotNil(t, got["crf"])
	assert.Nil(t, got["lei"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := call(t, http.MethodPost, srv.URL+"/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "x", OrganizationID: "o"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTierCatalogue(t *testing.T) {
	srv := newTestServer(t)

	resp, data := call(t, http.MethodGet, srv.URL+"/v1/tiers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &views))
	assert.Len(t, views, 5)

	resp, data = call(t, http.MethodGet, srv.URL+"/v1/tiers/monthly-subscription?organizationType=healthcare", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, "Monthly Platform Access", view["label"])
	assert.NotEmpty(t, view["industrySections"])

	resp, data = call(t, http.MethodGet, srv.URL+"/v1/tiers/express-diagnostic", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &view))
	assert.NotContains(t, view, "configuration")

	resp, _ = call(t, http.MethodGet, srv.URL+"/v1/tiers/platinum", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOperationalEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, data := call(t, http.MethodGet, srv.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(data))

	resp, data = call(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "orgassess_scoring_analysis_duration_seconds")

	resp, data = call(t, http.MethodGet, srv.URL+"/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "Organizational Assessment API")

	resp, _ = call(t, http.MethodOptions, srv.URL+"/v1/assessments", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://dash.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDashboardReceivesCompletedAnalysis(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "org-1")
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/orgs/org-1?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, ws.MsgConnected, msg.Type)

	resp, _ := call(t, http.MethodPost, srv.URL+"/v1/assessments", token, submission)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, ws.MsgAnalysisCompleted, msg.Type)
	var summary model.AssessmentSummary
	require.NoError(t, json.Unmarshal(msg.Payload, &summary))
	assert.Equal(t, "healthcare", summary.OrganizationType)
}

func TestDashboardRejectsOtherOrganization(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "org-1")
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/orgs/org-2?token=" + token

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
