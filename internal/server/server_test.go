package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"truth-or-dare/internal/config"
	"truth-or-dare/internal/db"
	"truth-or-dare/internal/game"
	"truth-or-dare/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	srv       *Server
	conn      *gorm.DB
	questions *db.QuestionStore
	settings  *db.SettingsStore
	events    *db.EventStore
	metrics   *metrics.Metrics
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	conn, err := db.Open(db.Options{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() { _ = db.Close(conn) })

	env := testEnv{
		conn:      conn,
		questions: db.NewQuestionStore(conn),
		settings:  db.NewSettingsStore(conn),
		events:    db.NewEventStore(conn),
		metrics:   metrics.New(),
	}
	env.srv = New(Deps{
		Questions: env.questions,
		Settings:  env.settings,
		Events:    env.events,
		Metrics:   env.metrics,
	}, nil)
	return env
}

func (e testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (e testEnv) addQuestions(t *testing.T, guildID *int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := e.questions.Insert(context.Background(), game.Question{
			GuildID: guildID,
			Prompt:  "prompt " + uuid.NewString()[:8],
			Type:    game.TypeTruth,
			Rating:  game.RatingPG,
		})
		require.NoError(t, err)
	}
}

func guild(id int64) *int64 { return &id }

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.metrics.Interaction("command")

	rec := env.get(t, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `truthordare_interactions_total{kind="command"} 1`)
}

func TestCatalogPage(t *testing.T) {
	env := newTestEnv(t)
	env.addQuestions(t, nil, 12)
	env.addQuestions(t, guild(5), 1)

	rec := env.get(t, "/guilds/5/questions")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Page 1/2")
	assert.Equal(t, game.PageSize, strings.Count(body, "<li>"))
	assert.Contains(t, body, `href="/guilds/5/questions?page=2&amp;scope=DEFAULT"`)

	rec = env.get(t, "/guilds/5/questions?page=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page 1/2")

	rec = env.get(t, "/guilds/5/questions?page=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page 2/2")
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "<li>"))
}

func TestCatalogCustomScope(t *testing.T) {
	env := newTestEnv(t)
	env.addQuestions(t, nil, 3)

	rec := env.get(t, "/guilds/5/questions?scope=CUSTOM")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), game.EmptyCatalogMessage)

	env.addQuestions(t, guild(5), 2)
	rec = env.get(t, "/guilds/5/questions?scope=CUSTOM")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "UID: "))
}

func TestCatalogRejectsBadQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/guilds/5/questions?scope=EVERYTHING")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"scope must be DEFAULT or CUSTOM"}`, rec.Body.String())

	rec = env.get(t, "/guilds/abc/questions")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.settings.UpsertRating(context.Background(), 8, game.PolicyAll))

	rec := env.get(t, "/guilds/8/settings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"guild_id":8,"rating":"ALL","admin_only":false}`, rec.Body.String())

	rec = env.get(t, "/guilds/9/settings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"guild_id":9,"rating":"PG","admin_only":false}`, rec.Body.String())
}

func TestEventsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.events.Record(ctx, 3, "rating_set", map[string]string{"rating": "PG-13"}))
	require.NoError(t, env.events.Record(ctx, 3, "question_added", map[string]string{"question_uid": "abc"}))
	require.NoError(t, env.events.Record(ctx, 4, "rating_set", map[string]string{"rating": "PG"}))

	rec := env.get(t, "/guilds/3/events?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Events []struct {
			Type    string            `json:"type"`
			Payload map[string]string `json:"payload"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "question_added", body.Events[0].Type)
	assert.Equal(t, "abc", body.Events[0].Payload["question_uid"])

	rec = env.get(t, "/guilds/3/events?limit=500")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"limit must be 100 or fewer"}`, rec.Body.String())
}

func TestOptionalRoutesDisabled(t *testing.T) {
	srv := New(Deps{Questions: db.NewQuestionStore(nil)}, nil)
	req := httptest.NewRequest(http.MethodGet, "/guilds/1/events", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.srv.Run(ctx, "127.0.0.1:0") }()

	cancel()
	require.NoError(t, <-done)
}
