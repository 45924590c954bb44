package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wordlimit_backend/internal/config"
	"wordlimit_backend/internal/middleware"
	"wordlimit_backend/internal/model"
	"wordlimit_backend/internal/repository"
	"wordlimit_backend/internal/service"
	"wordlimit_backend/internal/util"
	"wordlimit_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.AssignPluginConfig{},
		&model.QuizAttempt{},
		&model.QuizSlot{},
		&model.QuestionAttempt{},
		&model.QuestionEssayOptions{},
	))

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.Quiz.LimitSource = config.QuizLimitSourceAttemptLayout

	svc := service.NewWordLimitService(
		repository.NewAssignConfigRepository(db),
		repository.NewQuizAttemptRepository(db),
		repository.NewQuizSlotRepository(db),
		cfg,
		nil,
	)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	api.GET("/wordlimit", NewWordLimitController(svc).Resolve)

	return router, db
}

func authedRequest(t *testing.T, router *gin.Engine, userID uint, query string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := util.GenerateJWT(userID, "student", "student@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/wordlimit?"+query, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataJSON(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return string(resp.Data)
}

func TestResolveEndpointAssignment(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, db.Create(&model.AssignPluginConfig{
		AssignmentID: 10,
		Plugin:       model.PluginOnlineText,
		Subtype:      model.SubtypeAssignSubmission,
		Name:         model.ConfigWordLimitEnabled,
		Value:        "1",
	}).Error)
	require.NoError(t, db.Create(&model.AssignPluginConfig{
		AssignmentID: 10,
		Plugin:       model.PluginOnlineText,
		Subtype:      model.SubtypeAssignSubmission,
		Name:         model.ConfigWordLimit,
		Value:        "250",
	}).Error)

	w := authedRequest(t, router, 7, "path=/mod/assign/view.php&action=editsubmission&instance=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[250]", dataJSON(t, w.Body.Bytes()))
}

func TestResolveEndpointNotApplicable(t *testing.T) {
	router, _ := newTestRouter(t)

	w := authedRequest(t, router, 7, "path=/mod/forum/view.php&instance=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", dataJSON(t, w.Body.Bytes()))
}

func TestResolveEndpointQuizPage(t *testing.T) {
	router, db := newTestRouter(t)

	limit := 100
	require.NoError(t, db.Create(&model.QuizAttempt{
		ID:       40,
		QuizID:   5,
		UserID:   7,
		Attempt:  1,
		UniqueID: 900,
		Layout:   "1,0",
		State:    "inprogress",
	}).Error)
	require.NoError(t, db.Create(&model.QuestionAttempt{QuestionUsageID: 900, Slot: 1, QuestionID: 101}).Error)
	require.NoError(t, db.Create(&model.QuestionEssayOptions{QuestionID: 101, MaxWordLimit: &limit}).Error)

	w := authedRequest(t, router, 7, "path=/mod/quiz/attempt.php&pagetype=mod-quiz-attempt&instance=5&attempt=40&page=0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[100]", dataJSON(t, w.Body.Bytes()))

	// 其他用户的令牌看不到这条答题记录
	w = authedRequest(t, router, 8, "path=/mod/quiz/attempt.php&pagetype=mod-quiz-attempt&instance=5&attempt=40&page=0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", dataJSON(t, w.Body.Bytes()))
}

func TestResolveEndpointMissingConfig(t *testing.T) {
	router, _ := newTestRouter(t)

	w := authedRequest(t, router, 7, "path=/mod/assign/view.php&action=editsubmission&instance=10")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveEndpointRequiresPath(t *testing.T) {
	router, _ := newTestRouter(t)

	w := authedRequest(t, router, 7, "instance=10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveEndpointRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/wordlimit?path=/mod/assign/view.php", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/wordlimit?path=/mod/assign/view.php", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
