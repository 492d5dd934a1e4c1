package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/handlers"
	"github.com/YSWikcramatantri/Official-Website/internal/middleware"
	"github.com/YSWikcramatantri/Official-Website/internal/models"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *services.SettingsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.School{},
		&models.Participant{},
		&models.Question{},
		&models.QuizSubmission{},
		&models.SystemSettings{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	settingsService := services.NewSettingsService(db)
	registrationService := services.NewRegistrationService(db, settingsService, services.NewCodeGenerator())
	quizService := services.NewQuizService(db, settingsService)
	adminService := services.NewAdminService(db)
	authService, err := services.NewAuthService("test-secret", "hunter2", nil, time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	quizHandler := handlers.NewQuizHandler(quizService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/settings", settingsHandler.GetSettings)
	api.POST("/participants", registrationHandler.RegisterSolo)
	api.POST("/schools/register", registrationHandler.RegisterSchool)
	api.POST("/participants/verify", quizHandler.Verify)
	api.GET("/questions", quizHandler.GetQuestions)
	api.POST("/quiz-submissions", quizHandler.Submit)
	api.POST("/admin/login", authHandler.Login)
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(authService))
	admin.GET("/stats", adminHandler.GetStats)
	admin.PUT("/settings", settingsHandler.UpdateSettings)

	return r, db, settingsService
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSoloEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/participants", gin.H{"name": "Ava"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var p models.Participant
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(p.Passcode) != models.PasscodeLength {
		t.Fatalf("expected %d-char passcode, got %q", models.PasscodeLength, p.Passcode)
	}
}

func TestRegisterSoloClosedReturns403(t *testing.T) {
	r, _, settings := newTestRouter(t)
	if _, err := settings.Update(services.SettingsInput{SoloRegistrationOpen: false, SchoolRegistrationOpen: true, QuizActive: true}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/participants", gin.H{"name": "Ava"}, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRegisterSoloMissingNameReturns400(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/participants", gin.H{"email": "ava@example.com"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSchoolRegisterItemizedDetails(t *testing.T) {
	r, _, _ := newTestRouter(t)

	members := make([]gin.H, 0, models.TeamSize)
	for _, subject := range models.Subjects {
		members = append(members, gin.H{"name": "M " + subject, "subject": subject, "is_leader": true})
	}
	w := doJSON(t, r, http.MethodPost, "/api/schools/register", gin.H{"school_name": "Lincoln High", "members": members}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp handlers.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Details) == 0 {
		t.Fatal("expected itemized validation details")
	}
}

func TestVerifyUnknownPasscodeReturns404(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/participants/verify", gin.H{"passcode": "ZZZZZZ"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestQuestionsRedactCorrectAnswer(t *testing.T) {
	r, db, _ := newTestRouter(t)

	q := models.Question{
		Text:          "Which planet has rings?",
		Options:       map[string]interface{}{"A": "Mars", "B": "Saturn", "C": "Venus", "D": "Mercury"},
		CorrectAnswer: "B",
		TimeLimit:     30,
		Marks:         1,
		Mode:          models.QuestionModeSolo,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/participants", gin.H{"name": "Ava"}, nil)
	var p models.Participant
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode participant: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/questions?passcode="+p.Passcode, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if bytes.Contains(w.Body.Bytes(), []byte("correct_answer")) {
		t.Fatalf("correct answer leaked: %s", w.Body.String())
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{"password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{"password": "hunter2"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 login, got %d: %s", w.Code, w.Body.String())
	}
	var login handlers.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+login.Token)
	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, header)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d: %s", w.Code, w.Body.String())
	}
}
