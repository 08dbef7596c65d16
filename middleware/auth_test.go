package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/models"
	"tracker/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := store.New(db)
	require.NoError(t, s.Migrate())
	return s
}

func TestAuthRedirectsWithoutToken(t *testing.T) {
	s := openTestStore(t)
	SetJWTSecret("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	rec := httptest.NewRecorder()
	Auth(s)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuthClearsInvalidToken(t *testing.T) {
	s := openTestStore(t)
	SetJWTSecret("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})

	rec := httptest.NewRecorder()
	Auth(s)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthPutsUserOnContext(t *testing.T) {
	s := openTestStore(t)
	SetJWTSecret("test-secret")
	require.NoError(t, s.SeedDemoUsers())

	user, err := s.GetUserByUsername("ada")
	require.NoError(t, err)
	require.NotNil(t, user)

	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	rec := httptest.NewRecorder()
	Auth(s)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}
