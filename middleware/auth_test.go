package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	userRepo "raphtravel/database/repository/user"
	"raphtravel/middleware"
	"raphtravel/models"
	"raphtravel/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(u *models.User) error { return errors.New("not implemented") }
func (s *stubUserRepo) GetByID(id string) (*models.User, error) {
	return s.GetByIDWithProjection(id, nil)
}
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	usr, ok := s.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return usr, nil
}
func (s *stubUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	return errors.New("not implemented")
}

var _ userRepo.UserRepository = (*stubUserRepo)(nil)

var testSecret = []byte("middleware-secret")

func protectedRouter(repo userRepo.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.JWTAuthUserMiddleware(testSecret, repo, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestMissingTokenRejected(t *testing.T) {
	r := protectedRouter(&stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenResolvesCaller(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "traveler@example.com"},
	}}
	r := protectedRouter(repo)

	token, err := utils.GenerateToken(testSecret, "user-1", "traveler@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestExpiredTokenRejected(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1"},
	}}
	r := protectedRouter(repo)

	token, err := utils.GenerateToken(testSecret, "user-1", "traveler@example.com", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	r := protectedRouter(&stubUserRepo{users: map[string]*models.User{}})

	token, err := utils.GenerateToken(testSecret, "ghost", "ghost@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgedTokenRejected(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1"},
	}}
	r := protectedRouter(repo)

	forged, err := utils.GenerateToken([]byte("some-other-secret"), "user-1", "traveler@example.com", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
