package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/dkryuchkov/broker-api/internal/api/handler/v1"
	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/service"
)

type stubUserService struct {
	createUser func(ctx context.Context, user domain.User) (domain.User, error)
	listUsers  func(ctx context.Context) ([]domain.User, error)
	updateUser func(ctx context.Context, id uint, name, surname string) (domain.User, error)
	deleteUser func(ctx context.Context, id uint) error
}

func (s *stubUserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	return s.createUser(ctx, user)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsers(ctx)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uint, name, surname string) (domain.User, error) {
	return s.updateUser(ctx, id, name, surname)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id uint) error {
	return s.deleteUser(ctx, id)
}

func newUserRouter(svc v1.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := v1.NewUserHandler(svc)
	router.POST("/users", handler.HandleCreateUser)
	router.GET("/users", handler.HandleListUsers)
	router.PUT("/users", handler.HandleUpdateUser)
	router.DELETE("/users/:userID", handler.HandleDeleteUser)

	return router
}

func TestHandleCreateUser(t *testing.T) {
	t.Run("registers a user", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			createUser: func(_ context.Context, user domain.User) (domain.User, error) {
				user.ID = 1

				return user, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"name":"Alice","surname":"Smith"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "Smith", got.Surname)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			createUser: func(_ context.Context, _ domain.User) (domain.User, error) {
				t.Fatal("service must not be called")

				return domain.User{}, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleUpdateUser(t *testing.T) {
	t.Run("updates name and surname", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			updateUser: func(_ context.Context, id uint, name, surname string) (domain.User, error) {
				return domain.User{ID: id, Name: name, Surname: surname}, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/users?user_id=1",
			strings.NewReader(`{"name":"Alicia","surname":"Smythe"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Alicia", got.Name)
	})

	t.Run("maps a missing user to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			updateUser: func(_ context.Context, _ uint, _, _ string) (domain.User, error) {
				return domain.User{}, service.ErrUserNotFound
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/users?user_id=999",
			strings.NewReader(`{"name":"Nobody","surname":"Nowhere"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleDeleteUser(t *testing.T) {
	t.Run("confirms deletion", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			deleteUser: func(_ context.Context, id uint) error {
				assert.Equal(t, uint(1), id)

				return nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"user deleted"}`, w.Body.String())
	})

	t.Run("maps a missing user to 404", func(t *testing.T) {
		router := newUserRouter(&stubUserService{
			deleteUser: func(_ context.Context, _ uint) error {
				return service.ErrUserNotFound
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/users/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
