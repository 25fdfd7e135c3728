package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/service"
)

func TestUserService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(newFakeUserRepo())

	created, err := svc.CreateUser(ctx, domain.User{Name: "Alice", Surname: "Smith"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)

	updated, err := svc.UpdateUser(ctx, created.ID, "Alicia", "Smythe")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "Smythe", updated.Surname)

	_, err = svc.UpdateUser(ctx, 999, "Nobody", "Nowhere")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteUser(ctx, created.ID), service.ErrUserNotFound)

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
