package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
)

func TestPaymentMethodService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	service := NewPaymentMethodService(env.methods, env.accounts, env.plugins, env.clock, noopLogger())

	account, _ := env.addAccount(t, "EUR", "")

	t.Run("First method becomes the default", func(t *testing.T) {
		method, err := service.AddPaymentMethod(ctx, account.ID, "card-1", pluginadapter.ScriptedPluginName, nil, false)
		require.NoError(t, err)
		assert.True(t, method.IsActive)
		assert.Equal(t, "card-1", method.ExternalKey)

		stored, err := env.accounts.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.PaymentMethodID)
		assert.Equal(t, method.ID, *stored.PaymentMethodID)
	})

	t.Run("Second method keeps the default unless asked", func(t *testing.T) {
		before, err := env.accounts.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)

		_, err = service.AddPaymentMethod(ctx, account.ID, "card-2", pluginadapter.ScriptedPluginName, nil, false)
		require.NoError(t, err)

		after, err := env.accounts.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, *before.PaymentMethodID, *after.PaymentMethodID)

		methods, err := service.GetAccountPaymentMethods(ctx, account.ID)
		require.NoError(t, err)
		assert.Len(t, methods, 2)
	})

	t.Run("Unknown plugin is rejected", func(t *testing.T) {
		_, err := service.AddPaymentMethod(ctx, account.ID, "", "__NOPE__", nil, false)
		assert.ErrorIs(t, err, errs.ErrUnknownPlugin)
	})

	t.Run("Blank plugin name is rejected", func(t *testing.T) {
		_, err := service.AddPaymentMethod(ctx, account.ID, "", "  ", nil, false)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Default method needs explicit deletion", func(t *testing.T) {
		stored, err := env.accounts.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		defaultID := *stored.PaymentMethodID

		err = service.DeletePaymentMethod(ctx, account.ID, defaultID, false)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)

		require.NoError(t, service.DeletePaymentMethod(ctx, account.ID, defaultID, true))

		stored, err = env.accounts.GetAccountByID(ctx, account.ID)
		require.NoError(t, err)
		assert.False(t, stored.HasDefaultPaymentMethod())

		_, err = env.methods.GetByID(ctx, defaultID, false)
		assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
		inactive, err := env.methods.GetByID(ctx, defaultID, true)
		require.NoError(t, err)
		assert.False(t, inactive.IsActive)
	})

	t.Run("Method of another account", func(t *testing.T) {
		err := service.DeletePaymentMethod(ctx, account.ID, env.method.ID, true)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, err := service.GetAccountPaymentMethods(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestDirectProcessor_PaymentsKeepDeletedMethod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	service := NewPaymentMethodService(env.methods, env.accounts, env.plugins, env.clock, noopLogger())

	payment, err := env.processor.CreateAuthorization(ctx, env.request("20.00"), env.cc())
	require.NoError(t, err)

	require.NoError(t, service.DeletePaymentMethod(ctx, env.account.ID, env.method.ID, true))

	payment, err = env.processor.CreateCapture(ctx, env.followUp(payment, "20.00"), env.cc())
	require.NoError(t, err)
	assert.Equal(t, "CAPTURE_SUCCESS", payment.StateName)

	_, err = env.processor.CreateAuthorization(ctx, env.request("5.00"), env.cc())
	assert.ErrorIs(t, err, errs.ErrNoDefaultPaymentMethod)
}
