package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "idx_payments_tenant_external_key" (SQLSTATE 23505)`), DuplicateKeyError},
		{"deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), LockError},
		{"serialization", errors.New("could not serialize access due to concurrent update"), LockError},
		{"timeout", errors.New("i/o timeout"), TransientError},
		{"dial", errors.New("dial tcp 127.0.0.1:5432: connect: no route"), ConnectionError},
		{"foreign key", errors.New(`violates foreign key constraint "fk_payment_transactions"`), ConstraintError},
		{"unknown", errors.New("syntax error at or near"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_IsDuplicateKeyOn(t *testing.T) {
	classifier := NewErrorClassifier()
	err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_payment_transactions_live_key" (SQLSTATE 23505)`)

	assert.True(t, classifier.IsDuplicateKeyOn(err, indexLiveTransactionKey))
	assert.False(t, classifier.IsDuplicateKeyOn(err, indexPaymentExternalKey))
	assert.False(t, classifier.IsDuplicateKeyOn(errors.New("connection refused"), indexLiveTransactionKey))
}

func TestDBError(t *testing.T) {
	err := dbError("get payment", errors.New("connection refused"))
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "get payment")

	err = dbError("get payment", fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, errs.ErrDatabaseConnection)
}
