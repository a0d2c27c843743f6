package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	gormlogger "gorm.io/gorm/logger"

	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/payment-engine/mocks/port/core"
)

func TestExtractQueryType(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "payments"`:                       "SELECT",
		`  insert into payment_transactions (id) ...`:    "INSERT",
		`UPDATE "notifications" SET state = $1`:          "UPDATE",
		`DELETE FROM account_locks WHERE owner = $1`:     "DELETE",
		`SET TRANSACTION ISOLATION LEVEL READ COMMITTED`: "",
	}

	for sql, want := range tests {
		assert.Equal(t, want, extractQueryType(sql), sql)
	}
}

func TestExtractTableName(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "payments" WHERE id = $1`:                "PAYMENTS",
		`INSERT INTO "payment_transactions" ("id") VALUES ($1)`: "PAYMENT_TRANSACTIONS",
		`UPDATE "notifications" SET state = $1`:                 "NOTIFICATIONS",
		`SET TRANSACTION ISOLATION LEVEL READ COMMITTED`:        "",
	}

	for sql, want := range tests {
		assert.Equal(t, want, extractTableName(sql), sql)
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	query := func() (string, int64) { return `SELECT * FROM "payments"`, 1 }

	t.Run("Errors are logged at error level", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "PAYMENTS" && fields["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(core, faketime.NewFakeTimeProvider(begin), "info")
		l.Trace(context.Background(), begin, query, errors.New("boom"))
	})

	t.Run("Slow queries are logged as warnings", func(t *testing.T) {
		clock := faketime.NewFakeTimeProvider(begin)
		clock.Advance(time.Second)

		core := coremocks.NewMockLogger(t)
		core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(core, clock, "warn")
		l.Trace(context.Background(), begin, query, nil)
	})

	t.Run("Missing rows are not errors", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(core, faketime.NewFakeTimeProvider(begin), "info")
		l.Trace(context.Background(), begin, query, errors.New("record not found"))
	})

	t.Run("Silent logger logs nothing", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)

		l := NewDatabaseLogger(core, faketime.NewFakeTimeProvider(begin), "info").LogMode(gormlogger.Silent)
		l.Trace(context.Background(), begin, query, errors.New("boom"))
	})
}
