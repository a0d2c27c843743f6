package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	pluginmocks "github.com/amirhossein-jamali/payment-engine/mocks/port/plugin"
)

func TestDecider_NextRetryDate(t *testing.T) {
	tests := []struct {
		name     string
		policies map[string]*stubPolicy
		names    []string
		expected *time.Time
	}{
		{
			name:     "no policy registered",
			expected: nil,
		},
		{
			name: "every policy aborts",
			policies: map[string]*stubPolicy{
				"a": {aborted: true, next: at(time.Hour)},
				"b": {aborted: true},
			},
			expected: nil,
		},
		{
			name: "one policy keeps the sequence alive",
			policies: map[string]*stubPolicy{
				"a": {aborted: true},
				"b": {aborted: false, next: at(2 * time.Hour)},
			},
			expected: at(2 * time.Hour),
		},
		{
			name: "unavailable policy abstains",
			policies: map[string]*stubPolicy{
				"a": {abortedErr: errs.ErrPluginUnavailable},
				"b": {next: at(3 * time.Hour)},
			},
			expected: at(3 * time.Hour),
		},
		{
			name: "only abstentions abort",
			policies: map[string]*stubPolicy{
				"a": {abortedErr: errs.ErrPluginUnavailable},
			},
			expected: nil,
		},
		{
			name: "unknown plugin name abstains",
			policies: map[string]*stubPolicy{
				"a": {next: at(time.Hour)},
			},
			names:    []string{"missing", "a"},
			expected: at(time.Hour),
		},
		{
			name: "continue without a date aborts",
			policies: map[string]*stubPolicy{
				"a": {},
			},
			expected: nil,
		},
		{
			name: "first date in order wins",
			policies: map[string]*stubPolicy{
				"a": {},
				"b": {nextErr: errs.ErrPluginUnavailable},
				"c": {next: at(5 * time.Hour)},
				"d": {next: at(time.Hour)},
			},
			names:    []string{"a", "b", "c", "d"},
			expected: at(5 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := pluginadapter.NewRetryPluginRegistry()
			for name, p := range tt.policies {
				registry.Register(name, p)
			}
			decider := NewDecider(registry, logger.NewNoopLogger())

			next := decider.NextRetryDate(context.Background(), tt.names, "tx-key")

			if tt.expected == nil {
				assert.Nil(t, next)
				return
			}
			if assert.NotNil(t, next) {
				assert.True(t, tt.expected.Equal(*next), "expected %v, got %v", tt.expected, next)
			}
		})
	}
}

func TestDecider_AbortingPoliciesAreNotAskedForADate(t *testing.T) {
	aborting := pluginmocks.NewMockRetryPolicyPlugin(t)
	aborting.EXPECT().IsRetryAborted(mock.Anything, "tx-key").Return(true, nil).Once()

	live := pluginmocks.NewMockRetryPolicyPlugin(t)
	live.EXPECT().IsRetryAborted(mock.Anything, "tx-key").Return(false, nil).Once()
	live.EXPECT().GetNextRetryDate(mock.Anything, "tx-key").Return(at(time.Hour), nil).Once()

	registry := pluginadapter.NewRetryPluginRegistry()
	registry.Register("aborting", aborting)
	registry.Register("live", live)

	next := NewDecider(registry, logger.NewNoopLogger()).NextRetryDate(context.Background(), nil, "tx-key")

	assert.Equal(t, at(time.Hour), next)
	aborting.AssertNotCalled(t, "GetNextRetryDate", mock.Anything, mock.Anything)
}
