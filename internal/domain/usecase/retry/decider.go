package retry

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// Decider polls the retry policy plugins after a failed payment
type Decider struct {
	registry plugin.RetryPluginRegistry
	logger   coreport.Logger
}

// NewDecider creates a new Decider
func NewDecider(registry plugin.RetryPluginRegistry, logger coreport.Logger) *Decider {
	return &Decider{registry: registry, logger: logger}
}

// NextRetryDate returns when the transaction should be retried, or nil to abort
//
// A plugin that cannot be found or fails to answer abstains. The sequence goes on
// only if at least one plugin explicitly votes "not aborted"; the first of those
// plugins to return a date decides it.
func (d *Decider) NextRetryDate(ctx context.Context, pluginNames []string, transactionExternalKey string) *time.Time {
	if len(pluginNames) == 0 {
		pluginNames = d.registry.Names()
	}

	var voters []string
	policies := make(map[string]plugin.RetryPolicyPlugin, len(pluginNames))
	for _, name := range pluginNames {
		policy, err := d.registry.Get(name)
		if err != nil {
			d.abstain(name, transactionExternalKey, "lookup", err)
			continue
		}
		aborted, err := policy.IsRetryAborted(ctx, transactionExternalKey)
		if err != nil {
			d.abstain(name, transactionExternalKey, "is_retry_aborted", err)
			continue
		}
		if !aborted {
			voters = append(voters, name)
			policies[name] = policy
		}
	}

	if len(voters) == 0 {
		d.logger.Info("Retry aborted by every policy", map[string]any{
			"transaction_external_key": transactionExternalKey,
			"plugins":                  pluginNames,
		})
		return nil
	}

	for _, name := range voters {
		next, err := policies[name].GetNextRetryDate(ctx, transactionExternalKey)
		if err != nil {
			d.abstain(name, transactionExternalKey, "get_next_retry_date", err)
			continue
		}
		if next != nil {
			d.logger.Info("Retry scheduled", map[string]any{
				"transaction_external_key": transactionExternalKey,
				"plugin_name":              name,
				"next_retry_date":          next.Format(time.RFC3339),
			})
			return next
		}
	}

	d.logger.Info("No retry policy returned a retry date", map[string]any{
		"transaction_external_key": transactionExternalKey,
		"plugins":                  voters,
	})
	return nil
}

func (d *Decider) abstain(name, transactionExternalKey, call string, err error) {
	d.logger.Warn("Retry policy abstained", map[string]any{
		"plugin_name":              name,
		"transaction_external_key": transactionExternalKey,
		"call":                     call,
		"error":                    err.Error(),
	})
}
