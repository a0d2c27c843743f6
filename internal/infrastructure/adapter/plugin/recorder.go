package plugin

import (
	"sync"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// resultRecorder remembers every answer given per payment so GetPaymentInfo can replay it
type resultRecorder struct {
	mu      sync.RWMutex
	results map[uuid.UUID][]*entity.PluginResult
}

func newResultRecorder() *resultRecorder {
	return &resultRecorder{results: make(map[uuid.UUID][]*entity.PluginResult)}
}

func (r *resultRecorder) record(paymentID uuid.UUID, result *entity.PluginResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *result
	r.results[paymentID] = append(r.results[paymentID], &c)
}

func (r *resultRecorder) forPayment(paymentID uuid.UUID) []*entity.PluginResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recorded := r.results[paymentID]
	out := make([]*entity.PluginResult, 0, len(recorded))
	for _, res := range recorded {
		c := *res
		out = append(out, &c)
	}
	return out
}
