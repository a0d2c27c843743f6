package retry

import (
	_ "embed"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
)

//go:embed retry_states.yaml
var retryStatesYAML []byte

var stateMachineConfig = statemachine.MustLoad(retryStatesYAML)

// StateMachineConfig returns the retry graph
func StateMachineConfig() *statemachine.Config {
	return stateMachineConfig
}

// OperationRetry is the only operation of the retry graph
const OperationRetry = "RETRY"

// QueueName is the notification queue carrying scheduled retries
const QueueName = "payment-retry"

// Event is the payload of a scheduled retry notification
type Event struct {
	AttemptID   string   `json:"attemptId"`
	PluginNames []string `json:"retryPolicyPluginNames"`
}
