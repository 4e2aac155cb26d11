package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	LogMsgPublishFailed       = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded      = "Successfully published event after retry"
	LogMsgRetryFailed         = "Retry failed"
	LogMsgDeadLetterOpenFail  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFail = "Failed to write to dead letter file"
	LogMsgDeadLetterWritten   = "Event written to dead letter queue"
	LogMsgShutdownTimeout     = "Resilient publisher shutdown timed out"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
