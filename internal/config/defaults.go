package config

import "time"

// Default values for optional configuration parameters.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultStoreAddr = "localhost:6379"
	DefaultStoreDB   = 0

	// DefaultTicketTTL is how long an agent can still reply to a forwarded
	// message and have it reach the original user (7 days).
	DefaultTicketTTL = 604800 * time.Second

	DefaultLanguage = "en_US"

	DefaultForwardTimeout = 30 * time.Second
)

// DefaultSchedulerTasks enables the built-in periodic tasks. The schedule
// format includes a seconds field.
var DefaultSchedulerTasks = map[string]TaskConfig{
	"store_health": {Enabled: true, Schedule: "0 */5 * * * *"},
}
