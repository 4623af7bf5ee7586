package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line with module/action/correlation_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(correlationID, module, action, message string) {
	id := strings.TrimSpace(correlationID)
	log.Printf("[%s] action=%s correlation_id=%s msg=%s", strings.ToUpper(module), action, id, message)
}
