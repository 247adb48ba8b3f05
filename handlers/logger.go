package handlers

import (
	"raphtravel/utils"

	"go.uber.org/zap"
)

// getLogger retrieves the shared Zap logger for handler-level logging.
func getLogger() *zap.Logger {
	return utils.GetLogger()
}
