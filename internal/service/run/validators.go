package run

import "driver-service/internal/entities"

func isValidRunStatus(status entities.RunStatusType) bool {
	switch status {
	case entities.RunPending, entities.RunActive, entities.RunCompleted:
		return true
	default:
		return false
	}
}
