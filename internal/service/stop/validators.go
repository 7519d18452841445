package stop

import "driver-service/internal/entities"

func isTerminalTarget(status entities.StopStatusType) bool {
	switch status {
	case entities.StopDelivered, entities.StopFailed:
		return true
	default:
		return false
	}
}

func isValidFailureReason(reason entities.FailureReasonType) bool {
	switch reason {
	case entities.ReasonNotHome,
		entities.ReasonWrongAddress,
		entities.ReasonRefused,
		entities.ReasonDamaged,
		entities.ReasonAccessIssue,
		entities.ReasonOther:
		return true
	default:
		return false
	}
}
