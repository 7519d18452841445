package run_status

import (
	"driver-service/internal/entities"
)

// RunStatusFactory выводит агрегатный статус рана из счётчиков стопов:
// completed тогда и только тогда, когда все стопы терминальны; active - как
// только хотя бы один стоп вышел из pending.
type RunStatusFactory struct{}

func New() *RunStatusFactory {
	return &RunStatusFactory{}
}

func (f *RunStatusFactory) Derive(counts entities.RunStopCounts) entities.RunStatusType {
	switch {
	case counts.Total == 0:
		return entities.RunPending
	case counts.Terminal() == counts.Total:
		return entities.RunCompleted
	case counts.Pending == counts.Total:
		return entities.RunPending
	default:
		return entities.RunActive
	}
}
