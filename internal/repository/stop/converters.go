package stop

import (
	"driver-service/internal/entities"
)

func ToDomain(s *StopDB) *entities.Stop {
	if s == nil {
		return nil
	}

	stop := &entities.Stop{
		ID:        s.ID,
		RunID:     s.RunID,
		OrderID:   s.OrderID,
		Seq:       s.Seq,
		Status:    entities.StopStatusType(s.Status),
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
	}

	if s.FailureReason != nil {
		stop.FailureReason = entities.FailureReasonType(*s.FailureReason)
	}
	if s.Notes != nil {
		stop.Notes = *s.Notes
	}

	return stop
}

func ToClaimDomain(c *StopClaimDB) *entities.StopClaim {
	if c == nil {
		return nil
	}

	return &entities.StopClaim{
		Stop:     *ToDomain(&c.Stop),
		DriverID: c.DriverID,
	}
}
