package service

import (
	"fmt"

	"rentacar/internal/repository"

	"github.com/sirupsen/logrus"
)

type JobService struct {
	repo repository.JobRepository
	log  *logrus.Logger
}

func NewJobService(repo repository.JobRepository, log *logrus.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

// ReturnOverdueBookings sweeps active bookings whose end date has passed,
// marks them returned and frees their vehicles. Keeps availability from
// drifting when nobody calls the return endpoint.
func (s *JobService) ReturnOverdueBookings() error {
	ids, err := s.repo.GetOverdueActiveBookingIDs()
	if err != nil {
		return fmt.Errorf("sweep: get overdue bookings: %w", err)
	}
	if len(ids) == 0 {
		s.log.Debug("sweep: no overdue active bookings")
		return nil
	}

	updated, err := s.repo.MarkReturned(ids)
	if err != nil {
		return fmt.Errorf("sweep: mark returned: %w", err)
	}
	s.log.WithFields(logrus.Fields{"count": updated, "ids": ids}).Info("sweep: overdue bookings returned")
	return nil
}
