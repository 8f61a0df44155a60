package service

import (
	"context"
	"fmt"

	"condopark/internal/entities"
	"condopark/internal/repository"
	"condopark/internal/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// JobService runs periodic read-only reports over the ledger for the gate desk.
// It never changes a booking status; only guards do that.
type JobService struct {
	Repo  repository.BookingRepository
	clock Clock
}

func NewJobService(repo repository.BookingRepository, clock Clock) *JobService {
	return &JobService{Repo: repo, clock: clock}
}

// LapsedApprovals lists approved bookings whose end time has passed without a
// guard checking them in or out.
func (s *JobService) LapsedApprovals(ctx context.Context) ([]entities.Booking, error) {
	approved, err := s.Repo.ListByStatus(ctx, entities.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("cron job: failed to list approved bookings: %w", err)
	}
	now := s.clock()
	var lapsed []entities.Booking
	for _, b := range approved {
		if now.After(b.EndTime) {
			lapsed = append(lapsed, b)
		}
	}
	return lapsed, nil
}

// StalePending lists pending bookings whose start time has already passed.
func (s *JobService) StalePending(ctx context.Context) ([]entities.Booking, error) {
	pending, err := s.Repo.ListByStatus(ctx, entities.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("cron job: failed to list pending bookings: %w", err)
	}
	now := s.clock()
	var stale []entities.Booking
	for _, b := range pending {
		if now.After(b.StartTime) {
			stale = append(stale, b)
		}
	}
	return stale, nil
}

// Report logs both lists. It is the function scheduled by Schedule.
func (s *JobService) Report(ctx context.Context) error {
	lapsed, err := s.LapsedApprovals(ctx)
	if err != nil {
		return err
	}
	for _, b := range lapsed {
		utils.Logger.WithFields(logrus.Fields{
			"booking_id": b.ID,
			"slot_id":    b.SlotID,
			"end_time":   b.EndTime,
		}).Warn("Cron Job: approved booking ended without check-in/out")
	}

	stale, err := s.StalePending(ctx)
	if err != nil {
		return err
	}
	for _, b := range stale {
		utils.Logger.WithFields(logrus.Fields{
			"booking_id": b.ID,
			"slot_id":    b.SlotID,
			"start_time": b.StartTime,
		}).Warn("Cron Job: booking still pending after its start time")
	}

	utils.Logger.Infof("Cron Job: %d lapsed approvals, %d stale pending bookings", len(lapsed), len(stale))
	return nil
}

// Schedule registers Report on c under schedule (e.g. "@every 15m").
func (s *JobService) Schedule(c *cron.Cron, schedule string) (cron.EntryID, error) {
	return c.AddFunc(schedule, func() {
		if err := s.Report(context.Background()); err != nil {
			utils.Logger.Errorf("Cron Job failed: %v", err)
		}
	})
}
