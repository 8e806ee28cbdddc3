// services/digest_service.go
package services

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"crmtrack-backend/stats"
	"crmtrack-backend/store"
)

// DigestService logs a scheduled pipeline summary so operators get a
// daily pulse without opening the dashboard. Read-only over the stores.
type DigestService struct {
	stores *store.Stores
	log    *zap.Logger
	cron   *cron.Cron
}

func NewDigestService(stores *store.Stores, log *zap.Logger) *DigestService {
	return &DigestService{stores: stores, log: log}
}

type PipelineDigest struct {
	TotalCustomers  int
	ActiveCustomers int
	TotalLeads      int
	PipelineValue   float64
	TotalContacts   int
}

// Build computes the digest from current store snapshots.
func (s *DigestService) Build() PipelineDigest {
	customers := s.stores.Customers.List()
	leads := s.stores.Leads.List()

	return PipelineDigest{
		TotalCustomers:  stats.TotalCustomers(customers),
		ActiveCustomers: stats.ActiveCustomers(customers),
		TotalLeads:      stats.TotalLeads(leads),
		PipelineValue:   stats.PipelineValue(leads),
		TotalContacts:   s.stores.Contacts.Count(),
	}
}

// Run logs one digest immediately.
func (s *DigestService) Run() {
	d := s.Build()
	s.log.Info("pipeline digest",
		zap.Int("totalCustomers", d.TotalCustomers),
		zap.Int("activeCustomers", d.ActiveCustomers),
		zap.Int("totalLeads", d.TotalLeads),
		zap.Float64("pipelineValue", d.PipelineValue),
		zap.Int("totalContacts", d.TotalContacts),
	)
}

// Start schedules Run on the given cron expression.
func (s *DigestService) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.Run); err != nil {
		return fmt.Errorf("bad digest schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	s.log.Info("digest scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (s *DigestService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}
}
