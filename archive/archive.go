// Package archive writes point-in-time snapshots of the in-memory
// dataset to a relational database. Export is one-way and explicit:
// nothing is ever read back, so the live dataset remains memory-only
// and dies with the process.
package archive

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crmtrack-backend/config"
	"crmtrack-backend/store"
)

// ArchivedCustomer is one customer row frozen at export time. EntityID
// is the in-memory identity; the surrogate key belongs to the archive.
type ArchivedCustomer struct {
	ID         uint   `gorm:"primaryKey"`
	BatchID    string `gorm:"index"`
	ExportedAt time.Time
	EntityID   int
	Name       string
	Email      string
	Company    string
	Phone      string
	Status     string
}

type ArchivedLead struct {
	ID         uint   `gorm:"primaryKey"`
	BatchID    string `gorm:"index"`
	ExportedAt time.Time
	EntityID   int
	Name       string
	Email      string
	Company    string
	Value      float64
	Source     string
	Status     string
}

type ArchivedContact struct {
	ID          uint   `gorm:"primaryKey"`
	BatchID     string `gorm:"index"`
	ExportedAt  time.Time
	EntityID    int
	CustomerID  int
	ContactType string
	Notes       string
	CreatedAt   time.Time
}

type Archiver struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the archive database named by the config, or returns
// nil when no driver is configured.
func Open(cfg config.Config, log *zap.Logger) (*Archiver, error) {
	var dialector gorm.Dialector
	switch cfg.ArchiveDriver {
	case "":
		return nil, nil
	case "postgres":
		dialector = postgres.Open(cfg.ArchiveDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.ArchiveDSN)
	default:
		return nil, fmt.Errorf("unknown archive driver %q", cfg.ArchiveDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	if err := db.AutoMigrate(&ArchivedCustomer{}, &ArchivedLead{}, &ArchivedContact{}); err != nil {
		return nil, fmt.Errorf("migrate archive schema: %w", err)
	}

	return &Archiver{db: db, log: log}, nil
}

// ExportResult reports what one export batch wrote.
type ExportResult struct {
	BatchID   string `json:"batchId"`
	Customers int    `json:"customers"`
	Leads     int    `json:"leads"`
	Contacts  int    `json:"contacts"`
}

// Export writes the full current dataset as one batch. Batches are
// append-only; repeated exports coexist under distinct batch ids.
func (a *Archiver) Export(s *store.Stores) (ExportResult, error) {
	batchID := uuid.NewString()
	exportedAt := time.Now()

	customers := s.Customers.List()
	leads := s.Leads.List()
	contacts := s.Contacts.List()

	customerRows := make([]ArchivedCustomer, 0, len(customers))
	for _, c := range customers {
		customerRows = append(customerRows, ArchivedCustomer{
			BatchID:    batchID,
			ExportedAt: exportedAt,
			EntityID:   c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Company:    c.Company,
			Phone:      c.Phone,
			Status:     string(c.Status),
		})
	}

	leadRows := make([]ArchivedLead, 0, len(leads))
	for _, l := range leads {
		leadRows = append(leadRows, ArchivedLead{
			BatchID:    batchID,
			ExportedAt: exportedAt,
			EntityID:   l.ID,
			Name:       l.Name,
			Email:      l.Email,
			Company:    l.Company,
			Value:      l.Value,
			Source:     l.Source,
			Status:     string(l.Status),
		})
	}

	contactRows := make([]ArchivedContact, 0, len(contacts))
	for _, ct := range contacts {
		contactRows = append(contactRows, ArchivedContact{
			BatchID:     batchID,
			ExportedAt:  exportedAt,
			EntityID:    ct.ID,
			CustomerID:  ct.CustomerID,
			ContactType: string(ct.ContactType),
			Notes:       ct.Notes,
			CreatedAt:   ct.CreatedAt,
		})
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if len(customerRows) > 0 {
			if err := tx.Create(&customerRows).Error; err != nil {
				return err
			}
		}
		if len(leadRows) > 0 {
			if err := tx.Create(&leadRows).Error; err != nil {
				return err
			}
		}
		if len(contactRows) > 0 {
			if err := tx.Create(&contactRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ExportResult{}, fmt.Errorf("write archive batch: %w", err)
	}

	result := ExportResult{
		BatchID:   batchID,
		Customers: len(customerRows),
		Leads:     len(leadRows),
		Contacts:  len(contactRows),
	}
	a.log.Info("snapshot exported",
		zap.String("batchId", result.BatchID),
		zap.Int("customers", result.Customers),
		zap.Int("leads", result.Leads),
		zap.Int("contacts", result.Contacts),
	)
	return result, nil
}
