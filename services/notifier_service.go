// services/notifier_service.go
package services

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"crmtrack-backend/config"
	"crmtrack-backend/models"
)

// NotifierService texts the sales phone when a lead at or above the
// configured value threshold comes in.
type NotifierService struct {
	client   *twilio.RestClient
	from     string
	to       string
	minValue float64
	log      *zap.Logger
}

// NewNotifierService returns nil unless Twilio credentials and both
// phone numbers are configured; a nil notifier is a safe no-op.
func NewNotifierService(cfg config.Config, log *zap.Logger) *NotifierService {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" ||
		cfg.TwilioPhoneNumber == "" || cfg.LeadAlertPhone == "" {
		return nil
	}

	return &NotifierService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from:     cfg.TwilioPhoneNumber,
		to:       cfg.LeadAlertPhone,
		minValue: cfg.LeadAlertMinValue,
		log:      log,
	}
}

// LeadCreated sends the alert for one freshly created lead. Safe on a
// nil receiver so callers need no wiring check.
func (s *NotifierService) LeadCreated(lead models.Lead) {
	if s == nil || lead.Value < s.minValue {
		return
	}

	body := fmt.Sprintf("New lead: %s (%s), worth $%.0f via %s", lead.Name, lead.Company, lead.Value, lead.Source)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Warn("lead alert failed", zap.Int("leadId", lead.ID), zap.Error(err))
		return
	}
	if resp.Sid != nil {
		s.log.Info("lead alert sent", zap.Int("leadId", lead.ID), zap.String("sid", *resp.Sid))
	} else {
		s.log.Info("lead alert sent, no SID returned", zap.Int("leadId", lead.ID))
	}
}
