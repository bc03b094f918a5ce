// internal/notify/notifier.go

// Package notify sends assessment-complete notifications over SES email
// and, for flagged sessions, SNS SMS.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"assessment-engine/internal/common/config"
	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

// Delivery statuses reported back to the caller.
const (
	StatusSent     = "sent"
	StatusDisabled = "disabled"
)

// Interfaces over the AWS clients for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Recipient is the contact surface for one scored session, resolved by the
// caller. Empty fields disable the corresponding channel.
type Recipient struct {
	Email string
	Phone string
}

// Receipt records what a Send actually delivered.
type Receipt struct {
	NotificationID string
	Status         string
	EmailSent      bool
	SMSSent        bool
	SentAt         string
}

type Notifier struct {
	cfg       config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

// NewNotifier wires the AWS clients from the ambient credential chain.
func NewNotifier(cfg config.NotificationConfig, log logger.Logger) (*Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Notifier{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewNotifierWithClients is the injection point for tests.
func NewNotifierWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *Notifier {
	return &Notifier{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// Send notifies the recipient that their result is ready. Email goes out
// whenever enabled and an address exists; SMS only when the channel is
// enabled and a phone number exists. Both channels disabled or absent is
// not an error.
func (n *Notifier) Send(ctx context.Context, recipient Recipient, result *models.AssessmentResult) (*Receipt, error) {
	receipt := &Receipt{
		NotificationID: uuid.New().String(),
		Status:         StatusDisabled,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	subject := "Your assessment results are ready"
	body := composeBody(result)

	if n.cfg.Email.Enabled && recipient.Email != "" {
		if err := n.sendEmail(ctx, recipient.Email, subject, body); err != nil {
			return nil, errors.NewNotificationFailedError("email", err)
		}
		receipt.EmailSent = true
	}

	if n.cfg.SMS.Enabled && recipient.Phone != "" {
		if err := n.sendSMS(ctx, recipient.Phone, smsBody(result)); err != nil {
			return nil, errors.NewNotificationFailedError("sms", err)
		}
		receipt.SMSSent = true
	}

	if receipt.EmailSent || receipt.SMSSent {
		receipt.Status = StatusSent
	}

	n.logger.Info("completion notification processed", map[string]interface{}{
		"sessionId": result.SessionID,
		"status":    receipt.Status,
		"emailSent": receipt.EmailSent,
		"smsSent":   receipt.SMSSent,
	})
	return receipt, nil
}

func composeBody(result *models.AssessmentResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your assessment has been scored.\n\n")
	fmt.Fprintf(&b, "Personality type: %s\n", result.Typology.Type)
	fmt.Fprintf(&b, "Learning style: %s\n", result.LearningStyle)
	if len(result.Strengths) > 0 {
		fmt.Fprintf(&b, "Top strengths: %s\n", strings.Join(result.Strengths, ", "))
	}
	if len(result.Recommendations) > 0 {
		fmt.Fprintf(&b, "Best career match: %s (fit %d/100)\n",
			result.Recommendations[0].Career.Title,
			result.Recommendations[0].FitScore)
	}
	return b.String()
}

func smsBody(result *models.AssessmentResult) string {
	if len(result.Recommendations) > 0 {
		return fmt.Sprintf("Assessment scored. Type %s, top match: %s.",
			result.Typology.Type, result.Recommendations[0].Career.Title)
	}
	return fmt.Sprintf("Assessment scored. Type %s.", result.Typology.Type)
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.cfg.Email.FromEmail),
	})
	return err
}

func (n *Notifier) sendSMS(ctx context.Context, to, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}
