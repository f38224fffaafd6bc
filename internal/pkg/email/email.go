package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendTimesheetSubmitted(to, workerName, docketNumber, weekStarting string, totalHours float64) error
	SendTimesheetDecision(to, workerName, docketNumber, decision string, reason string) error
	SendEntrySubmitted(to, workerName, docketNumber, entryDate string, totalHours float64) error
	SendEntryDecision(to, workerName, docketNumber, entryDate, decision string, reason string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type submittedEmailData struct {
	WorkerName   string
	DocketNumber string
	WeekStarting string
	TotalHours   float64
}

// SendTimesheetSubmitted notifies the approvals inbox that a timesheet is
// awaiting review.
func (s *emailServiceImpl) SendTimesheetSubmitted(to, workerName, docketNumber, weekStarting string, totalHours float64) error {
	data := submittedEmailData{
		WorkerName:   workerName,
		DocketNumber: docketNumber,
		WeekStarting: weekStarting,
		TotalHours:   totalHours,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "timesheet_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Timesheet #%s submitted by %s", docketNumber, workerName), body.String())
}

type decisionEmailData struct {
	WorkerName   string
	DocketNumber string
	Decision     string
	Reason       string
}

// SendTimesheetDecision notifies the worker that their timesheet was approved
// or rejected.
func (s *emailServiceImpl) SendTimesheetDecision(to, workerName, docketNumber, decision string, reason string) error {
	data := decisionEmailData{
		WorkerName:   workerName,
		DocketNumber: docketNumber,
		Decision:     decision,
		Reason:       reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "timesheet_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Timesheet #%s %s", docketNumber, decision), body.String())
}

type entrySubmittedEmailData struct {
	WorkerName   string
	DocketNumber string
	EntryDate    string
	TotalHours   float64
}

// SendEntrySubmitted notifies the approvals inbox that a single day's entry is
// awaiting review.
func (s *emailServiceImpl) SendEntrySubmitted(to, workerName, docketNumber, entryDate string, totalHours float64) error {
	data := entrySubmittedEmailData{
		WorkerName:   workerName,
		DocketNumber: docketNumber,
		EntryDate:    entryDate,
		TotalHours:   totalHours,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "entry_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Entry for %s submitted by %s (timesheet #%s)", entryDate, workerName, docketNumber), body.String())
}

type entryDecisionEmailData struct {
	WorkerName   string
	DocketNumber string
	EntryDate    string
	Decision     string
	Reason       string
}

// SendEntryDecision notifies the worker that a single day's entry was approved
// or rejected.
func (s *emailServiceImpl) SendEntryDecision(to, workerName, docketNumber, entryDate, decision string, reason string) error {
	data := entryDecisionEmailData{
		WorkerName:   workerName,
		DocketNumber: docketNumber,
		EntryDate:    entryDate,
		Decision:     decision,
		Reason:       reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "entry_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Entry for %s %s (timesheet #%s)", entryDate, decision, docketNumber), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
