package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/notification"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/worker"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/email"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/sms"
)

// Notifier fans workflow events out over SMS and email. Senders that are not
// configured are skipped, so callers fire and forget.
type Notifier interface {
	TimesheetSubmitted(ctx context.Context, w worker.Worker, docketNumber, weekStarting string, totalHours float64)
	TimesheetDecided(ctx context.Context, w worker.Worker, docketNumber, decision, reason string)
	EntrySubmitted(ctx context.Context, w worker.Worker, docketNumber, entryDate string, totalHours float64)
	EntryDecided(ctx context.Context, w worker.Worker, docketNumber, entryDate, decision, reason string)
}

type NotifierImpl struct {
	settingsRepo   notification.Repository
	smsSender      sms.Sender
	emailService   email.EmailService
	approvalsInbox string
}

func NewNotifier(
	settingsRepo notification.Repository,
	smsSender sms.Sender,
	emailService email.EmailService,
	approvalsInbox string,
) Notifier {
	return &NotifierImpl{
		settingsRepo:   settingsRepo,
		smsSender:      smsSender,
		emailService:   emailService,
		approvalsInbox: approvalsInbox,
	}
}

// TimesheetSubmitted implements Notifier.
func (n *NotifierImpl) TimesheetSubmitted(ctx context.Context, w worker.Worker, docketNumber, weekStarting string, totalHours float64) {
	if n.approvalsInbox == "" {
		return
	}

	if err := n.emailService.SendTimesheetSubmitted(n.approvalsInbox, w.FullName(), docketNumber, weekStarting, totalHours); err != nil {
		slog.Error("Submitted-timesheet email failed", "docket_number", docketNumber, "error", err)
	}
}

// TimesheetDecided implements Notifier.
func (n *NotifierImpl) TimesheetDecided(ctx context.Context, w worker.Worker, docketNumber, decision, reason string) {
	n.notifyBySMS(ctx, w, docketNumber, decision, reason)

	if err := n.emailService.SendTimesheetDecision(w.Email, w.FullName(), docketNumber, decision, reason); err != nil {
		slog.Error("Decision email failed", "docket_number", docketNumber, "error", err)
	}
}

// EntrySubmitted implements Notifier.
func (n *NotifierImpl) EntrySubmitted(ctx context.Context, w worker.Worker, docketNumber, entryDate string, totalHours float64) {
	if n.approvalsInbox == "" {
		return
	}

	if err := n.emailService.SendEntrySubmitted(n.approvalsInbox, w.FullName(), docketNumber, entryDate, totalHours); err != nil {
		slog.Error("Submitted-entry email failed", "docket_number", docketNumber, "entry_date", entryDate, "error", err)
	}
}

// EntryDecided implements Notifier.
func (n *NotifierImpl) EntryDecided(ctx context.Context, w worker.Worker, docketNumber, entryDate, decision, reason string) {
	n.notifyEntryBySMS(ctx, w, docketNumber, entryDate, decision, reason)

	if err := n.emailService.SendEntryDecision(w.Email, w.FullName(), docketNumber, entryDate, decision, reason); err != nil {
		slog.Error("Entry decision email failed", "docket_number", docketNumber, "entry_date", entryDate, "error", err)
	}
}

func (n *NotifierImpl) notifyBySMS(ctx context.Context, w worker.Worker, docketNumber, decision, reason string) {
	var body string
	switch decision {
	case "approved":
		body = sms.TimesheetApprovedBody(w.FirstName, docketNumber)
	case "rejected":
		body = sms.TimesheetRejectedBody(w.FirstName, docketNumber, reason)
	default:
		return
	}

	n.sendSMS(ctx, w, docketNumber, body)
}

func (n *NotifierImpl) notifyEntryBySMS(ctx context.Context, w worker.Worker, docketNumber, entryDate, decision, reason string) {
	var body string
	switch decision {
	case "approved":
		body = sms.EntryApprovedBody(w.FirstName, docketNumber, entryDate)
	case "rejected":
		body = sms.EntryRejectedBody(w.FirstName, docketNumber, entryDate, reason)
	default:
		return
	}

	n.sendSMS(ctx, w, docketNumber, body)
}

func (n *NotifierImpl) sendSMS(ctx context.Context, w worker.Worker, docketNumber, body string) {
	if w.PhoneNumber == nil {
		return
	}

	settings, err := n.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Notification settings lookup failed", "error", err)
		return
	}
	if !settings.SMSEnabled {
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	if err := n.smsSender.Send(sendCtx, *w.PhoneNumber, body); err != nil {
		slog.Error("Decision SMS failed", "docket_number", docketNumber, "error", err)
	}
}
