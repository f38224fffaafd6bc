package sms

import "fmt"

// Message bodies kept short; carriers split anything over 160 characters.

func ClockInReminderBody(firstName string) string {
	return fmt.Sprintf("Hi %s, don't forget to clock in when you start work today.", firstName)
}

func ClockOutReminderBody(firstName string) string {
	return fmt.Sprintf("Hi %s, remember to clock out when you finish work today.", firstName)
}

func TimesheetApprovedBody(firstName, docketNumber string) string {
	return fmt.Sprintf("Hi %s, your timesheet #%s has been approved.", firstName, docketNumber)
}

func TimesheetRejectedBody(firstName, docketNumber string, reason string) string {
	if reason != "" {
		return fmt.Sprintf("Hi %s, your timesheet #%s was rejected: %s. Please review and resubmit.", firstName, docketNumber, reason)
	}
	return fmt.Sprintf("Hi %s, your timesheet #%s was rejected. Please review and resubmit.", firstName, docketNumber)
}

func EntryApprovedBody(firstName, docketNumber, entryDate string) string {
	return fmt.Sprintf("Hi %s, your %s entry on timesheet #%s has been approved.", firstName, entryDate, docketNumber)
}

func EntryRejectedBody(firstName, docketNumber, entryDate string, reason string) string {
	if reason != "" {
		return fmt.Sprintf("Hi %s, your %s entry on timesheet #%s was rejected: %s. Please review and resubmit.", firstName, entryDate, docketNumber, reason)
	}
	return fmt.Sprintf("Hi %s, your %s entry on timesheet #%s was rejected. Please review and resubmit.", firstName, entryDate, docketNumber)
}
