package entity

import "time"

type EmailStatus struct {
	EmployeeID int       `json:"employee_id"`
	Name       string    `json:"name"`
	Key        string    `json:"-"`
	Recipient  string    `json:"recipient,omitempty"`
	Sent       bool      `json:"sent"`
	SentAt     time.Time `json:"sent_at,omitzero"`
	LastError  string    `json:"last_error,omitempty"`
}

func NewSentStatus(rec EmployeeRecord, recipient string, at time.Time) EmailStatus {
	return EmailStatus{
		EmployeeID: rec.ID,
		Name:       rec.Name,
		Key:        rec.Key,
		Recipient:  recipient,
		Sent:       true,
		SentAt:     at,
	}
}

func NewUnsentStatus(rec EmployeeRecord, recipient string, cause error) EmailStatus {
	s := EmailStatus{
		EmployeeID: rec.ID,
		Name:       rec.Name,
		Key:        rec.Key,
		Recipient:  recipient,
	}
	if cause != nil {
		s.LastError = cause.Error()
	}
	return s
}

type EmailStatusRepository interface {
	Get(employeeID int) (EmailStatus, bool)
	Put(status EmailStatus)
	Snapshot() map[int]EmailStatus
	// Retain drops every entry for which keep returns false and reports how many were removed.
	Retain(keep func(EmailStatus) bool) int
}
