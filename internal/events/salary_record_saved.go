package events

import "time"

const SalaryRecordSavedTopic = "hr.salary.record.saved.v1"

type SalaryRecordSavedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	ProcessDate string    `json:"process_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
