package models

import (
	"time"
)

// Appointment statuses. Completed, cancelled and no_show are terminal.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Urgency levels. Informational triage tags; they do not reorder a queue.
const (
	UrgencyNormal    = "normal"
	UrgencyHigh      = "high"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

// Appointment model. Date is an ISO date (2006-01-02), Time one of the
// fixed half-hour slots. DoctorID is nil for "any available doctor".
type Appointment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID int64  `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  *int64 `gorm:"column:doctor_id;index:idx_doctor_slot" json:"doctor_id"`
	Date      string `gorm:"size:10;column:date;not null;index:idx_doctor_slot" json:"date"`
	Time      string `gorm:"size:5;column:time;not null;index:idx_doctor_slot" json:"time"`
	Status    string `gorm:"column:status;check:status IN ('scheduled', 'confirmed', 'completed', 'cancelled', 'no_show');not null" json:"status"`
	Urgency   string `gorm:"column:urgency;check:urgency IN ('normal', 'high', 'urgent', 'emergency');not null;default:normal" json:"urgency"`
	Reason    string `gorm:"type:text;column:reason;not null" json:"reason"`
	Notes     string `gorm:"type:text;column:notes" json:"notes"`

	AssignedAt         *time.Time `gorm:"column:assigned_at" json:"assigned_at"`
	ConfirmedAt        *time.Time `gorm:"column:confirmed_at" json:"confirmed_at"`
	RejectedAt         *time.Time `gorm:"column:rejected_at" json:"rejected_at"`
	RejectionReason    string     `gorm:"type:text;column:rejection_reason" json:"rejection_reason"`
	RescheduledAt      *time.Time `gorm:"column:rescheduled_at" json:"rescheduled_at"`
	RescheduleReason   string     `gorm:"type:text;column:reschedule_reason" json:"reschedule_reason"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at" json:"cancelled_at"`
	CancelledBy        *int64     `gorm:"column:cancelled_by" json:"cancelled_by"`
	CancellationReason string     `gorm:"type:text;column:cancellation_reason" json:"cancellation_reason"`
	CompletedAt        *time.Time `gorm:"column:completed_at" json:"completed_at"`

	HolidayOverride   bool `gorm:"column:holiday_override;default:false" json:"holiday_override"`
	NeedsReassignment bool `gorm:"column:needs_reassignment;default:false;index" json:"needs_reassignment"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient   User      `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Doctor    *User     `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// transitions is the full legal transition set. Anything absent is refused.
var transitions = map[string][]string{
	AppointmentScheduled: {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
}

// CanTransitionTo reports whether moving to the target status is legal from
// the current one. Terminal states have no outgoing transitions.
func (a *Appointment) CanTransitionTo(target string) bool {
	for _, next := range transitions[a.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the appointment can no longer be mutated.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// IsPending reports whether the appointment still occupies its slot.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentConfirmed
}

// AppointmentSlots is the fixed half-hour booking grid. Times outside it
// are refused regardless of schedules.
var AppointmentSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30",
}

// ValidSlot reports whether t is a member of the booking grid.
func ValidSlot(t string) bool {
	for _, slot := range AppointmentSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted,
		AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// ValidUrgency reports whether u is one of the known urgency levels.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyNormal, UrgencyHigh, UrgencyUrgent, UrgencyEmergency:
		return true
	}
	return false
}
