package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"UniClinic/models"
	"UniClinic/utils"
)

// Lifecycle errors, mapped to 4xx responses by the handlers.
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInvalidStatusValue  = errors.New("invalid status value")
	ErrInvalidPayload      = errors.New("invalid appointment data")
	ErrProfileIncomplete   = errors.New("profile incomplete: booking requires a complete medical card")
	ErrPendingExists       = errors.New("a pending appointment already exists for this patient")
	ErrNotOwner            = errors.New("appointment belongs to another patient")
)

// AppointmentStore is the persistence surface the lifecycle engine needs.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, appointment *models.Appointment) error
	UpdateSlot(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]models.Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]models.Appointment, error)
	ListNeedingReassignment(ctx context.Context) ([]models.Appointment, error)
	ListUnassigned(ctx context.Context) ([]models.Appointment, error)
	CountPending(ctx context.Context, patientID int64) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// ProfileStore provides the server-side profile-completeness gate.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

// AvailabilityChecker validates candidate slots.
type AvailabilityChecker interface {
	CheckBookable(ctx context.Context, date, timeSlot string, doctorID *int64, holidayOverride bool) error
}

// Notifier persists a typed notification row for a user.
type Notifier interface {
	Notify(ctx context.Context, userID int64, notificationType, title, message string) error
}

// AppointmentService enforces the appointment state machine and its booking
// invariants.
type AppointmentService struct {
	store        AppointmentStore
	profiles     ProfileStore
	availability AvailabilityChecker
	notifier     Notifier
	now          func() time.Time
}

func NewAppointmentService(store AppointmentStore, profiles ProfileStore, availability AvailabilityChecker, notifier Notifier) *AppointmentService {
	return &AppointmentService{
		store:        store,
		profiles:     profiles,
		availability: availability,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Create books a new appointment. byStaff relaxes the patient-side gates
// (profile completeness, single pending appointment) for walk-in entries
// created at the desk, and permits the holiday override flag.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment, byStaff bool) error {
	if appointment.Urgency == "" {
		appointment.Urgency = models.UrgencyNormal
	}
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if !byStaff {
		appointment.HolidayOverride = false

		profile, err := s.profiles.GetByUserID(ctx, appointment.PatientID)
		if err != nil {
			return err
		}
		if profile == nil || !profile.IsComplete() {
			return ErrProfileIncomplete
		}

		pending, err := s.store.CountPending(ctx, appointment.PatientID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return ErrPendingExists
		}
	}

	if err := s.availability.CheckBookable(ctx, appointment.Date, appointment.Time, appointment.DoctorID, appointment.HolidayOverride); err != nil {
		return err
	}

	appointment.Status = models.AppointmentScheduled
	if appointment.DoctorID != nil {
		now := s.now()
		appointment.AssignedAt = &now
	}

	if err := s.store.Create(ctx, appointment); err != nil {
		return err
	}

	if appointment.DoctorID != nil {
		s.notify(ctx, *appointment.DoctorID, models.NotifyAppointmentAssigned,
			"New appointment request",
			fmt.Sprintf("An appointment was requested for %s at %s.", appointment.Date, appointment.Time))
	}
	return nil
}

// AssignDoctor attaches a doctor to a pending appointment, clearing any
// reassignment flag raised by a cancellation.
func (s *AppointmentService) AssignDoctor(ctx context.Context, id uint, doctorID int64) (*models.Appointment, error) {
	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	if err := s.availability.CheckBookable(ctx, appointment.Date, appointment.Time, &doctorID, appointment.HolidayOverride); err != nil {
		return nil, err
	}

	now := s.now()
	appointment.DoctorID = &doctorID
	appointment.AssignedAt = &now
	appointment.NeedsReassignment = false
	if err := s.store.UpdateSlot(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(ctx, doctorID, models.NotifyAppointmentAssigned,
		"Appointment assigned to you",
		fmt.Sprintf("You were assigned an appointment on %s at %s.", appointment.Date, appointment.Time))
	s.notify(ctx, appointment.PatientID, models.NotifyAppointmentAssigned,
		"Doctor assigned",
		fmt.Sprintf("A doctor was assigned to your appointment on %s at %s.", appointment.Date, appointment.Time))
	return appointment, nil
}

// Confirm moves scheduled to confirmed and stamps confirmed_at.
func (s *AppointmentService) Confirm(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(models.AppointmentConfirmed) {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	appointment.Status = models.AppointmentConfirmed
	appointment.ConfirmedAt = &now
	if err := s.store.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(ctx, appointment.PatientID, models.NotifyAppointmentConfirmed,
		"Appointment confirmed",
		fmt.Sprintf("Your appointment on %s at %s has been confirmed.", appointment.Date, appointment.Time))
	return appointment, nil
}

// Reschedule moves a non-terminal appointment to a new slot, re-validating
// the same availability rules as creation. Patients may only move their
// own appointments; byStaff lifts that restriction.
func (s *AppointmentService) Reschedule(ctx context.Context, id uint, newDate, newTime, reason string, actorID int64, byStaff bool) (*models.Appointment, error) {
	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !byStaff && appointment.PatientID != actorID {
		return nil, ErrNotOwner
	}
	if appointment.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	if err := s.availability.CheckBookable(ctx, newDate, newTime, appointment.DoctorID, appointment.HolidayOverride); err != nil {
		return nil, err
	}

	now := s.now()
	appointment.Date = newDate
	appointment.Time = newTime
	appointment.RescheduledAt = &now
	appointment.RescheduleReason = reason
	if err := s.store.UpdateSlot(ctx, appointment); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("The appointment was moved to %s at %s.", newDate, newTime)
	if appointment.DoctorID != nil && *appointment.DoctorID != actorID {
		s.notify(ctx, *appointment.DoctorID, models.NotifyAppointmentRescheduled, "Appointment rescheduled", message)
	}
	if appointment.PatientID != actorID {
		s.notify(ctx, appointment.PatientID, models.NotifyAppointmentRescheduled, "Appointment rescheduled", message)
	}
	return appointment, nil
}

// Cancel moves any non-terminal appointment to cancelled. When a doctor had
// been attached the appointment is flagged for staff reassignment review.
// Patients may only cancel their own appointments.
func (s *AppointmentService) Cancel(ctx context.Context, id uint, cancelledBy int64, reason string, byStaff bool) (*models.Appointment, error) {
	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !byStaff && appointment.PatientID != cancelledBy {
		return nil, ErrNotOwner
	}
	if !appointment.CanTransitionTo(models.AppointmentCancelled) {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	appointment.Status = models.AppointmentCancelled
	appointment.CancelledAt = &now
	appointment.CancelledBy = &cancelledBy
	appointment.CancellationReason = reason
	if appointment.DoctorID != nil {
		appointment.NeedsReassignment = true
	}
	if err := s.store.Update(ctx, appointment); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("The appointment on %s at %s was cancelled.", appointment.Date, appointment.Time)
	if appointment.DoctorID != nil && *appointment.DoctorID != cancelledBy {
		s.notify(ctx, *appointment.DoctorID, models.NotifyAppointmentCancelled, "Appointment cancelled", message)
	}
	if appointment.PatientID != cancelledBy {
		s.notify(ctx, appointment.PatientID, models.NotifyAppointmentCancelled, "Appointment cancelled", message)
	}
	return appointment, nil
}

// Reject is the staff-side refusal of a pending request: scheduled to
// cancelled with a rejection stamp, distinct from a patient cancellation.
func (s *AppointmentService) Reject(ctx context.Context, id uint, reason string) (*models.Appointment, error) {
	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status != models.AppointmentScheduled {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	appointment.Status = models.AppointmentCancelled
	appointment.RejectedAt = &now
	appointment.RejectionReason = reason
	if err := s.store.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(ctx, appointment.PatientID, models.NotifyAppointmentRejected,
		"Appointment request rejected",
		fmt.Sprintf("Your appointment request for %s at %s was rejected.", appointment.Date, appointment.Time))
	return appointment, nil
}

// UpdateStatus handles the doctor/staff terminal markers only: completed
// and no_show. Confirmation and cancellation have their own endpoints and
// stamps; routing them through here would skip those.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uint, target string) (*models.Appointment, error) {
	if !models.ValidStatus(target) {
		return nil, ErrInvalidStatusValue
	}
	if target != models.AppointmentCompleted && target != models.AppointmentNoShow {
		return nil, ErrInvalidTransition
	}

	appointment, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	appointment.Status = target
	if target == models.AppointmentCompleted {
		appointment.CompletedAt = &now
	}
	if err := s.store.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.store.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.store.GetAll(ctx)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return s.store.ListByPatient(ctx, patientID)
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return s.store.ListByDoctor(ctx, doctorID)
}

func (s *AppointmentService) ListByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	return s.store.ListByStatus(ctx, status)
}

func (s *AppointmentService) ListNeedingReassignment(ctx context.Context) ([]models.Appointment, error) {
	return s.store.ListNeedingReassignment(ctx)
}

func (s *AppointmentService) ListUnassigned(ctx context.Context) ([]models.Appointment, error) {
	return s.store.ListUnassigned(ctx)
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}

func (s *AppointmentService) mustGet(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// notify persists the row best-effort; a failed notification never fails
// the lifecycle action that produced it.
func (s *AppointmentService) notify(ctx context.Context, userID int64, notificationType, title, message string) {
	if err := s.notifier.Notify(ctx, userID, notificationType, title, message); err != nil {
		log.Printf("Failed to create notification: %v", err)
	}
}
