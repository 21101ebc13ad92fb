// Package models holds the DTOs of the schedules service.
package models

import (
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// ScheduleResponse is the service-level view of a schedule.
type ScheduleResponse struct {
	ID           string    `json:"id"`
	ServiceType  string    `json:"serviceType"`
	VehiclePlate string    `json:"vehiclePlate"`
	SlotStart    time.Time `json:"slotStart"`
	Confirmation bool      `json:"confirmation"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ScheduleListResponse wraps a list of schedules.
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
	Total     int                 `json:"total"`
}

// UpdateScheduleRequest carries a partial update. Nil fields are left
// untouched. Updates are a direct pass-through: the admission rules do
// not run again here.
type UpdateScheduleRequest struct {
	ServiceType  *string    `json:"serviceType,omitempty"`
	VehiclePlate *string    `json:"vehiclePlate,omitempty"`
	SlotStart    *time.Time `json:"slotStart,omitempty"`
	Confirmation *bool      `json:"confirmation,omitempty"`
}

// FromDomainSchedule converts a domain schedule into the response DTO.
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           s.ID,
		ServiceType:  string(s.WashType),
		VehiclePlate: s.VehiclePlate,
		SlotStart:    s.SlotStart,
		Confirmation: s.Confirmation,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainScheduleList converts a list of domain schedules.
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	out := make([]*ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, FromDomainSchedule(s))
	}
	return &ScheduleListResponse{Schedules: out, Total: len(out)}
}

// ToDomainUpdate converts the request into a domain update value.
// Only enum well-formedness is validated.
func (r *UpdateScheduleRequest) ToDomainUpdate() (*domain.ScheduleUpdate, error) {
	update := &domain.ScheduleUpdate{
		VehiclePlate: r.VehiclePlate,
		Confirmation: r.Confirmation,
	}

	if r.ServiceType != nil {
		washType, err := domain.ParseWashType(*r.ServiceType)
		if err != nil {
			return nil, err
		}
		update.WashType = &washType
	}

	if r.SlotStart != nil {
		utc := r.SlotStart.UTC()
		update.SlotStart = &utc
	}

	return update, nil
}
