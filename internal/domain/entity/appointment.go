package entity

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "Booked"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

type Appointment struct {
	ID        string            `json:"id" firestore:"id"`
	Date      time.Time         `json:"date" firestore:"date"`
	Status    AppointmentStatus `json:"status" firestore:"status"`
	CreatorID string            `json:"creator_id" firestore:"creator"`
	CenterID  string            `json:"center_id" firestore:"centerId"`
	Services  []string          `json:"services,omitempty" firestore:"services,omitempty"`
	CreatedAt time.Time         `json:"created_at" firestore:"createdAt"`
}

// VisitedServiceCenter is the profile-screen projection: a service center
// merged with the date and status of one specific appointment at it. A user
// who booked the same center twice gets two entries.
type VisitedServiceCenter struct {
	ServiceCenter
	AppointmentID     string            `json:"appointment_id"`
	AppointmentDate   time.Time         `json:"appointment_date"`
	AppointmentStatus AppointmentStatus `json:"appointment_status"`
}
