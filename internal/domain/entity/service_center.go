package entity

import (
	"time"
)

type ServiceCenter struct {
	ID             string    `json:"id" firestore:"id"`
	Title          string    `json:"title" firestore:"title"`
	Thumbnail      string    `json:"thumbnail,omitempty" firestore:"thumbnail,omitempty"`
	Address        string    `json:"address" firestore:"address"`
	Latitude       float64   `json:"latitude" firestore:"latitude"`
	Longitude      float64   `json:"longitude" firestore:"longitude"`
	Phone          string    `json:"phone" firestore:"phone"`
	Email          string    `json:"email" firestore:"email"`
	Rating         float64   `json:"rating" firestore:"rating"`
	OperatingHours []string  `json:"operating_hours" firestore:"operatingHours"`
	Services       []string  `json:"services" firestore:"services"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
