package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the student record
	Name        string    `json:"name" db:"name" example:"Ada Lovelace"`                   // Student's full name
	Email       string    `json:"email" db:"email" example:"ada@example.com"`              // Student's email address, unique across all students
	Department  string    `json:"department" db:"department" example:"CS"`                 // Department the student belongs to
	Year        int       `json:"year" db:"year" example:"3"`                              // Academic year (1-4)
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"1234567890"`      // 10-digit phone number
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Set once at creation
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Refreshed on every successful mutation
}
