package models

import "time"

type Teacher struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	School    string    `json:"school"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTeacherRequest represents the request body for creating a teacher
type CreateTeacherRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	School  string `json:"school"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateTeacherRequest represents the request body for updating a teacher
type UpdateTeacherRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	School  string `json:"school"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
