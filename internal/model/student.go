package model

import "time"

// Student represents one roster entry. RollNo is the immutable business key.
type Student struct {
	ID        int       `json:"id"`
	RollNo    string    `json:"roll_no"`
	Name      string    `json:"name"`
	ClassName string    `json:"class_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for adding a student to the roster.
type CreateStudentRequest struct {
	RollNo    string  `json:"roll_no" binding:"required,min=1,max=10"`
	Name      string  `json:"name" binding:"required,min=2,max=100"`
	ClassName string  `json:"class_name" binding:"required,min=1,max=20"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,min=5,max=15"`
}

// UpdateStudentRequest is the payload for updating roster fields.
// Omitted fields keep their current value; the roll number never changes.
type UpdateStudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	ClassName *string `json:"class_name" binding:"omitempty,min=1,max=20"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,min=5,max=15"`
}
