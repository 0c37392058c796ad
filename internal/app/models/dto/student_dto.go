package dto

// StudentRequest represents student create/update data.
// Field constraints are enforced at the boundary before any service call.
type StudentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Ada Lovelace"`
	Email       string `json:"email" binding:"required,email,max=100" example:"ada@example.com"`
	Department  string `json:"department" binding:"required,max=50" example:"CS"`
	Year        int    `json:"year" binding:"required,min=1,max=4" example:"3"`
	PhoneNumber string `json:"phoneNumber" binding:"required,len=10,numeric" example:"1234567890"`
}

// StudentResponse represents the API-facing view of a student.
// Same field set as the stored entity minus the timestamps.
type StudentResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Ada Lovelace"`
	Email       string `json:"email" example:"ada@example.com"`
	Department  string `json:"department" example:"CS"`
	Year        int    `json:"year" example:"3"`
	PhoneNumber string `json:"phoneNumber" example:"1234567890"`
}

// StudentListResponse represents a paged list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// DepartmentCountResponse represents a per-department student count
type DepartmentCountResponse struct {
	Department string `json:"department" example:"CS"`
	Count      int64  `json:"count" example:"42"`
}
