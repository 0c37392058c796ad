package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/app/models/dto"
	"github.com/placement/studentms/internal/pkg/apperrors"
	"github.com/placement/studentms/internal/pkg/helpers"
)

// StudentStore is the persistence contract the student service depends on
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailExistsExcept(ctx context.Context, email string, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByDepartment(ctx context.Context, department string) ([]*models.Student, error)
	GetByYear(ctx context.Context, year int) ([]*models.Student, error)
	Search(ctx context.Context, term string) ([]*models.Student, error)
	GetPaged(ctx context.Context, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error)
	SearchPaged(ctx context.Context, term string, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error)
	GetDistinctDepartments(ctx context.Context) ([]string, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
}

// DefaultSortField is used when a paged request names no sort field.
const DefaultSortField = "id"

// studentSortColumns maps API sort fields to database columns. Sorting by a
// field outside this map is a caller error, not a silent fallback.
var studentSortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"email":       "email",
	"department":  "department",
	"year":        "year",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"phoneNumber": "phone_number",
}

// StudentService handles student record operations. It exclusively owns the
// translation between the stored entity and its API-facing view.
type StudentService struct {
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// CreateStudent persists a new student after checking email uniqueness.
// The store's unique constraint remains the authoritative guard; the probe
// here is a fast-path rejection with a structured duplicate signal.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	s.logger.Info().Str("email", req.Email).Msg("Creating new student")

	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := toStudent(req)
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student created")
	return toStudentResponse(student), nil
}

// GetStudentByID retrieves a student view by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// GetStudentByEmail retrieves a student view by exact email match
func (s *StudentService) GetStudentByEmail(ctx context.Context, email string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// GetAllStudents retrieves views for every student
func (s *StudentService) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

// UpdateStudent overwrites the mutable fields of an existing student.
// When the email changes, another student must not already own the new value.
// Identifier and createdAt are immutable; updatedAt is refreshed by the store.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	s.logger.Info().Int64("studentID", id).Msg("Updating student")

	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Email != req.Email {
		taken, err := s.studentRepo.EmailExistsExcept(ctx, req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Department = req.Department
	existing.Year = req.Year
	existing.PhoneNumber = req.PhoneNumber

	if err := s.studentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return toStudentResponse(existing), nil
}

// DeleteStudent removes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	s.logger.Info().Int64("studentID", id).Msg("Deleting student")

	exists, err := s.studentRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	return s.studentRepo.Delete(ctx, id)
}

// SearchStudents finds students whose name or department contains the keyword,
// case-insensitively. A blank keyword returns the full collection.
func (s *StudentService) SearchStudents(ctx context.Context, keyword string) ([]dto.StudentResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.GetAllStudents(ctx)
	}

	students, err := s.studentRepo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

// GetStudentsByDepartment retrieves students in a department; an unmatched
// department yields an empty list, not an error.
func (s *StudentService) GetStudentsByDepartment(ctx context.Context, department string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

// GetStudentsByYear retrieves students in an academic year; an unmatched year
// yields an empty list, not an error.
func (s *StudentService) GetStudentsByYear(ctx context.Context, year int) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return toStudentResponses(students), nil
}

// GetStudentsPaged retrieves a page of students. page is zero-indexed,
// direction falls back to ascending on unrecognized values, and an unknown
// sort field is a validation failure.
func (s *StudentService) GetStudentsPaged(ctx context.Context, page, size int, sortBy, direction string) (*dto.StudentListResponse, error) {
	sortColumn, err := resolveSortColumn(sortBy)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, totalItems, err := s.studentRepo.GetPaged(ctx, offset, limit, sortColumn, helpers.NormalizeSortDirection(direction))
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:       toStudentResponses(students),
		PaginationInfo: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// SearchStudentsPaged retrieves a page of students matching the keyword across
// name, department and email, with the same paging contract as GetStudentsPaged.
func (s *StudentService) SearchStudentsPaged(ctx context.Context, keyword string, page, size int, sortBy, direction string) (*dto.StudentListResponse, error) {
	sortColumn, err := resolveSortColumn(sortBy)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, totalItems, err := s.studentRepo.SearchPaged(ctx, strings.TrimSpace(keyword), offset, limit, sortColumn, helpers.NormalizeSortDirection(direction))
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:       toStudentResponses(students),
		PaginationInfo: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// GetDepartments retrieves every department value in use, deduplicated and
// lexicographically ordered.
func (s *StudentService) GetDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.studentRepo.GetDistinctDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []string{}
	}
	return departments, nil
}

// CountStudentsByDepartment counts students in a department, 0 when none match
func (s *StudentService) CountStudentsByDepartment(ctx context.Context, department string) (int64, error) {
	return s.studentRepo.CountByDepartment(ctx, department)
}

// resolveSortColumn maps an API sort field to its database column
func resolveSortColumn(sortBy string) (string, error) {
	if sortBy == "" {
		sortBy = DefaultSortField
	}
	column, ok := studentSortColumns[sortBy]
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown sort field: %s", sortBy))
	}
	return column, nil
}

// toStudent builds a new entity from a validated view. Identifier and
// timestamps are left for the store to assign.
func toStudent(req *dto.StudentRequest) *models.Student {
	return &models.Student{
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Year:        req.Year,
		PhoneNumber: req.PhoneNumber,
	}
}

// toStudentResponse maps an entity to its API-facing view
func toStudentResponse(student *models.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:          student.ID,
		Name:        student.Name,
		Email:       student.Email,
		Department:  student.Department,
		Year:        student.Year,
		PhoneNumber: student.PhoneNumber,
	}
}

func toStudentResponses(students []*models.Student) []dto.StudentResponse {
	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, *toStudentResponse(student))
	}
	return responses
}
