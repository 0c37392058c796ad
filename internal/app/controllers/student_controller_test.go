package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/app/services"
	"github.com/placement/studentms/internal/pkg/apperrors"
)

type stubStudentStore struct {
	mock.Mock
}

func (m *stubStudentStore) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *stubStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *stubStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *stubStudentStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *stubStudentStore) EmailExistsExcept(ctx context.Context, email string, id int64) (bool, error) {
	args := m.Called(ctx, email, id)
	return args.Bool(0), args.Error(1)
}

func (m *stubStudentStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *stubStudentStore) Update(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *stubStudentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *stubStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *stubStudentStore) GetByDepartment(ctx context.Context, department string) ([]*models.Student, error) {
	args := m.Called(ctx, department)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *stubStudentStore) GetByYear(ctx context.Context, year int) ([]*models.Student, error) {
	args := m.Called(ctx, year)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *stubStudentStore) Search(ctx context.Context, term string) ([]*models.Student, error) {
	args := m.Called(ctx, term)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Error(1)
}

func (m *stubStudentStore) GetPaged(ctx context.Context, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error) {
	args := m.Called(ctx, offset, limit, sortColumn, direction)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Get(1).(int64), args.Error(2)
}

func (m *stubStudentStore) SearchPaged(ctx context.Context, term string, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error) {
	args := m.Called(ctx, term, offset, limit, sortColumn, direction)
	students, _ := args.Get(0).([]*models.Student)
	return students, args.Get(1).(int64), args.Error(2)
}

func (m *stubStudentStore) GetDistinctDepartments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	departments, _ := args.Get(0).([]string)
	return departments, args.Error(1)
}

func (m *stubStudentStore) CountByDepartment(ctx context.Context, department string) (int64, error) {
	args := m.Called(ctx, department)
	return args.Get(0).(int64), args.Error(1)
}

func newStudentRouter(store *stubStudentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := services.NewStudentService(store, zerolog.Nop())
	controller := NewStudentController(service)

	router := gin.New()
	students := router.Group("/api/v1/students")
	{
		students.POST("", controller.CreateStudent)
		students.GET("", controller.GetAllStudents)
		students.GET("/search", controller.SearchStudents)
		students.GET("/paginated", controller.GetStudentsPaged)
		students.GET("/departments", controller.GetDepartments)
		students.GET("/count/department/:department", controller.CountByDepartment)
		students.GET("/:id", controller.GetStudentByID)
		students.PUT("/:id", controller.UpdateStudent)
		students.DELETE("/:id", controller.DeleteStudent)
	}
	return router
}

func storedAda() *models.Student {
	return &models.Student{
		ID:          1,
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Department:  "CS",
		Year:        3,
		PhoneNumber: "1234567890",
	}
}

const adaJSON = `{"name":"Ada Lovelace","email":"ada@example.com","department":"CS","year":3,"phoneNumber":"1234567890"}`

func TestStudentController_CreateStudent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("EmailExists", mock.Anything, "ada@example.com").Return(false, nil)
		store.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Student).ID = 1
		}).Return(nil)

		recorder := postJSON(newStudentRouter(store), "/api/v1/students", adaJSON)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":1`)
		assert.Contains(t, recorder.Body.String(), `"email":"ada@example.com"`)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("EmailExists", mock.Anything, "ada@example.com").Return(true, nil)

		recorder := postJSON(newStudentRouter(store), "/api/v1/students", adaJSON)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "RES_002")
	})

	t.Run("out-of-range year rejected at the boundary", func(t *testing.T) {
		store := &stubStudentStore{}

		recorder := postJSON(newStudentRouter(store), "/api/v1/students",
			`{"name":"Ada Lovelace","email":"ada@example.com","department":"CS","year":5,"phoneNumber":"1234567890"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_001")
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestStudentController_GetStudentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetByID", mock.Anything, int64(1)).Return(storedAda(), nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/1", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Ada Lovelace"`)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetByID", mock.Anything, int64(9999)).Return(nil, apperrors.ErrStudentNotFound)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/9999", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "RES_001")
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		store := &stubStudentStore{}

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/abc", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestStudentController_UpdateStudent(t *testing.T) {
	t.Run("email change to a taken address conflicts", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetByID", mock.Anything, int64(1)).Return(storedAda(), nil)
		store.On("EmailExistsExcept", mock.Anything, "grace@example.com", int64(1)).Return(true, nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/students/1",
			strings.NewReader(`{"name":"Ada Lovelace","email":"grace@example.com","department":"CS","year":3,"phoneNumber":"1234567890"}`))
		req.Header.Set("Content-Type", "application/json")
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("updated fields are echoed back", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetByID", mock.Anything, int64(1)).Return(storedAda(), nil)
		store.On("Update", mock.Anything, mock.Anything).Return(nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/students/1",
			strings.NewReader(`{"name":"Ada King","email":"ada@example.com","department":"CS","year":4,"phoneNumber":"1234567890"}`))
		req.Header.Set("Content-Type", "application/json")
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Ada King"`)
		assert.Contains(t, recorder.Body.String(), `"year":4`)
	})
}

func TestStudentController_DeleteStudent(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		store.On("Delete", mock.Anything, int64(1)).Return(nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/students/1", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("absent id answers 404", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("Exists", mock.Anything, int64(9999)).Return(false, nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/students/9999", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestStudentController_SearchStudents(t *testing.T) {
	t.Run("q is accepted as a keyword alias", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("Search", mock.Anything, "ada").Return([]*models.Student{storedAda()}, nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/search?q=ada", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"Ada Lovelace"`)
	})

	t.Run("missing keyword lists everything", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetAll", mock.Anything).Return([]*models.Student{storedAda()}, nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/search", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		store.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})
}

func TestStudentController_GetStudentsPaged(t *testing.T) {
	t.Run("query params reach the store", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetPaged", mock.Anything, uint64(5), 5, "name", "DESC").
			Return([]*models.Student{storedAda()}, int64(6), nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/students/paginated?page=1&size=5&sortBy=name&direction=desc", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"currentPage":1`)
		assert.Contains(t, recorder.Body.String(), `"totalPages":2`)
		assert.Contains(t, recorder.Body.String(), `"totalItems":6`)
	})

	t.Run("unknown sort field is a bad request", func(t *testing.T) {
		store := &stubStudentStore{}

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/paginated?sortBy=shoeSize", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_001")
	})
}

func TestStudentController_Departments(t *testing.T) {
	t.Run("distinct departments", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("GetDistinctDepartments", mock.Anything).Return([]string{"CS", "EE"}, nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/departments", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `["CS","EE"]`)
	})

	t.Run("department count", func(t *testing.T) {
		store := &stubStudentStore{}
		store.On("CountByDepartment", mock.Anything, "CS").Return(int64(42), nil)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/count/department/CS", nil)
		newStudentRouter(store).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"count":42`)
	})
}
