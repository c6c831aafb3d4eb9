package employee

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.DocNumber == newEmployee.DocNumber {
			return employee.Employee{}, employee.ErrDocNumberExists
		}
	}
	newEmployee.ID = uuid.NewString()
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var all []employee.Employee
	for _, e := range f.employees {
		all = append(all, e)
	}
	return all, int64(len(all)), nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range f.employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	return active, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	f.employees[req.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Status = employee.StatusInactive
	f.employees[id] = e
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = uuid.NewString()
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	// The transactional path needs a real database; these tests cover the
	// plain path, so no db handle is wired.
	return NewEmployeeService(nil, repo, &fakeUserRepo{}), repo
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		DocType:    "CC",
		DocNumber:  "1234567890",
		FirstName:  "Laura",
		LastName:   "Gomez",
		HireDate:   "2023-01-15",
		BaseSalary: decimal.NewFromInt(1_500_000),
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Run("creates an active employee by default", func(t *testing.T) {
		svc, _ := newTestService()

		resp, err := svc.CreateEmployee(context.Background(), createRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "2023-01-15", resp.HireDate)
		assert.Nil(t, resp.UserID)
	})

	t.Run("rejects duplicate document numbers", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.CreateEmployee(context.Background(), createRequest())
		require.NoError(t, err)

		_, err = svc.CreateEmployee(context.Background(), createRequest())
		assert.ErrorIs(t, err, employee.ErrDocNumberExists)
	})

	t.Run("rejects an invalid request before touching storage", func(t *testing.T) {
		svc, repo := newTestService()

		req := createRequest()
		req.BaseSalary = decimal.Zero
		_, err := svc.CreateEmployee(context.Background(), req)
		assert.Error(t, err)
		assert.Empty(t, repo.employees)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("applies a partial update and returns the result", func(t *testing.T) {
		svc, _ := newTestService()

		created, err := svc.CreateEmployee(context.Background(), createRequest())
		require.NoError(t, err)

		newSalary := decimal.NewFromInt(2_000_000)
		resp, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
			ID:         created.ID,
			BaseSalary: &newSalary,
		})
		require.NoError(t, err)
		assert.True(t, resp.BaseSalary.Equal(newSalary))
	})

	t.Run("fails for an unknown employee", func(t *testing.T) {
		svc, _ := newTestService()

		name := "Ana"
		_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
			ID:        uuid.NewString(),
			FirstName: &name,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestDeactivateEmployee(t *testing.T) {
	t.Run("soft-deletes by flipping status", func(t *testing.T) {
		svc, repo := newTestService()

		created, err := svc.CreateEmployee(context.Background(), createRequest())
		require.NoError(t, err)

		require.NoError(t, svc.DeactivateEmployee(context.Background(), created.ID))
		assert.Equal(t, employee.StatusInactive, repo.employees[created.ID].Status)

		// Record stays readable after deactivation.
		got, err := svc.GetEmployee(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "inactive", got.Status)
	})

	t.Run("fails for an unknown employee", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.DeactivateEmployee(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestListEmployees(t *testing.T) {
	svc, _ := newTestService()

	first := createRequest()
	second := createRequest()
	second.DocNumber = "9876543210"
	second.FirstName = "Mario"

	for _, req := range []employee.CreateEmployeeRequest{first, second} {
		_, err := svc.CreateEmployee(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.TotalCount)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Page)
}
