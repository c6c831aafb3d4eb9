package employee

import (
	"testing"

	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		DocType:    "CC",
		DocNumber:  "1234567890",
		FirstName:  "Laura",
		LastName:   "Gomez",
		HireDate:   "2023-01-15",
		BaseSalary: decimal.NewFromInt(1_500_000),
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	t.Run("accepts a complete request", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("collects every missing field", func(t *testing.T) {
		req := CreateEmployeeRequest{}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		fields := errs.ToMap()
		assert.Contains(t, fields, "doc_type")
		assert.Contains(t, fields, "doc_number")
		assert.Contains(t, fields, "first_name")
		assert.Contains(t, fields, "last_name")
		assert.Contains(t, fields, "hire_date")
		assert.Contains(t, fields, "base_salary")
	})

	t.Run("rejects a short document number", func(t *testing.T) {
		req := validCreateRequest()
		req.DocNumber = "123"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "doc_number")
	})

	t.Run("rejects an unknown document type", func(t *testing.T) {
		req := validCreateRequest()
		req.DocType = "DNI"

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "doc_type")
	})

	t.Run("rejects a malformed hire date", func(t *testing.T) {
		req := validCreateRequest()
		req.HireDate = "15/01/2023"
		assert.Error(t, req.Validate())
	})

	t.Run("requires account fields when creating a user", func(t *testing.T) {
		req := validCreateRequest()
		req.CreateUser = true

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		fields := errs.ToMap()
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		req := validCreateRequest()
		status := "terminated"
		req.Status = &status
		assert.Error(t, req.Validate())
	})
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	t.Run("accepts an empty patch", func(t *testing.T) {
		req := UpdateEmployeeRequest{ID: "some-id"}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects a non-positive salary", func(t *testing.T) {
		salary := decimal.Zero
		req := UpdateEmployeeRequest{ID: "some-id", BaseSalary: &salary}
		assert.Error(t, req.Validate())
	})

	t.Run("rejects an unknown document type", func(t *testing.T) {
		docType := "DNI"
		req := UpdateEmployeeRequest{ID: "some-id", DocType: &docType}
		assert.Error(t, req.Validate())
	})
}
