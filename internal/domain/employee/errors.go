package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDocNumberExists   = errors.New("document number already registered")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrUserAlreadyLinked = errors.New("user is already linked to an employee")
)
