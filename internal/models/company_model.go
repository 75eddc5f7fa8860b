package models

const (
	CompanyCollection = "company"

	// EmployeesField is the array of user references on a company document.
	EmployeesField = "employees"
)

// CompanyRequiredKeys includes employees, which the create handler always
// resets to an empty array before checking.
var CompanyRequiredKeys = []string{"name", "taxId", EmployeesField}

// EmployeeRequiredKeys are the fields of an add-employee request.
var EmployeeRequiredKeys = []string{"company_id", "user_id"}

// ResetEmployees discards any caller supplied employees value.
func ResetEmployees(company Record) {
	company[EmployeesField] = []interface{}{}
}
