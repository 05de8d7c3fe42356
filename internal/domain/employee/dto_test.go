package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeCode: "ENG-0001",
		FullName:     "Amira Khalid",
		Email:        "amira@example.com",
		Department:   "Engineering",
		Designation:  "Engineer",
		JoiningDate:  "2021-04-01",
		Basic:        decimal.NewFromInt(6000),
		Housing:      decimal.NewFromInt(2500),
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	assert.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
	}{
		{"bad employee code", func(r *CreateEmployeeRequest) { r.EmployeeCode = "eng1" }},
		{"missing name", func(r *CreateEmployeeRequest) { r.FullName = "  " }},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }},
		{"bad role", func(r *CreateEmployeeRequest) { r.Role = "superuser" }},
		{"bad joining date", func(r *CreateEmployeeRequest) { r.JoiningDate = "01/04/2021" }},
		{"negative basic", func(r *CreateEmployeeRequest) { r.Basic = decimal.NewFromInt(-1) }},
		{"bad iban", func(r *CreateEmployeeRequest) { r.Bank.IBAN = "GB29NWBK60161331926819" }},
		{"short wps id", func(r *CreateEmployeeRequest) { r.Bank.WPSID = "12345" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateEmployeeRequest_Validate_BankOptional(t *testing.T) {
	t.Parallel()

	// Bank details may be added later; an empty block is valid.
	req := validCreateRequest()
	req.Bank = BankDetailsDTO{}
	assert.NoError(t, req.Validate())

	req.Bank = BankDetailsDTO{
		BankName: "Emirates NBD",
		IBAN:     "AE070331234567890123456",
		WPSID:    "12345678901234",
	}
	assert.NoError(t, req.Validate())
}

func TestBankDetails_HasWPSData(t *testing.T) {
	t.Parallel()

	complete := BankDetails{IBAN: "AE070331234567890123456", WPSID: "12345678901234"}
	assert.True(t, complete.HasWPSData())

	assert.False(t, BankDetails{IBAN: "AE070331234567890123456"}.HasWPSData())
	assert.False(t, BankDetails{WPSID: "12345678901234"}.HasWPSData())
	assert.False(t, BankDetails{}.HasWPSData())
}

func TestUpdateCompensationRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := UpdateCompensationRequest{Basic: decimal.NewFromInt(7000)}
	assert.NoError(t, valid.Validate())

	negative := UpdateCompensationRequest{Transport: decimal.NewFromInt(-500)}
	assert.Error(t, negative.Validate())
}
