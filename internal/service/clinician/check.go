package clinician

import (
	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/pkg/validator"
)

const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgInvalidNPIFormat  = "Invalid NPI number format"
	MsgNotInRegistry     = "Invalid NPI number or Clinician details not found in registry"
	MsgStateRequired     = "State is required"
)

// FieldReport is the outcome of the structural clinician checks
type FieldReport struct {
	MissingFirstName bool
	MissingLastName  bool
	BadNPIFormat     bool
	MissingState     bool
}

// CheckFields runs the checks that need no network access
func CheckFields(c *model.Clinician) FieldReport {
	return FieldReport{
		MissingFirstName: validator.IsBlank(c.FirstName),
		MissingLastName:  validator.IsBlank(c.LastName),
		BadNPIFormat:     !validator.IsNPINumber(c.NPINumber),
		MissingState:     validator.IsBlank(c.State),
	}
}

// Messages merges the report with the registry verdict. The order is
// fixed; the registry message sits between the NPI format and state
// messages.
func (r FieldReport) Messages(registryOK bool) []string {
	var msgs []string
	if r.MissingFirstName {
		msgs = append(msgs, MsgFirstNameRequired)
	}
	if r.MissingLastName {
		msgs = append(msgs, MsgLastNameRequired)
	}
	if r.BadNPIFormat {
		msgs = append(msgs, MsgInvalidNPIFormat)
	}
	if !registryOK {
		msgs = append(msgs, MsgNotInRegistry)
	}
	if r.MissingState {
		msgs = append(msgs, MsgStateRequired)
	}
	return msgs
}
