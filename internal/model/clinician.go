package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clinician is a registry-verified care provider. Fields the API does not
// know about are kept in Profile and written back flat on output.
type Clinician struct {
	ID        string    `db:"clinician_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	NPINumber string    `db:"npi_number"`
	State     string    `db:"state"`
	Profile   JSONMap   `db:"profile"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// clinicianReserved are the keys that never land in Profile
var clinicianReserved = map[string]struct{}{
	"clinician_id": {},
	"first_name":   {},
	"last_name":    {},
	"npi_number":   {},
	"state":        {},
	"created_at":   {},
	"updated_at":   {},
}

func (c Clinician) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Profile)+len(clinicianReserved))
	for k, v := range c.Profile {
		out[k] = v
	}
	out["clinician_id"] = c.ID
	out["first_name"] = c.FirstName
	out["last_name"] = c.LastName
	out["npi_number"] = c.NPINumber
	out["state"] = c.State
	out["created_at"] = c.CreatedAt
	out["updated_at"] = c.UpdatedAt
	return json.Marshal(out)
}

// ClinicianInput is a create or update payload. Nil fields were absent
// from the request body.
type ClinicianInput struct {
	FirstName *string
	LastName  *string
	NPINumber *string
	State     *string
	Profile   JSONMap
}

func (in *ClinicianInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("clinician payload must be a JSON object")
	}

	fields := map[string]**string{
		"first_name": &in.FirstName,
		"last_name":  &in.LastName,
		"npi_number": &in.NPINumber,
		"state":      &in.State,
	}

	in.Profile = JSONMap{}
	for key, value := range raw {
		if dst, ok := fields[key]; ok {
			var s *string
			if err := json.Unmarshal(value, &s); err != nil {
				return fmt.Errorf("%s must be a string: %w", key, err)
			}
			*dst = s
			continue
		}
		if _, reserved := clinicianReserved[key]; reserved {
			continue
		}
		var v interface{}
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		in.Profile[key] = v
	}
	return nil
}

// NewClinician builds a clinician from a create payload
func NewClinician(in *ClinicianInput) *Clinician {
	c := &Clinician{Profile: JSONMap{}}
	c.Apply(in)
	return c
}

// Apply overlays the fields present in the input onto the clinician.
// Profile keys are merged; a JSON null removes the key.
func (c *Clinician) Apply(in *ClinicianInput) {
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.NPINumber != nil {
		c.NPINumber = *in.NPINumber
	}
	if in.State != nil {
		c.State = *in.State
	}
	if c.Profile == nil {
		c.Profile = JSONMap{}
	}
	for k, v := range in.Profile {
		if v == nil {
			delete(c.Profile, k)
			continue
		}
		c.Profile[k] = v
	}
}
