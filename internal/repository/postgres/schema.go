package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// schema is applied in order; every statement is idempotent
var schema = []struct {
	name string
	sql  string
}{
	{
		name: "clinician",
		sql: `CREATE TABLE IF NOT EXISTS clinician (
			clinician_id TEXT PRIMARY KEY,
			first_name   TEXT NOT NULL,
			last_name    TEXT NOT NULL,
			npi_number   TEXT NOT NULL,
			state        TEXT NOT NULL,
			profile      JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "patient",
		sql: `CREATE TABLE IF NOT EXISTS patient (
			patient_id    TEXT PRIMARY KEY,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			date_of_birth TEXT NOT NULL,
			address       TEXT NOT NULL,
			phone_number  TEXT NOT NULL,
			email         TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		// clinician_id and patient_id are soft references: no foreign keys,
		// so appointments outlive deleted clinicians and patients.
		name: "appointments",
		sql: `CREATE TABLE IF NOT EXISTS appointments (
			appointment_id       TEXT PRIMARY KEY,
			clinician_id         TEXT NOT NULL,
			patient_id           TEXT NOT NULL,
			appointment_datetime TEXT NOT NULL,
			appointment_purpose  TEXT NOT NULL,
			created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "appointments_clinician_idx",
		sql:  `CREATE INDEX IF NOT EXISTS appointments_clinician_idx ON appointments (clinician_id)`,
	},
	{
		name: "appointments_patient_idx",
		sql:  `CREATE INDEX IF NOT EXISTS appointments_patient_idx ON appointments (patient_id)`,
	},
}

// Migrate creates the tables the repositories need
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, step := range schema {
		if _, err := db.ExecContext(ctx, step.sql); err != nil {
			return fmt.Errorf("migrate %s: %w", step.name, err)
		}
		log.Debug().Str("step", step.name).Msg("schema step applied")
	}
	return nil
}
