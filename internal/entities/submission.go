package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ContactSubmission is one row of the general contact form. Created once per
// request and never mutated afterwards.
type ContactSubmission struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Surname   string    `db:"surname"`
	Age       null.Int64 `db:"age"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Province  string    `db:"province"`
	Locality  string    `db:"locality"`
	CreatedAt time.Time `db:"created_at"`
}

// JobApplication is one row of the job-application form. The résumé itself is
// not stored here, only its original filename; the file travels by email.
type JobApplication struct {
	ID             uint64    `db:"id"`
	Name           string    `db:"name"`
	Surname        string    `db:"surname"`
	Age            int64     `db:"age"`
	Phone          string    `db:"phone"`
	Email          string    `db:"email"`
	Province       string    `db:"province"`
	Locality       string    `db:"locality"`
	NationalID     string    `db:"national_id"`
	Address        string    `db:"address"`
	ResumeFilename string    `db:"resume_filename"`
	CreatedAt      time.Time `db:"created_at"`
}
