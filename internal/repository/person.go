package repository

import (
	"context"

	"github.com/deppfellow/persons-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// ErrPersonNotFound is returned when no row matches a national id.
var ErrPersonNotFound = errors.New("person not found")

const personColumns = `id, full_name, birth_date, email, country, national_id`

// PersonRepository persists persons in the "persons" table.
//
// Every write runs in its own transaction: it either commits or leaves
// nothing behind.
type PersonRepository struct {
	db dbtx
}

func NewPersonRepository(db dbtx) *PersonRepository {
	return &PersonRepository{db: db}
}

func scanPerson(row pgx.Row) (*model.Person, error) {
	var p model.Person
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.BirthDate.Time,
		&p.Email,
		&p.Country,
		&p.NationalID,
	)
	if err != nil {
		return nil, err
	}
	p.BirthDate = model.NewDate(p.BirthDate.Time)

	return &p, nil
}

func (r *PersonRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, fn)
}

// Create inserts p and returns the stored row, including its new id.
//
// A duplicate email or national id surfaces as the driver's unique
// violation error.
func (r *PersonRepository) Create(ctx context.Context, p *model.Person) (*model.Person, error) {
	var created *model.Person

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO persons (full_name, birth_date, email, country, national_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+personColumns,
			p.FullName,
			p.BirthDate.Time,
			p.Email,
			p.Country,
			p.NationalID,
		)

		var err error
		created, err = scanPerson(row)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create person")
	}

	return created, nil
}

// FindByNationalID returns ErrPersonNotFound when there is no match.
func (r *PersonRepository) FindByNationalID(ctx context.Context, nationalID string) (*model.Person, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+personColumns+`
		FROM persons
		WHERE national_id = $1`,
		nationalID,
	)

	p, err := scanPerson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find person %q", nationalID)
	}

	return p, nil
}

// Update overwrites full name, birth date, email and country of the person
// whose national id is p.NationalID. The id and national id never change.
func (r *PersonRepository) Update(ctx context.Context, p *model.Person) (*model.Person, error) {
	var updated *model.Person

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE persons
			SET full_name = $1,
			    birth_date = $2,
			    email = $3,
			    country = $4
			WHERE national_id = $5
			RETURNING `+personColumns,
			p.FullName,
			p.BirthDate.Time,
			p.Email,
			p.Country,
			p.NationalID,
		)

		var err error
		updated, err = scanPerson(row)
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update person %q", p.NationalID)
	}

	return updated, nil
}

// Delete removes the person and returns the row as it was.
func (r *PersonRepository) Delete(ctx context.Context, nationalID string) (*model.Person, error) {
	var deleted *model.Person

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			DELETE FROM persons
			WHERE national_id = $1
			RETURNING `+personColumns,
			nationalID,
		)

		var err error
		deleted, err = scanPerson(row)
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete person %q", nationalID)
	}

	return deleted, nil
}

// List returns every person in insertion order. The slice is never nil.
func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+personColumns+`
		FROM persons
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}
	defer rows.Close()

	persons := make([]model.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan person")
		}
		persons = append(persons, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	return persons, nil
}
