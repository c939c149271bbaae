package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saturnino-fabrica-de-software/centinela/internal/domain"
)

type PersonRepository struct {
	pool PgxPool
}

func NewPersonRepository(pool PgxPool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) ListActive(ctx context.Context) ([]domain.Person, error) {
	query := `
		SELECT id, nombre, COALESCE(apellido, ''), tipo, COALESCE(foto_referencia, ''), activo, COALESCE(notas, ''), fecha_registro
		FROM personas
		WHERE activo = true
		ORDER BY nombre, apellido
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active people: %w", err)
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Type, &p.ReferencePhoto, &p.Active, &p.Notes, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	query := `
		SELECT id, nombre, COALESCE(apellido, ''), tipo, COALESCE(foto_referencia, ''), activo, COALESCE(notas, ''), fecha_registro
		FROM personas
		WHERE id = $1
	`

	var p domain.Person
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Type,
		&p.ReferencePhoto,
		&p.Active,
		&p.Notes,
		&p.RegisteredAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	return &p, nil
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO personas (nombre, apellido, tipo, foto_referencia, activo, notas)
		VALUES ($1, $2, $3, $4, true, $5)
		RETURNING id, fecha_registro
	`

	if person.Type == "" {
		person.Type = domain.PersonTypeResident
	}

	err := r.pool.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		person.Type,
		person.ReferencePhoto,
		person.Notes,
	).Scan(&person.ID, &person.RegisteredAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPersonExists
		}
		return fmt.Errorf("create person: %w", err)
	}

	person.Active = true
	return nil
}

func (r *PersonRepository) Update(ctx context.Context, person *domain.Person) error {
	query := `
		UPDATE personas
		SET nombre = $2, apellido = $3, tipo = $4, notas = $5, activo = $6, ultima_modificacion = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		person.ID,
		person.FirstName,
		person.LastName,
		person.Type,
		person.Notes,
		person.Active,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPersonNotFound
	}

	return nil
}

// SoftDelete deactivates a person, keeping the detection history intact.
func (r *PersonRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE personas
		SET activo = false, ultima_modificacion = NOW()
		WHERE id = $1 AND activo = true
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete person: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPersonNotFound
	}

	return nil
}
