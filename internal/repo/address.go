// Package repo contains all database access logic for the Address API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// addressColumns is the canonical column list shared by every query so that
// scanAddress always sees the same shape.
const addressColumns = "id, name, street, unit, city, state, postal_code, country, created_at, updated_at"

// AddressRepo defines the persistence operations for addresses.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type AddressRepo interface {
	// Insert stores a new address under the given ID and returns the persisted
	// record (with DB-stamped created_at and updated_at populated).
	Insert(ctx context.Context, addr domain.Address) (domain.Address, error)

	// GetByID retrieves a single address by its UUID primary key.
	// Returns domain.ErrNotFound if no address with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error)

	// List returns one page of addresses matching the filter, plus the total
	// number of matching rows (counted under the same predicate, before
	// limit/offset). Rows are ordered by created_at then id so that offset
	// pagination is stable across requests.
	List(ctx context.Context, filter domain.AddressFilter, limit, offset int) ([]domain.Address, int64, error)

	// Update overwrites the mutable fields of an existing address, re-stamps
	// updated_at, and returns the updated record.
	// Returns domain.ErrNotFound if no address with that ID exists.
	Update(ctx context.Context, addr domain.Address) (domain.Address, error)

	// Delete removes an address by ID and returns the row as it was at the
	// moment of deletion. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) (domain.Address, error)
}

// pgAddressRepo is the Postgres implementation of AddressRepo.
type pgAddressRepo struct {
	db db
}

// NewAddressRepo constructs an AddressRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAddressRepo(db db) AddressRepo {
	return &pgAddressRepo{db: db}
}

// Insert stores a new address row and returns the full persisted record.
func (r *pgAddressRepo) Insert(ctx context.Context, addr domain.Address) (domain.Address, error) {
	const q = `
		INSERT INTO addresses (id, name, street, unit, city, state, postal_code, country)
		VALUES (@id, @name, @street, @unit, @city, @state, @postal_code, @country)
		RETURNING ` + addressColumns

	args := pgx.NamedArgs{
		"id":          addr.ID,
		"name":        addr.Name,
		"street":      addr.Street,
		"unit":        addr.Unit, // nil becomes NULL
		"city":        addr.City,
		"state":       addr.State,
		"postal_code": addr.PostalCode,
		"country":     addr.Country,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAddress(row)
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.Insert: %w", err)
	}
	return result, nil
}

// GetByID retrieves an address by primary key.
func (r *pgAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	const q = `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanAddress(row)
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.GetByID: %w", err)
	}
	return result, nil
}

// List counts the rows matching the filter, then fetches one page of them.
// The count runs first and under the same predicate, so the total a client
// sees always covers the full filtered set, not just the current page.
func (r *pgAddressRepo) List(ctx context.Context, filter domain.AddressFilter, limit, offset int) ([]domain.Address, int64, error) {
	where, args := filterPredicate(filter)

	var total int64
	countQ := `SELECT count(*) FROM addresses` + where
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.AddressRepo.List: count: %w", err)
	}

	pageQ := `
		SELECT ` + addressColumns + `
		FROM addresses` + where + `
		ORDER BY created_at, id
		LIMIT @limit OFFSET @offset`
	args["limit"] = limit
	args["offset"] = offset

	rows, err := r.db.Query(ctx, pageQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AddressRepo.List: %w", err)
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.AddressRepo.List: scan: %w", err)
		}
		addrs = append(addrs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.AddressRepo.List: rows: %w", err)
	}

	return addrs, total, nil
}

// Update overwrites the mutable fields of an address and returns the updated
// record. updated_at is stamped in SQL so it uses the database clock, same as
// the insert defaults.
func (r *pgAddressRepo) Update(ctx context.Context, addr domain.Address) (domain.Address, error) {
	const q = `
		UPDATE addresses
		SET name        = @name,
		    street      = @street,
		    unit        = @unit,
		    city        = @city,
		    state       = @state,
		    postal_code = @postal_code,
		    country     = @country,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + addressColumns

	args := pgx.NamedArgs{
		"id":          addr.ID,
		"name":        addr.Name,
		"street":      addr.Street,
		"unit":        addr.Unit,
		"city":        addr.City,
		"state":       addr.State,
		"postal_code": addr.PostalCode,
		"country":     addr.Country,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAddress(row)
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an address by primary key. DELETE ... RETURNING makes the
// existence check and the removal a single atomic statement, so two racing
// deletes cannot both report success.
func (r *pgAddressRepo) Delete(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	const q = `
		DELETE FROM addresses
		WHERE id = @id
		RETURNING ` + addressColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanAddress(row)
	if err != nil {
		return domain.Address{}, fmt.Errorf("repo.AddressRepo.Delete: %w", err)
	}
	return result, nil
}

// filterPredicate builds the WHERE clause for a collection query.
// Every supplied filter field becomes an exact-match equality condition;
// empty fields are omitted entirely (never compared against NULL).
// The returned args map is shared with the page query, which appends
// limit/offset to it.
func filterPredicate(f domain.AddressFilter) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	var conds []string

	add := func(col, val string) {
		if val == "" {
			return
		}
		conds = append(conds, col+" = @"+col)
		args[col] = val
	}

	add("name", f.Name)
	add("street", f.Street)
	add("unit", f.Unit)
	add("city", f.City)
	add("state", f.State)
	add("postal_code", f.PostalCode)
	add("country", f.Country)

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanAddress to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanAddress maps a single database row into a domain.Address.
// It handles the UUID and nullable unit/state/postal_code conversions.
func scanAddress(s scanner) (domain.Address, error) {
	var (
		a          domain.Address
		id         pgtype.UUID
		unit       pgtype.Text
		state      pgtype.Text
		postalCode pgtype.Text
	)

	err := s.Scan(&id, &a.Name, &a.Street, &unit, &a.City, &state, &postalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Address{}, domain.ErrNotFound
		}
		return domain.Address{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	if unit.Valid {
		u := unit.String
		a.Unit = &u
	}
	if state.Valid {
		st := state.String
		a.State = &st
	}
	if postalCode.Valid {
		pc := postalCode.String
		a.PostalCode = &pc
	}

	return a, nil
}
