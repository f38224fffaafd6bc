package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/client"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.Repository {
	return &clientRepository{db: db}
}

const clientColumns = `
	id, name, contact_name, contact_email, contact_phone, address, abn, order_number,
	myob_customer_id,
	billing_rate_hourly, billing_rate_overtime, billing_rate_weekend, billing_rate_night,
	is_active, created_at, updated_at
`

func scanClient(row pgx.Row, c *client.Client) error {
	return row.Scan(
		&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.ContactPhone, &c.Address, &c.ABN, &c.OrderNumber,
		&c.MYOBCustomerID,
		&c.BillingRateHourly, &c.BillingRateOvertime, &c.BillingRateWeekend, &c.BillingRateNight,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
}

// Create implements client.Repository.
func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (
			name, contact_name, contact_email, contact_phone, address, abn, order_number,
			billing_rate_hourly, billing_rate_overtime, billing_rate_weekend, billing_rate_night
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.Name,
		c.ContactName,
		c.ContactEmail,
		c.ContactPhone,
		c.Address,
		c.ABN,
		c.OrderNumber,
		c.BillingRateHourly,
		c.BillingRateOvertime,
		c.BillingRateWeekend,
		c.BillingRateNight,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrNameTaken
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// GetByID implements client.Repository.
func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var c client.Client
	err := scanClient(q.QueryRow(ctx, query, id), &c)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client by ID: %w", err)
	}

	return c, nil
}

// List implements client.Repository.
func (r *clientRepository) List(ctx context.Context) ([]client.Client, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE is_active
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var result []client.Client
	for rows.Next() {
		var c client.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

// Update implements client.Repository.
func (r *clientRepository) Update(ctx context.Context, c client.Client) (client.Client, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2,
			contact_name = $3,
			contact_email = $4,
			contact_phone = $5,
			address = $6,
			abn = $7,
			order_number = $8,
			myob_customer_id = $9,
			billing_rate_hourly = $10,
			billing_rate_overtime = $11,
			billing_rate_weekend = $12,
			billing_rate_night = $13,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.Name,
		c.ContactName,
		c.ContactEmail,
		c.ContactPhone,
		c.Address,
		c.ABN,
		c.OrderNumber,
		c.MYOBCustomerID,
		c.BillingRateHourly,
		c.BillingRateOvertime,
		c.BillingRateWeekend,
		c.BillingRateNight,
	).Scan(&c.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

// Deactivate implements client.Repository.
func (r *clientRepository) Deactivate(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE clients SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrNotFound
	}

	return nil
}
