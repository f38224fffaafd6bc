package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/myob"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type myobRepository struct {
	db *database.DB
}

func NewMYOBRepository(db *database.DB) myob.Repository {
	return &myobRepository{db: db}
}

// Get implements myob.Repository.
func (r *myobRepository) Get(ctx context.Context) (myob.Connection, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, access_token, refresh_token, expires_at, company_file, connected_at, updated_at
		FROM myob_connection
		WHERE id = 1
	`

	var c myob.Connection
	err := q.QueryRow(ctx, query).Scan(
		&c.ID, &c.AccessToken, &c.RefreshToken, &c.ExpiresAt, &c.CompanyFile, &c.ConnectedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return myob.Connection{}, myob.ErrNotConnected
		}
		return myob.Connection{}, fmt.Errorf("failed to get myob connection: %w", err)
	}

	return c, nil
}

// Save implements myob.Repository.
func (r *myobRepository) Save(ctx context.Context, c myob.Connection) (myob.Connection, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO myob_connection (id, access_token, refresh_token, expires_at, company_file)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET access_token = EXCLUDED.access_token,
					  refresh_token = EXCLUDED.refresh_token,
					  expires_at = EXCLUDED.expires_at,
					  company_file = EXCLUDED.company_file,
					  updated_at = now()
		RETURNING id, connected_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.AccessToken, c.RefreshToken, c.ExpiresAt, c.CompanyFile,
	).Scan(&c.ID, &c.ConnectedAt, &c.UpdatedAt)
	if err != nil {
		return myob.Connection{}, fmt.Errorf("failed to save myob connection: %w", err)
	}

	return c, nil
}

// Delete implements myob.Repository.
func (r *myobRepository) Delete(ctx context.Context) error {
	q := database.GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM myob_connection WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete myob connection: %w", err)
	}

	return nil
}
