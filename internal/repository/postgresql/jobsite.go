package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/jobsite"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
)

type jobSiteRepository struct {
	db *database.DB
}

func NewJobSiteRepository(db *database.DB) jobsite.Repository {
	return &jobSiteRepository{db: db}
}

const jobSiteColumns = `
	s.id, s.name, s.client_id, s.address, s.latitude, s.longitude,
	s.geofence_radius, s.is_active, s.created_at, s.updated_at
`

func scanJobSite(row pgx.Row, s *jobsite.JobSite, withNames bool) error {
	dest := []interface{}{
		&s.ID, &s.Name, &s.ClientID, &s.Address, &s.Latitude, &s.Longitude,
		&s.GeofenceRadius, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &s.ClientName)
	}
	return row.Scan(dest...)
}

// Create implements jobsite.Repository.
func (r *jobSiteRepository) Create(ctx context.Context, s jobsite.JobSite) (jobsite.JobSite, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_sites (
			name, client_id, address, latitude, longitude, geofence_radius
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name,
		s.ClientID,
		s.Address,
		s.Latitude,
		s.Longitude,
		s.GeofenceRadius,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return jobsite.JobSite{}, fmt.Errorf("failed to create job site: %w", err)
	}

	return s, nil
}

// GetByID implements jobsite.Repository.
func (r *jobSiteRepository) GetByID(ctx context.Context, id string) (jobsite.JobSite, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobSiteColumns + `,
			c.name AS client_name
		FROM job_sites s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE s.id = $1
	`

	var s jobsite.JobSite
	err := scanJobSite(q.QueryRow(ctx, query, id), &s, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return jobsite.JobSite{}, jobsite.ErrNotFound
		}
		return jobsite.JobSite{}, fmt.Errorf("failed to get job site by ID: %w", err)
	}

	return s, nil
}

// List implements jobsite.Repository.
func (r *jobSiteRepository) List(ctx context.Context) ([]jobsite.JobSite, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobSiteColumns + `,
			c.name AS client_name
		FROM job_sites s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE s.is_active
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job sites: %w", err)
	}
	defer rows.Close()

	var result []jobsite.JobSite
	for rows.Next() {
		var s jobsite.JobSite
		if err := scanJobSite(rows, &s, true); err != nil {
			return nil, fmt.Errorf("failed to scan job site: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

// Update implements jobsite.Repository.
func (r *jobSiteRepository) Update(ctx context.Context, s jobsite.JobSite) (jobsite.JobSite, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE job_sites
		SET name = $2,
			client_id = $3,
			address = $4,
			latitude = $5,
			longitude = $6,
			geofence_radius = $7,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.ClientID,
		s.Address,
		s.Latitude,
		s.Longitude,
		s.GeofenceRadius,
	).Scan(&s.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return jobsite.JobSite{}, jobsite.ErrNotFound
		}
		return jobsite.JobSite{}, fmt.Errorf("failed to update job site: %w", err)
	}

	return s, nil
}

// Deactivate implements jobsite.Repository.
func (r *jobSiteRepository) Deactivate(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_sites SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate job site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return jobsite.ErrNotFound
	}

	return nil
}
