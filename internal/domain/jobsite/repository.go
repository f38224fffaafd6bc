package jobsite

import "context"

type Repository interface {
	Create(ctx context.Context, s JobSite) (JobSite, error)

	GetByID(ctx context.Context, id string) (JobSite, error)

	List(ctx context.Context) ([]JobSite, error)

	Update(ctx context.Context, s JobSite) (JobSite, error)

	Deactivate(ctx context.Context, id string) error
}
