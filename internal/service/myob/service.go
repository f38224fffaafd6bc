package myob

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/domain/myob"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/oauth"
)

type MYOBService interface {
	// ConnectURL returns the MYOB authorize URL and the state to verify on
	// callback.
	ConnectURL(ctx context.Context) (url string, state string)

	// HandleCallback exchanges the authorization code and stores the grant.
	HandleCallback(ctx context.Context, code string) (*myob.Connection, error)

	// Status returns the stored connection, refreshing the access token when
	// it has expired.
	Status(ctx context.Context) (*myob.Connection, error)

	Disconnect(ctx context.Context) error
}

type MYOBServiceImpl struct {
	repo         myob.Repository
	oauthService oauth.MYOBService
}

func NewMYOBService(repo myob.Repository, oauthService oauth.MYOBService) MYOBService {
	return &MYOBServiceImpl{
		repo:         repo,
		oauthService: oauthService,
	}
}

// ConnectURL implements MYOBService.
func (s *MYOBServiceImpl) ConnectURL(ctx context.Context) (string, string) {
	state := s.oauthService.GenerateState()
	return s.oauthService.RedirectURL(state), state
}

// HandleCallback implements MYOBService.
func (s *MYOBServiceImpl) HandleCallback(ctx context.Context, code string) (*myob.Connection, error) {
	token, err := s.oauthService.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	conn, err := s.repo.Save(ctx, myob.Connection{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	})
	if err != nil {
		return nil, err
	}

	return &conn, nil
}

// Status implements MYOBService.
func (s *MYOBServiceImpl) Status(ctx context.Context) (*myob.Connection, error) {
	conn, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if conn.Expired(time.Now()) {
		refreshed, err := s.oauthService.Refresh(ctx, &oauth2.Token{
			AccessToken:  conn.AccessToken,
			RefreshToken: conn.RefreshToken,
			Expiry:       conn.ExpiresAt,
		})
		if err != nil {
			return nil, err
		}

		conn.AccessToken = refreshed.AccessToken
		if refreshed.RefreshToken != "" {
			conn.RefreshToken = refreshed.RefreshToken
		}
		conn.ExpiresAt = refreshed.Expiry

		conn, err = s.repo.Save(ctx, conn)
		if err != nil {
			return nil, err
		}
	}

	return &conn, nil
}

// Disconnect implements MYOBService.
func (s *MYOBServiceImpl) Disconnect(ctx context.Context) error {
	return s.repo.Delete(ctx)
}
