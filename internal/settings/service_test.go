package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Get_FallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetSettings(gomock.Any()).Return(nil, ErrNotSaved)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestService_Get_ReturnsStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	stored := Defaults()
	stored.Company.CompanyName = "SONA INTERIORS"
	stored.Charges.ShowLocalCartage = true

	repo.EXPECT().GetSettings(gomock.Any()).Return(&stored, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SONA INTERIORS", got.Company.CompanyName)
	assert.True(t, got.Charges.ShowLocalCartage)
}

func TestService_Get_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repoErr := errors.New("connection refused")
	repo.EXPECT().GetSettings(gomock.Any()).Return(nil, repoErr)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	s := Defaults()

	repo.EXPECT().SaveSettings(gomock.Any(), &s).Return(nil)

	require.NoError(t, svc.Save(context.Background(), s))
}
