package masterdata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

func TestService_ImportProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := masterdata.NewMockRepository(ctrl)
	svc := masterdata.NewService(repo)

	products := []*masterdata.Product{
		{Name: "Roller Blind", Shade: "Blackout", PricePerSqFt: 80},
		{Name: "Zebra Blind", Shade: "Sheer", PricePerSqFt: 95},
	}

	repo.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *masterdata.Product) error {
			p.ID = uuid.New()
			return nil
		}).
		Times(2)

	n, err := svc.ImportProducts(context.Background(), products)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NotEqual(t, uuid.Nil, products[0].ID)
}

func TestService_ImportProducts_StopsOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := masterdata.NewMockRepository(ctrl)
	svc := masterdata.NewService(repo)

	products := []*masterdata.Product{
		{Name: "Roller Blind"},
		{Name: "Zebra Blind"},
	}

	gomock.InOrder(
		repo.EXPECT().CreateProduct(gomock.Any(), products[0]).Return(nil),
		repo.EXPECT().CreateProduct(gomock.Any(), products[1]).Return(errors.New("db error")),
	)

	n, err := svc.ImportProducts(context.Background(), products)
	require.Error(t, err)
	assert.Equal(t, 1, n, "position of the failing row")
}
