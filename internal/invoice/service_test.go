package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/pricing"
)

func testProduct() masterdata.Product {
	return masterdata.Product{
		ID:            uuid.New(),
		Name:          "Roller Blind",
		Shade:         "Blackout",
		ShadeColor:    "Ivory",
		OperationType: "Chain",
		PricePerSqFt:  80,
	}
}

func newServiceWithInvoice(t *testing.T) (*invoice.Service, *invoice.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)
	svc.CreateNew()

	return svc, repo
}

func TestService_CreateNew(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)

	first := svc.Current()
	require.NotNil(t, first)
	assert.Equal(t, invoice.StatusDraft, first.Status)
	assert.True(t, first.GSTEnabled)
	assert.InDelta(t, 18.0, first.GSTPercentage, 0.001)
	assert.Empty(t, first.Items)
	assert.NotEmpty(t, first.InvoiceNumber)

	// Creating again replaces the draft; ids must not collide even for
	// back-to-back creations.
	second := svc.CreateNew()
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
	assert.Equal(t, second.ID, svc.Current().ID)
}

func TestService_AddItem(t *testing.T) {
	type args struct {
		product masterdata.Product
		params  invoice.ItemParams
	}

	type testCase struct {
		name       string
		args       args
		wantErr    error
		wantSqFt   float64
		wantAmount float64
	}

	product := testProduct()

	tests := []testCase{
		{
			name: "InchesSuccess",
			args: args{
				product: product,
				params: invoice.ItemParams{
					Quantity:     2,
					WidthInches:  36,
					HeightInches: 60,
					Unit:         pricing.UnitInches,
				},
			},
			wantSqFt:   15.0,
			wantAmount: 2400.0,
		},
		{
			name: "CmSuccess",
			args: args{
				product: product,
				params: invoice.ItemParams{
					Quantity: 1,
					WidthCm:  100,
					HeightCm: 150,
					Unit:     pricing.UnitCm,
				},
			},
			wantSqFt:   16.15,
			wantAmount: 1292.0,
		},
		{
			name: "StaleInactiveUnitIsIgnored",
			args: args{
				product: product,
				params: invoice.ItemParams{
					Quantity: 1,
					// Active unit is cm; the zero inch fields must not
					// fail validation.
					WidthCm:  100,
					HeightCm: 150,
					Unit:     pricing.UnitCm,
				},
			},
			wantSqFt:   16.15,
			wantAmount: 1292.0,
		},
		{
			name: "NoProduct",
			args: args{
				params: invoice.ItemParams{
					Quantity:     1,
					WidthInches:  36,
					HeightInches: 60,
					Unit:         pricing.UnitInches,
				},
			},
			wantErr: invoice.ErrProductRequired,
		},
		{
			name: "ZeroQuantity",
			args: args{
				product: product,
				params: invoice.ItemParams{
					Quantity:     0,
					WidthInches:  36,
					HeightInches: 60,
					Unit:         pricing.UnitInches,
				},
			},
			wantErr: invoice.ErrInvalidQuantity,
		},
		{
			name: "ZeroActiveDimension",
			args: args{
				product: product,
				params: invoice.ItemParams{
					Quantity: 1,
					// Inches entered, cm active: the active pair is zero.
					WidthInches:  36,
					HeightInches: 60,
					Unit:         pricing.UnitCm,
				},
			},
			wantErr: invoice.ErrInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newServiceWithInvoice(t)

			got, err := svc.AddItem(tt.args.product, tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, invoice.IsValidation(err))
				assert.Empty(t, svc.Current().Items, "failed add must not modify the invoice")

				return
			}

			require.NoError(t, err)
			require.Len(t, got.Items, 1)

			item := got.Items[0]
			assert.InDelta(t, tt.wantSqFt, item.SqFt, 0.001)
			assert.InDelta(t, tt.wantAmount, item.Amount, 0.001)
			assert.Equal(t, tt.args.product.Name, item.ProductName)
			assert.Equal(t, item.Quantity, got.TotalMaterial)
		})
	}
}

func TestService_AddItem_SnapshotIsolation(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)
	product := testProduct()

	got, err := svc.AddItem(product, invoice.ItemParams{
		Quantity:     1,
		WidthInches:  36,
		HeightInches: 60,
		Unit:         pricing.UnitInches,
	})
	require.NoError(t, err)

	// A later price change in master data must not reach the item.
	product.PricePerSqFt = 999

	assert.InDelta(t, 80.0, got.Items[0].PricePerSqFt, 0.001)
	assert.InDelta(t, 80.0, svc.Current().Items[0].PricePerSqFt, 0.001)
	assert.InDelta(t, 1200.0, svc.Current().Items[0].Amount, 0.001)
}

func TestService_UpdateItem(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)

	got, err := svc.AddItem(testProduct(), invoice.ItemParams{
		Quantity:     2,
		WidthInches:  36,
		HeightInches: 60,
		Unit:         pricing.UnitInches,
	})
	require.NoError(t, err)

	qty := 3
	updated, err := svc.UpdateItem(got.Items[0].ID, invoice.ItemUpdate{Quantity: &qty})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.Items[0].Quantity)
	assert.InDelta(t, 3600.0, updated.Items[0].Amount, 0.001)
	assert.Equal(t, 3, updated.TotalMaterial)

	_, err = svc.UpdateItem(uuid.New(), invoice.ItemUpdate{Quantity: &qty})
	assert.ErrorIs(t, err, invoice.ErrItemNotFound)
}

func TestService_UpdateItem_UnitSwitchReprices(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)

	got, err := svc.AddItem(testProduct(), invoice.ItemParams{
		Quantity:     1,
		WidthInches:  36,
		HeightInches: 60,
		WidthCm:      100,
		HeightCm:     150,
		Unit:         pricing.UnitInches,
	})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got.Items[0].SqFt, 0.001)

	unit := pricing.UnitCm
	updated, err := svc.UpdateItem(got.Items[0].ID, invoice.ItemUpdate{Unit: &unit})
	require.NoError(t, err)
	assert.InDelta(t, 16.15, updated.Items[0].SqFt, 0.001)
	assert.InDelta(t, 1292.0, updated.Items[0].Amount, 0.001)
}

func TestService_RemoveItem_Idempotent(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)

	got, err := svc.AddItem(testProduct(), invoice.ItemParams{
		Quantity:     1,
		WidthInches:  36,
		HeightInches: 60,
		Unit:         pricing.UnitInches,
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	// Removing a nonexistent id is a silent no-op.
	after := svc.RemoveItem(uuid.New())
	assert.Len(t, after.Items, 1)

	after = svc.RemoveItem(got.Items[0].ID)
	assert.Empty(t, after.Items)
	assert.Zero(t, after.GrandTotal)

	after = svc.RemoveItem(got.Items[0].ID)
	assert.Empty(t, after.Items)
}

func TestService_UpdateHeader(t *testing.T) {
	svc, _ := newServiceWithInvoice(t)

	_, err := svc.AddItem(testProduct(), invoice.ItemParams{
		Quantity:     1,
		WidthInches:  36,
		HeightInches: 60,
		Unit:         pricing.UnitInches,
	})
	require.NoError(t, err)

	discount := 10.0
	packing := 50.0
	got := svc.UpdateHeader(invoice.HeaderUpdate{
		DiscountPercentage: &discount,
		PackingCharges:     &packing,
	})

	require.NotNil(t, got)
	assert.InDelta(t, 120.0, got.DiscountAmount, 0.001)  // 1200 * 10%
	assert.InDelta(t, 1130.0, got.TotalAmountBeforeTax, 0.001)
}

func TestService_UpdateHeader_NoCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := invoice.NewService(invoice.NewMockRepository(ctrl))

	discount := 10.0
	assert.Nil(t, svc.UpdateHeader(invoice.HeaderUpdate{DiscountPercentage: &discount}))
}

func TestService_Save(t *testing.T) {
	svc, repo := newServiceWithInvoice(t)

	repo.EXPECT().
		UpsertInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			assert.Equal(t, invoice.StatusSaved, inv.Status)
			return nil
		})

	got, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusSaved, got.Status)
	assert.Equal(t, invoice.StatusSaved, svc.Current().Status)

	// A second save upserts the same id again; the saved identity and
	// the session target do not change.
	repo.EXPECT().
		UpsertInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			assert.Equal(t, got.ID, inv.ID)
			return nil
		})

	again, err := svc.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
}

func TestService_Save_PersistedTimestampMatchesSession(t *testing.T) {
	svc, repo := newServiceWithInvoice(t)

	var persisted time.Time

	repo.EXPECT().
		UpsertInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			persisted = inv.UpdatedAt
			return nil
		})

	got, err := svc.Save(context.Background())
	require.NoError(t, err)

	// The timestamp handed to the repository is the one the session
	// keeps and returns; a reload must not see a different value.
	require.False(t, persisted.IsZero())
	assert.True(t, got.UpdatedAt.Equal(persisted))
	assert.True(t, svc.Current().UpdatedAt.Equal(persisted))
}

func TestService_Save_PersistFailureKeepsDraft(t *testing.T) {
	svc, repo := newServiceWithInvoice(t)

	repo.EXPECT().
		UpsertInvoice(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := svc.Save(context.Background())
	require.Error(t, err)

	var pe *invoice.PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, invoice.StatusDraft, svc.Current().Status)
}

func TestService_Save_NoCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := invoice.NewService(invoice.NewMockRepository(ctrl))

	_, err := svc.Save(context.Background())
	assert.ErrorIs(t, err, invoice.ErrNoInvoice)
}

func TestService_LoadAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	saved := invoice.New()
	saved.Status = invoice.StatusSaved

	repo.EXPECT().GetInvoice(gomock.Any(), saved.ID).Return(saved, nil)

	got, err := svc.Load(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.ID, svc.Current().ID)

	repo.EXPECT().GetInvoice(gomock.Any(), gomock.Any()).Return(nil, invoice.ErrNotFound)

	_, err = svc.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, invoice.ErrNotFound)
	assert.Equal(t, saved.ID, svc.Current().ID, "failed load keeps the session")

	// Deleting the loaded invoice clears the session.
	repo.EXPECT().DeleteInvoice(gomock.Any(), saved.ID).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	assert.Nil(t, svc.Current())
}

func TestValidateForSave(t *testing.T) {
	inv := invoice.New()

	err := invoice.ValidateForSave(inv)
	assert.ErrorIs(t, err, invoice.ErrPartiesRequired)

	inv.VendorID = uuid.New()
	inv.PartyID = uuid.New()
	err = invoice.ValidateForSave(inv)
	assert.ErrorIs(t, err, invoice.ErrNoItems)

	inv.Items = []invoice.Item{{ID: uuid.New(), Quantity: 1}}
	assert.NoError(t, invoice.ValidateForSave(inv))
}
