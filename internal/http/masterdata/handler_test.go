package masterdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
)

func newTestHandler(t *testing.T) (*Handler, *masterdata.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := masterdata.NewMockRepository(ctrl)

	return NewHandler(masterdata.NewService(repo)), repo
}

func TestHandler_CreateParty(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		CreateParty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *masterdata.Party) error {
			assert.Equal(t, "Sharma Furnishings", p.Name)
			assert.Equal(t, "Ravi Sharma", p.ContactPerson)
			p.ID = uuid.New()
			return nil
		})

	body := `{"name":"Sharma Furnishings","contact_person":"Ravi Sharma","gst_no":"07AAACS1234F1Z5"}`
	w := httptest.NewRecorder()

	h.createParty(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ravi Sharma", resp["contact_person"])
	assert.NotContains(t, resp, "contact")
}

func TestHandler_CreateParty_RequiresName(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.createParty(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"contact_person":"Ravi"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListParties(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		ListParties(gomock.Any()).
		Return([]*masterdata.Party{
			{ID: uuid.New(), Name: "Acme Decor", ContactPerson: "Meera Joshi"},
		}, nil)

	w := httptest.NewRecorder()
	h.listParties(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []partyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Acme Decor", resp[0].Name)
	assert.Equal(t, "Meera Joshi", resp[0].ContactPerson)
}
