package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foashegy/ekram-prices/internal/model"
	"github.com/foashegy/ekram-prices/internal/transport/http/board/v1/mocks"
)

const testAPIKey = "sekret-key"

type deps struct {
	prices    *mocks.MockPriceService
	materials *mocks.MockMaterialService
}

func newDeps(t *testing.T) deps {
	return deps{
		prices:    mocks.NewMockPriceService(t),
		materials: mocks.NewMockMaterialService(t),
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandlerGetPrices(t *testing.T) {
	t.Parallel()

	t.Run("serves snapshot", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.prices.On("Snapshot", mock.Anything).Return(&model.Snapshot{
			Prices: map[string]model.PriceRecord{
				"yellow_corn": {Price: 15000, PrevPrice: 14000, UpdatedBy: "ahmed", UpdatedAt: time.Now()},
			},
			History: []model.HistoryEntry{
				{ID: "h-1", MaterialKey: "yellow_corn", Price: 15000, Change: "+7.1%", Dir: model.DirUp},
			},
		}).Once()

		h := NewBoardHandler(d.prices, d.materials, testAPIKey)
		rec := httptest.NewRecorder()
		h.GetPrices(rec, httptest.NewRequest(http.MethodGet, "/api/prices", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		prices := body["prices"].(map[string]any)
		require.Contains(t, prices, "yellow_corn")
		assert.Equal(t, float64(15000), prices["yellow_corn"].(map[string]any)["price"])

		history := body["history"].([]any)
		require.Len(t, history, 1)
		assert.Equal(t, "+7.1%", history[0].(map[string]any)["changePct"])
	})

	t.Run("empty snapshot keeps object and array shapes", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.prices.On("Snapshot", mock.Anything).Return(&model.Snapshot{
			Prices:  map[string]model.PriceRecord{},
			History: []model.HistoryEntry{},
		}).Once()

		h := NewBoardHandler(d.prices, d.materials, "")
		rec := httptest.NewRecorder()
		h.GetPrices(rec, httptest.NewRequest(http.MethodGet, "/api/prices", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"prices":{},"history":[]}`, rec.Body.String())
	})

	// Reads need no key even when one is configured.
	t.Run("no auth required", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.prices.On("Snapshot", mock.Anything).Return(&model.Snapshot{
			Prices:  map[string]model.PriceRecord{},
			History: []model.HistoryEntry{},
		}).Once()

		h := NewBoardHandler(d.prices, d.materials, testAPIKey)
		rec := httptest.NewRecorder()
		h.GetPrices(rec, httptest.NewRequest(http.MethodGet, "/api/prices", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlerUpdatePriceAuth(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{name: "missing key", apiKey: testAPIKey, header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", apiKey: testAPIKey, header: "nope", wantStatus: http.StatusUnauthorized},
		{name: "correct key", apiKey: testAPIKey, header: testAPIKey, wantStatus: http.StatusOK},
		{name: "auth disabled", apiKey: "", header: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.wantStatus == http.StatusOK {
				d.prices.On("Update", mock.Anything, mock.Anything).
					Return(&model.UpdatePriceResult{
						Material: "yellow_corn",
						Price:    15000,
						Change:   "0.0%",
						Dir:      model.DirStable,
					}, nil).
					Once()
			}

			h := NewBoardHandler(d.prices, d.materials, tt.apiKey)

			req := httptest.NewRequest(http.MethodPost, "/api/update-price",
				strings.NewReader(`{"material":"yellow_corn","price":15000}`))
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}

			rec := httptest.NewRecorder()
			h.UpdatePrice(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "unauthorized", decodeResponse(t, rec)["error"])
				d.prices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandlerUpdatePriceBody(t *testing.T) {
	t.Parallel()

	t.Run("numeric string price is accepted", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.prices.On("Update", mock.Anything, mock.MatchedBy(func(p model.UpdatePriceParams) bool {
			return p.Material == "corn" && p.Price == 15500.5 && p.Supplier == "الدلتا" && p.User == "ahmed"
		})).Return(&model.UpdatePriceResult{
			Material:     "yellow_corn",
			MaterialName: "ذرة صفراء",
			Price:        15500.5,
			PrevPrice:    15000,
			Change:       "+3.3%",
			Dir:          model.DirUp,
		}, nil).Once()

		h := NewBoardHandler(d.prices, d.materials, "")

		req := httptest.NewRequest(http.MethodPost, "/api/update-price",
			strings.NewReader(`{"material":"corn","price":"15500.5","supplier":"الدلتا","user":"ahmed"}`))
		rec := httptest.NewRecorder()
		h.UpdatePrice(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "yellow_corn", body["material"])
		assert.Equal(t, "+3.3%", body["change"])
		assert.Equal(t, "up", body["dir"])
	})

	t.Run("unparsable price reaches the service as NaN", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.prices.On("Update", mock.Anything, mock.MatchedBy(func(p model.UpdatePriceParams) bool {
			return math.IsNaN(p.Price)
		})).Return(nil, model.ErrInvalidPrice).Once()

		h := NewBoardHandler(d.prices, d.materials, "")

		req := httptest.NewRequest(http.MethodPost, "/api/update-price",
			strings.NewReader(`{"material":"corn","price":"abc"}`))
		rec := httptest.NewRecorder()
		h.UpdatePrice(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid price", decodeResponse(t, rec)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		h := NewBoardHandler(d.prices, d.materials, "")

		req := httptest.NewRequest(http.MethodPost, "/api/update-price",
			strings.NewReader(`{"material":`))
		rec := httptest.NewRecorder()
		h.UpdatePrice(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", decodeResponse(t, rec)["error"])
		d.prices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestHandlerUpdatePriceErrors(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   func(t *testing.T, body map[string]any)
	}

	tests := []testCase{
		{
			name:       "material required",
			svcErr:     model.ErrMaterialRequired,
			wantStatus: http.StatusBadRequest,
			wantBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "material required", body["error"])
			},
		},
		{
			name: "unknown material lists valid keys",
			svcErr: &model.UnknownMaterialError{
				Material:  "dust",
				ValidKeys: []string{"barley", "yellow_corn"},
			},
			wantStatus: http.StatusBadRequest,
			wantBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "unknown material", body["error"])
				assert.Equal(t, []any{"barley", "yellow_corn"}, body["validMaterials"])
			},
		},
		{
			name:       "storage failure",
			svcErr:     errors.New("mongo: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "internal error", body["error"])
				assert.Contains(t, body["details"], "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.prices.On("Update", mock.Anything, mock.Anything).Return(nil, tt.svcErr).Once()

			h := NewBoardHandler(d.prices, d.materials, "")

			req := httptest.NewRequest(http.MethodPost, "/api/update-price",
				strings.NewReader(`{"material":"dust","price":100}`))
			rec := httptest.NewRecorder()
			h.UpdatePrice(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			tt.wantBody(t, decodeResponse(t, rec))
		})
	}
}

func TestHandlerAddMaterial(t *testing.T) {
	t.Parallel()

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.materials.On("AddMaterial", mock.Anything, model.AddMaterialParams{
			Key:    "Premix 50",
			NameAr: "بريمكس ٥٠",
			NameEn: "Premix 50",
		}).Return(&model.AddMaterialResult{Key: "premix_50", Name: "بريمكس ٥٠"}, nil).Once()

		h := NewBoardHandler(d.prices, d.materials, testAPIKey)

		req := httptest.NewRequest(http.MethodPost, "/api/add-material",
			strings.NewReader(`{"key":"Premix 50","nameAr":"بريمكس ٥٠","nameEn":"Premix 50"}`))
		rec := httptest.NewRecorder()
		h.AddMaterial(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "premix_50", body["material"])
		assert.Equal(t, "بريمكس ٥٠", body["name"])
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.materials.On("AddMaterial", mock.Anything, mock.Anything).
			Return(nil, model.ErrMissingNameOrKey).
			Once()

		h := NewBoardHandler(d.prices, d.materials, "")

		req := httptest.NewRequest(http.MethodPost, "/api/add-material",
			strings.NewReader(`{"key":"premix_50"}`))
		rec := httptest.NewRecorder()
		h.AddMaterial(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "key and nameAr are required", decodeResponse(t, rec)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		h := NewBoardHandler(d.prices, d.materials, "")

		req := httptest.NewRequest(http.MethodPost, "/api/add-material",
			strings.NewReader(`not json`))
		rec := httptest.NewRecorder()
		h.AddMaterial(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		d.materials.AssertNotCalled(t, "AddMaterial", mock.Anything, mock.Anything)
	})
}

func TestHandlerFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/prices", nil))

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "method not allowed", decodeResponse(t, rec)["error"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", decodeResponse(t, rec)["error"])
	})
}

func TestCoercePrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(150), coercePrice(json.Number("150")))
	assert.Equal(t, 150.5, coercePrice("  150.5 "))
	assert.Equal(t, float64(150), coercePrice(float64(150)))
	assert.True(t, math.IsNaN(coercePrice("abc")))
	assert.True(t, math.IsNaN(coercePrice(nil)))
	assert.True(t, math.IsNaN(coercePrice(true)))
	assert.True(t, math.IsNaN(coercePrice(json.Number("not-a-number"))))
}
