package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinefine/dietary"
	httpapi "dinefine/menu-svc/internal/api/http"
	"dinefine/menu-svc/internal/domain"
	"dinefine/menu-svc/internal/mocks"
	"dinefine/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(mockSvc *mocks.MenuServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Menus: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(mocks.NewMenuServiceInterface(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"menu-svc"`)
}

func TestHandler_getRestrictions(t *testing.T) {
	router := setupTestRouter(mocks.NewMenuServiceInterface(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dietary/restrictions", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string][]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, dietary.Restrictions(), body["restrictions"])
}

func TestHandler_scanMenu(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"dishes":[{"dish":"Omelette","ingredients":["eggs","cheese"]}],"allergies":["Eggs"],"dietary_preferences":[]}`,
			prepareMocks: func() {
				mockSvc.On("Scan", mock.MatchedBy(func(req domain.ScanRequest) bool {
					return len(req.Dishes) == 1 && req.Allergies[0] == "Eggs"
				})).Return(domain.ScanResponse{
					Results: []dietary.DishScan{{
						Dish:               dietary.Dish{Name: "Omelette"},
						FlaggedIngredients: []string{"eggs"},
						IsFlagged:          true,
						Restrictions:       []string{"Eggs"},
					}},
					Summary: dietary.Summary{TotalDishes: 1, FlaggedDishes: 1},
				}).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"flagged_ingredients":["eggs"]`,
		},
		{
			name:    "malformed ingredients are tolerated",
			payload: `{"dishes":[{"dish":"Mystery","ingredients":"unknown"}],"allergies":["Milk"]}`,
			prepareMocks: func() {
				mockSvc.On("Scan", mock.MatchedBy(func(req domain.ScanRequest) bool {
					return len(req.Dishes) == 1 && len(req.Dishes[0].Ingredients) == 0
				})).Return(domain.ScanResponse{Results: []dietary.DishScan{}}).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodPost, "/api/menus/scan", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_scanMenu_MalformedDishDoesNotHideWarnings(t *testing.T) {
	svc := service.NewMenuService(nil, nil, nil, nil, nil)
	r := mux.NewRouter()
	httpapi.NewHandler(svc).RegisterRoutes(r)

	payloads := map[string]string{
		"numeric name": `{"dishes":[{"dish":"Pad Thai","ingredients":["rice noodles","peanuts"]},{"dish":42,"ingredients":["rice"]}],"allergies":["Peanuts"]}`,
		"non-object":   `{"dishes":[{"dish":"Pad Thai","ingredients":["rice noodles","peanuts"]},"garbage"],"allergies":["Peanuts"]}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/menus/scan", bytes.NewBufferString(payload))
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			var resp domain.ScanResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			require.Len(t, resp.Results, 2)
			assert.Equal(t, "Pad Thai", resp.Results[0].Dish.Name)
			assert.Equal(t, []string{"peanuts"}, resp.Results[0].FlaggedIngredients)
			assert.False(t, resp.Results[1].IsFlagged)
			assert.Equal(t, 1, resp.Summary.FlaggedDishes)
		})
	}
}

func TestHandler_saveMenu(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		path         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			path:    "/api/restaurants/5/menu",
			payload: `{"items":[{"dish":"Pho","ingredients":["beef","rice noodles"],"price":"$14"}]}`,
			prepareMocks: func() {
				mockSvc.On("SaveMenu", mock.Anything, 5, mock.AnythingOfType("[]dietary.Dish")).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "empty menu",
			path:    "/api/restaurants/5/menu",
			payload: `{"items":[]}`,
			prepareMocks: func() {
				mockSvc.On("SaveMenu", mock.Anything, 5, mock.Anything).Return(service.ErrEmptyMenu).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid restaurant id",
			path:         "/api/restaurants/abc/menu",
			payload:      `{"items":[]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			path:         "/api/restaurants/5/menu",
			payload:      `{`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "database failure",
			path:    "/api/restaurants/5/menu",
			payload: `{"items":[{"dish":"Pho"}]}`,
			prepareMocks: func() {
				mockSvc.On("SaveMenu", mock.Anything, 5, mock.Anything).Return(errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodPut, testCase.path, bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getMenu(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetMenu", mock.Anything, 5).Return(sampleMenu, nil).Once()
	mockSvc.On("GetMenu", mock.Anything, 6).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/5/menu", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var dishes []dietary.Dish
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&dishes))
	assert.Len(t, dishes, 3)

	req = httptest.NewRequest(http.MethodGet, "/api/restaurants/6/menu", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHandler_scanRestaurantMenu(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
	}{
		{
			name: "success",
			path: "/api/restaurants/5/menu/scan?user_id=user-1",
			prepareMocks: func() {
				mockSvc.On("ScanRestaurant", mock.Anything, 5, "user-1").
					Return(&domain.ScanResponse{RestaurantID: 5, UserID: "user-1", Results: []dietary.DishScan{}}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "menu not found",
			path: "/api/restaurants/8/menu/scan?user_id=user-1",
			prepareMocks: func() {
				mockSvc.On("ScanRestaurant", mock.Anything, 8, "user-1").Return(nil, service.ErrMenuNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "negative restaurant id",
			path:         "/api/restaurants/-2/menu/scan",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getMenuQRCode(t *testing.T) {
	mockSvc := mocks.NewMenuServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("QRCode", 5).Return([]byte("\x89PNG"), nil).Once()
	mockSvc.On("QRCode", 6).Return(nil, errors.New("encode failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/5/menu/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))

	req = httptest.NewRequest(http.MethodGet, "/api/restaurants/6/menu/qrcode", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
