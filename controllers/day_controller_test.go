package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shreshthco18-lgtm/calorie-tracker/models"
	"github.com/shreshthco18-lgtm/calorie-tracker/services"
	"github.com/shreshthco18-lgtm/calorie-tracker/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctrl := NewDayController(services.NewLedgerService(db))

	r := gin.New()
	r.GET("/api/days", ctrl.ListDays)
	r.POST("/api/meals", ctrl.AddMeal)
	r.PUT("/api/days/reset", ctrl.ResetDay)
	return r, db
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeRecord(t *testing.T, w *httptest.ResponseRecorder) models.DayRecord {
	t.Helper()
	var rec models.DayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	return rec
}

func TestMealAndResetFlow(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meals", `{"calories":500,"protein":30,"date":"2024-01-15"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rec := decodeRecord(t, w)
	assert.Equal(t, "2024-01-15", rec.Date)
	assert.Equal(t, 500.0, rec.TotalCalories)
	assert.Equal(t, 30.0, rec.TotalProtein)

	w = doJSON(r, http.MethodPost, "/api/meals", `{"calories":200,"protein":10,"date":"2024-01-15"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rec = decodeRecord(t, w)
	assert.Equal(t, 700.0, rec.TotalCalories)
	assert.Equal(t, 40.0, rec.TotalProtein)

	w = doJSON(r, http.MethodPut, "/api/days/reset", `{"date":"2024-01-15"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rec = decodeRecord(t, w)
	assert.Equal(t, 0.0, rec.TotalCalories)
	assert.Equal(t, 0.0, rec.TotalProtein)

	w = doJSON(r, http.MethodGet, "/api/days", "")
	require.Equal(t, http.StatusOK, w.Code)
	var days []models.DayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 1)
	assert.Equal(t, "2024-01-15", days[0].Date)
}

func TestAddMealRejectsMissingFields(t *testing.T) {
	r, db := setupRouter(t)

	cases := map[string]string{
		"missing calories": `{"protein":30,"date":"2024-01-15"}`,
		"missing protein":  `{"calories":500,"date":"2024-01-15"}`,
		"missing date":     `{"calories":500,"protein":30}`,
		"empty body":       `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/meals", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&models.DayRecord{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAddMealRejectsNonNumericValues(t *testing.T) {
	r, db := setupRouter(t)

	for _, body := range []string{
		`{"calories":"abc","protein":30,"date":"2024-01-15"}`,
		`{"calories":500,"protein":"lots","date":"2024-01-15"}`,
	} {
		w := doJSON(r, http.MethodPost, "/api/meals", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}

	var count int64
	require.NoError(t, db.Model(&models.DayRecord{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAddMealRejectsMalformedDates(t *testing.T) {
	r, _ := setupRouter(t)

	for _, date := range []string{"01/15/2024", "2024-1-5", "2024-13-01", "2024-02-30", "not-a-date"} {
		w := doJSON(r, http.MethodPost, "/api/meals", `{"calories":500,"protein":30,"date":"`+date+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "date %q should be rejected", date)
	}
}

func TestResetDayRejectsMalformedDates(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/days/reset", `{"date":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPut, "/api/days/reset", `{"date":"yesterday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetDayCreatesRecordForUnknownDate(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/days/reset", `{"date":"2024-06-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rec := decodeRecord(t, w)
	assert.Equal(t, "2024-06-01", rec.Date)
	assert.Equal(t, 0.0, rec.TotalCalories)
	assert.Equal(t, 0.0, rec.TotalProtein)
}

func TestListDaysMostRecentFirst(t *testing.T) {
	r, _ := setupRouter(t)

	for _, date := range []string{"2024-01-14", "2024-01-16", "2024-01-15"} {
		w := doJSON(r, http.MethodPost, "/api/meals", `{"calories":100,"protein":5,"date":"`+date+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/days", "")
	require.Equal(t, http.StatusOK, w.Code)
	var days []models.DayRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 3)
	assert.Equal(t, "2024-01-16", days[0].Date)
	assert.Equal(t, "2024-01-15", days[1].Date)
	assert.Equal(t, "2024-01-14", days[2].Date)
}
