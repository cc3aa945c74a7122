package main

import (
	"encoding/json"
	"frontrow/src/middlewares"
	"frontrow/src/types"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type TestSuite struct {
	suite.Suite
}

func (s *TestSuite) SetupSuite() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("showdate", showDateValidatorFunc)
	}
}

// stubAuth stands in for the JWT middleware so handler behavior can be
// exercised without a database.
func stubAuth(id uint, email string, role types.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("id", id)
		ctx.Set("email", email)
		ctx.Set("role", role)
	}
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestBookingRequiresToken() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	bookingHandlers(apiv1)

	s.Run("Should reject a request without a token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject a bare Bearer header", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should reject an empty token", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestBookingValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(stubAuth(1, "someone@example.com", types.ROLE_USER))
	bookingHandlers(apiv1)

	s.Run("Should reject a booking without a showtime", func() {
		jbody := map[string]any{
			"selectedSeatsData": []map[string]any{
				{"id": "A1", "row": 0, "seat": "1", "type": "standard", "price": "150.00"},
			},
		}
		sbody, _ := json.Marshal(&jbody)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		body := string(rbytes)
		assert.Equal(s.T(), string(types.BOOKING_INVALID_REQUEST), gjson.Get(body, "reason").String())
		assert.Equal(s.T(), "Showtime ID missing. Cannot proceed with booking.", gjson.Get(body, "message").String())
	})

	s.Run("Should reject a booking without seats", func() {
		jbody := map[string]any{
			"showtimeId": "4e8b1c9a-9b1f-4c3e-917e-2f1de0a4cbe7",
		}
		sbody, _ := json.Marshal(&jbody)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		body := string(rbytes)
		assert.Equal(s.T(), string(types.BOOKING_INVALID_REQUEST), gjson.Get(body, "reason").String())
		assert.Equal(s.T(), "No seats were selected for booking.", gjson.Get(body, "message").String())
	})

	s.Run("Should reject a malformed showtime id", func() {
		jbody := map[string]any{
			"showtimeId": "not-a-uuid",
			"selectedSeatsData": []map[string]any{
				{"id": "A1", "row": 0, "seat": "1", "type": "standard", "price": "150.00"},
			},
		}
		sbody, _ := json.Marshal(&jbody)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.Equal(s.T(), "Showtime ID is not valid.", gjson.Get(string(rbytes), "message").String())
	})
}

func (s *TestSuite) TestBookingRejectsAnonymousUser() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(stubAuth(0, "", types.ROLE_USER))
	bookingHandlers(apiv1)

	jbody := map[string]any{
		"showtimeId": "4e8b1c9a-9b1f-4c3e-917e-2f1de0a4cbe7",
		"selectedSeatsData": []map[string]any{
			{"id": "A1", "row": 0, "seat": "1", "type": "standard", "price": "150.00"},
		},
	}
	sbody, _ := json.Marshal(&jbody)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), string(types.BOOKING_UNAUTHORIZED), gjson.Get(string(rbytes), "reason").String())
}

func (s *TestSuite) TestAdminGate() {
	router := setupRouter()
	admin := router.Group("/api/v1/admin")
	admin.Use(stubAuth(1, "someone@example.com", types.ROLE_USER), middlewares.AdminOnly)
	adminHandlers(admin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/tickets", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 403, w.Code)
}

func (s *TestSuite) TestShowDateValidator() {
	router := setupRouter()
	admin := router.Group("/api/v1/admin")
	admin.Use(stubAuth(1, "someone@example.com", types.ROLE_ADMIN), middlewares.AdminOnly)
	adminHandlers(admin)

	jbody := map[string]any{
		"title":       "Interstellar",
		"language":    "English",
		"genre":       []string{"Sci-Fi"},
		"duration":    169,
		"releaseDate": "not-a-date",
		"poster":      "https://example.com/poster.jpg",
		"showtimes": []map[string]any{
			{
				"time":    "18:30",
				"theater": "Screen 1",
				"seatPrices": []map[string]any{
					{"seatType": "standard", "price": "150.00"},
				},
			},
		},
	}
	sbody, _ := json.Marshal(&jbody)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/admin/movies", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
}

func (s *TestSuite) TestMovieUpdateBody() {
	router := setupRouter()
	admin := router.Group("/api/v1/admin")
	admin.Use(stubAuth(1, "someone@example.com", types.ROLE_ADMIN), middlewares.AdminOnly)
	adminHandlers(admin)

	// A scalar-only edit binds without any showtimes; the unknown movie id
	// is what stops it, not validation.
	jbody := map[string]any{
		"title":       "Interstellar",
		"language":    "English",
		"genre":       []string{"Sci-Fi"},
		"duration":    169,
		"releaseDate": "2014-11-07",
		"poster":      "https://example.com/poster.jpg",
	}
	sbody, _ := json.Marshal(&jbody)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/admin/movies/not-a-uuid", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 404, w.Code)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
