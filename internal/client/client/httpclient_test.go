package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHouseConnectClient(srv.URL+"/HouseConnect", opts...)
	require.NoError(t, err)
	return c
}

func TestNewHouseConnectClient_InvalidURL(t *testing.T) {
	_, err := NewHouseConnectClient("ftp://example.com")
	require.Error(t, err)

	_, err = NewHouseConnectClient("://bad")
	require.Error(t, err)
}

func TestLogin_SendsCredentialsAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/HouseConnect/UserAuthentication/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get(common.AuthorizationHeaderName))
		_, err := uuid.Parse(r.Header.Get(common.RequestIDHeaderName))
		assert.NoError(t, err)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "joe", req.Username)
		assert.Equal(t, "pw", req.Password)

		_, _ = io.WriteString(w, `{"authenticationId":1,"username":"joe","userRole":"STUDENT","studentId":7}`)
	})

	resp, err := c.Login(context.Background(), "joe", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), resp.AuthenticationID)
	assert.Equal(t, models.RoleStudent, resp.UserRole)
	require.NotNil(t, resp.StudentID)
	assert.Equal(t, int64(7), *resp.StudentID)
}

func TestRequests_CarryBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get(common.AuthorizationHeaderName))
		assert.Equal(t, "/HouseConnect/Accommodation/read/42", r.URL.Path)
		_, _ = io.WriteString(w, `{"accommodationID":42,"rent":5000,"numberOfRooms":2}`)
	}, WithTokenSource(func() string { return "abc" }))

	a, err := c.GetAccommodation(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), a.AccommodationID)
	assert.Equal(t, 5000.0, a.Rent)
}

func TestStatusErrors_MapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid credentials"}`, ErrUnauthorized, "Invalid credentials"},
		{"forbidden", http.StatusForbidden, ``, common.ErrUnauthorized, "Forbidden"},
		{"not found", http.StatusNotFound, `{"message":"no such listing"}`, common.ErrNotFound, "no such listing"},
		{"plain text", http.StatusBadRequest, `bad payload`, nil, "bad payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.GetAccommodation(context.Background(), 1)
			require.Error(t, err)

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.msg, se.Message)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.False(t, IsUnavailable(err))
		})
	}
}

func TestCreateAccommodation_EmptyBodyKeepsInput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	in := models.Accommodation{AccommodationName: "Loft", Rent: 4200}
	out, err := c.CreateAccommodation(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestCreateBooking_SendsAccommodationIDOnly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		acc, ok := raw["accommodation"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, acc, 1)
		assert.EqualValues(t, 9, acc["accommodationID"])
		_, _ = io.WriteString(w, `{"bookingID":3}`)
	})

	b, err := c.CreateBooking(context.Background(), models.Booking{
		Accommodation: &models.Accommodation{AccommodationID: 9, Rent: 100, AccommodationName: "x"},
		TotalAmount:   300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.BookingID)
	assert.Equal(t, 300.0, b.TotalAmount)
}

func TestApproveApplication_Path(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/HouseConnect/applications/5/approve", r.URL.Path)
	})

	app, err := c.ApproveApplication(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, app.ApplicationStatus)
	assert.Equal(t, int64(5), app.ApplicationID)
}

func TestPing_AnyStatusIsReachable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, c.Ping(context.Background()))
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewHouseConnectClient(url)
	require.NoError(t, err)

	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestTimeout_IsUnavailable(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := c.ListAccommodations(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	url := srv.URL
	srv.Close()

	c, err := NewHouseConnectClient(url, WithBreakerThreshold(2, time.Minute))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
	}

	err = c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Zero(t, hits.Load())
}

func TestBreaker_IgnoresHTTPErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, WithBreakerThreshold(1, time.Minute))

	for i := 0; i < 3; i++ {
		_, err := c.ListStudents(context.Background())
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	}
}
