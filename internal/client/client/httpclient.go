package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/common"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const maxResponseBytes = 1 << 20

// TokenSource yields the bearer token for the next request. An empty token
// sends no Authorization header.
type TokenSource func() string

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	logger  logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithBreakerThreshold opens the circuit after n consecutive transport
// failures; it half-opens again after cooldown.
func WithBreakerThreshold(n uint32, cooldown time.Duration) Option {
	return func(c *HTTPClient) { c.breaker = newBreaker(n, cooldown) }
}

func newBreaker(n uint32, cooldown time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "houseconnect-api",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= n
		},
	})
}

// NewHouseConnectClient builds an HTTP client for the backend rooted at
// baseURL, e.g. "http://localhost:8080/HouseConnect".
func NewHouseConnectClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		timeout: 15 * time.Second,
		tokens:  func() string { return "" },
		breaker: newBreaker(5, 30*time.Second),
		logger:  logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + path
}

// send runs one request through the circuit breaker. Only transport
// failures count against the breaker; any HTTP answer is a success for it.
func (c *HTTPClient) send(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var payload []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		payload = b
	default:
		var err error
		payload, err = json.Marshal(b)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}

	var reader io.Reader = http.NoBody
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	started := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, err
		}
		return &response{resp: resp, body: data}, nil
	})
	if err != nil {
		c.logger.Warn(ctx, "backend unreachable", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}

	r := result.(*response)
	c.logger.Debug(ctx, "backend call", "method", method, "path", path, "status", r.resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))
	return r.resp, r.body, nil
}

type response struct {
	resp *http.Response
	body []byte
}

// do sends a request and decodes a 2xx JSON body into out. An empty body
// leaves out untouched.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	resp, data, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/UserAuthentication/login",
		models.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) RegisterStudent(ctx context.Context, signup models.StudentSignup) error {
	return c.do(ctx, http.MethodPost, "/UserAuthentication/api/auth/signup/student", signup, nil)
}

func (c *HTTPClient) RegisterLandlord(ctx context.Context, signup models.LandlordSignup) error {
	return c.do(ctx, http.MethodPost, "/UserAuthentication/api/auth/signup/landlord", signup, nil)
}

func (c *HTTPClient) ListAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := c.do(ctx, http.MethodGet, "/Accommodation/getAllAccommodations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListAccommodationsByLandlord(ctx context.Context, landlordID int64) ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := c.do(ctx, http.MethodGet, "/Accommodation/getByLandlord/"+id(landlordID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetAccommodation(ctx context.Context, accommodationID int64) (*models.Accommodation, error) {
	var out models.Accommodation
	if err := c.do(ctx, http.MethodGet, "/Accommodation/read/"+id(accommodationID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	out := a
	if err := c.do(ctx, http.MethodPost, "/Accommodation/create", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateAccommodation(ctx context.Context, a models.Accommodation) (*models.Accommodation, error) {
	out := a
	if err := c.do(ctx, http.MethodPut, "/Accommodation/update", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteAccommodation(ctx context.Context, accommodationID int64) error {
	return c.do(ctx, http.MethodDelete, "/Accommodation/delete/"+id(accommodationID), nil, nil)
}

func (c *HTTPClient) Assign(ctx context.Context, a models.Assignment) error {
	return c.do(ctx, http.MethodPost, "/assign", a, nil)
}

func (c *HTTPClient) ListApplicationsByLandlord(ctx context.Context, landlordID int64) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications/landlord/"+id(landlordID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications/student/"+id(studentID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	out := models.Application{
		Student:           req.Student,
		Accommodation:     models.Accommodation{AccommodationID: req.Accommodation.AccommodationID},
		ApplicationDate:   req.ApplicationDate,
		ApplicationStatus: req.ApplicationStatus,
	}
	if err := c.do(ctx, http.MethodPost, "/applications/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) setApplicationStatus(ctx context.Context, applicationID int64, action string, status models.ApplicationStatus) (*models.Application, error) {
	out := models.Application{ApplicationID: applicationID, ApplicationStatus: status}
	if err := c.do(ctx, http.MethodPut, "/applications/"+id(applicationID)+"/"+action, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ApproveApplication(ctx context.Context, applicationID int64) (*models.Application, error) {
	return c.setApplicationStatus(ctx, applicationID, "approve", models.ApplicationApproved)
}

func (c *HTTPClient) RejectApplication(ctx context.Context, applicationID int64) (*models.Application, error) {
	return c.setApplicationStatus(ctx, applicationID, "reject", models.ApplicationRejected)
}

func (c *HTTPClient) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	payload, err := b.CreatePayload()
	if err != nil {
		return nil, fmt.Errorf("encode booking: %w", err)
	}
	out := b
	if err := c.do(ctx, http.MethodPost, "/Booking/create", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	var out models.Student
	if err := c.do(ctx, http.MethodGet, "/Student/read/"+id(studentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateStudent(ctx context.Context, s models.Student) (*models.Student, error) {
	out := s
	if err := c.do(ctx, http.MethodPut, "/Student/update", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	if err := c.do(ctx, http.MethodGet, "/Student/getAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetLandlord(ctx context.Context, landlordID int64) (*models.Landlord, error) {
	var out models.Landlord
	if err := c.do(ctx, http.MethodGet, "/landlord/"+id(landlordID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateLandlord(ctx context.Context, l models.Landlord) (*models.Landlord, error) {
	out := l
	if err := c.do(ctx, http.MethodPut, "/landlord/update", l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping reports whether the backend answers at all; any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, _, err := c.send(ctx, http.MethodGet, "/", nil)
	return err
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// IsUnavailable reports whether err means no response was received.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
