package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/config"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
	"github.com/dmitrijs2005/houseconnect/internal/client/session"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- stub backend ----

// backend routes "METHOD /path" (without the context path) to handlers and
// records every request body.
type backend struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     []string
	bodies   map[string][]byte
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/HouseConnect")
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.hits = append(b.hits, key)
	b.bodies[key] = body
	h, ok := b.handlers[key]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func (b *backend) body(key string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *backend) hit(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, h := range b.hits {
		if h == key {
			return true
		}
	}
	return false
}

func jsonReply(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func statusReply(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

// ---- session storage ----

type memStorage struct {
	mu       sync.Mutex
	token    string
	identity []byte
}

func (m *memStorage) Load(context.Context) (string, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.identity, nil
}

func (m *memStorage) Save(_ context.Context, token string, identity []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.identity = token, identity
	return nil
}

func (m *memStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.identity = "", nil
	return nil
}

func storedStudent() *memStorage {
	return &memStorage{token: "tok", identity: []byte(`{"id":1,"username":"joe","role":"STUDENT","studentId":7}`)}
}

func storedLandlord() *memStorage {
	return &memStorage{token: "tok", identity: []byte(`{"id":2,"username":"ann","role":"LANDLORD","landlordId":3}`)}
}

// ---- app ----

type testApp struct {
	*App
	out     *bytes.Buffer
	backend *backend
	storage *memStorage
}

// newTestApp wires an App against a stub backend. input feeds the prompts;
// the session is hydrated from st before returning.
func newTestApp(t *testing.T, st *memStorage, handlers map[string]http.HandlerFunc, input string) *testApp {
	t.Helper()

	be := &backend{handlers: handlers, bodies: map[string][]byte{}}
	if be.handlers == nil {
		be.handlers = map[string]http.HandlerFunc{}
	}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	if st == nil {
		st = &memStorage{}
	}

	var store *session.Store
	api, err := client.NewHouseConnectClient(srv.URL+"/HouseConnect",
		client.WithTokenSource(func() string { return store.Token() }))
	require.NoError(t, err)
	store = session.NewStore(api, st, logging.NopLogger{})
	store.Hydrate(context.Background())

	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	app := newApp(cfg, logging.NopLogger{}, api, store, bufio.NewReader(strings.NewReader(input)), out)
	return &testApp{App: app, out: out, backend: be, storage: st}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func (ta *testApp) run(t *testing.T, line string) string {
	t.Helper()
	ta.out.Reset()
	parts := strings.Fields(line)
	require.NoError(t, ta.Navigate(context.Background(), parts[0], parts[1:]))
	return ta.out.String()
}

func sampleAccommodation() models.Accommodation {
	return models.Accommodation{
		AccommodationID:     9,
		AccommodationName:   "Loft",
		NumberOfRooms:       2,
		Rent:                5000,
		DistanceFromCampus:  1.2,
		RoomType:            models.RoomSingle,
		BathroomType:        models.BathroomPrivate,
		AccommodationStatus: models.AccommodationAvailable,
		Address:             models.Address{StreetNumber: "12", StreetName: "Main Rd", City: "Cape Town", PostalCode: 7700},
	}
}
