package parser

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/dependency"
)

const parsed = `{"model":"en_core_web_sm","tokens":[
	{"i":0,"head":1,"dep":"nsubj","pos":"PRON","tag":"PRP","idx":0,"text":"I"},
	{"i":1,"head":1,"dep":"ROOT","pos":"VERB","tag":"VBP","idx":2,"text":"run"},
	{"i":2,"head":1,"dep":"punct","pos":"PUNCT","tag":".","idx":5,"text":"."}]}`

type fakeService struct {
	parses  int32
	healthy bool
	body    string
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/health":
		if !f.healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	case "/parse":
		atomic.AddInt32(&f.parses, 1)
		var req parseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(f.body))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestHandle_Parse(t *testing.T) {
	service := &fakeService{healthy: true, body: parsed}
	server := httptest.NewServer(service)
	defer server.Close()

	h := New(Config{Url: server.URL + "/", TimeoutMs: 1000}, nil, nil)
	assert.True(t, h.Ready())

	doc, err := h.Parse("I run.")
	require.NoError(t, err)
	require.Len(t, doc.Tokens, 3)
	assert.Equal(t, "run", doc.Tokens[1].Text)
	assert.True(t, doc.IsRoot(doc.Tokens[1]))
}

func TestHandle_Unhealthy(t *testing.T) {
	service := &fakeService{healthy: false, body: parsed}
	server := httptest.NewServer(service)
	defer server.Close()

	h := New(Config{Url: server.URL}, nil, nil)
	assert.False(t, h.Ready())

	// becoming healthy later does not change the outcome of the probe
	service.healthy = true
	assert.False(t, h.Ready())
}

func TestHandle_NotConfigured(t *testing.T) {
	h := New(Config{}, nil, nil)
	assert.False(t, h.Ready())
	_, err := h.Parse("I run.")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestHandle_InitialisesOnce(t *testing.T) {
	var calls int32
	h := NewHandle(func() (Fetcher, error) {
		atomic.AddInt32(&calls, 1)
		return NewSpacy(Config{Url: "http://127.0.0.1:0"}, nil), nil
	})
	for i := 0; i < 3; i++ {
		h.Ready()
		_, _ = h.Parse("x")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHandle_BadResponses(t *testing.T) {
	for body, malformed := range map[string]bool{
		`{"model":"m","tokens":[{"i":0,"head":9}]}`: true,
		`{"model":"m"}`: true,
		`not json`:      false,
	} {
		server := httptest.NewServer(&fakeService{healthy: true, body: body})
		h := New(Config{Url: server.URL}, nil, nil)

		_, err := h.Parse("I run.")
		if malformed {
			assert.ErrorIs(t, err, dependency.ErrMalformedParse, body)
		} else {
			assert.Error(t, err, body)
		}

		_, err = h.Parse("")
		assert.Error(t, err)
		server.Close()
	}
}

func TestCached(t *testing.T) {
	service := &fakeService{healthy: true, body: parsed}
	server := httptest.NewServer(service)
	defer server.Close()

	store := local.New(10)
	h := New(Config{Url: server.URL}, nil, store)

	for i := 0; i < 3; i++ {
		doc, err := h.Parse("I run.")
		require.NoError(t, err)
		assert.Len(t, doc.Tokens, 3)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&service.parses))
	assert.Equal(t, 1, store.Len())

	lookup, err := store.Get(cache.Key("I run."))
	require.NoError(t, err)
	assert.Equal(t, "en_core_web_sm", lookup.Model)
}

func TestNewCache(t *testing.T) {
	c, err := NewCache(CacheConfig{Backend: cache.None}, remoteRedis, remoteEs)
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = NewCache(CacheConfig{Backend: cache.Local, Size: 5}, remoteRedis, remoteEs)
	assert.NoError(t, err)
	assert.True(t, c.Ready())

	_, err = NewCache(CacheConfig{Backend: "memcached"}, remoteRedis, remoteEs)
	assert.Error(t, err)
}

var (
	remoteRedis = remote.RedisConfig{Host: "localhost", Port: 6379}
	remoteEs    = remote.ElasticsearchConfig{Host: "localhost", Port: 9200, Index: "parses"}
)
