package advisory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/transit-cli/api"
)

const advisoriesJSON = `{
	"service-advisories": [
		{
			"key": 96,
			"priority": 2,
			"title": "Route 15 Detour",
			"body": "Detour via *Mountain Avenue*.\n** Stop 10064 closed",
			"category": "Transit",
			"updated-at": "2023-11-02T14:05:00"
		}
	]
}`

const advisoryJSON = `{
	"service-advisory": {
		"key": 96,
		"priority": 2,
		"title": "Route 15 Detour",
		"body": "Detour via *Mountain Avenue*.\n** Stop 10064 closed",
		"category": "Transit",
		"updated-at": "2023-11-02T14:05:00"
	}
}`

func newTestServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("api-key"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewCmdAdvisory(t *testing.T) {
	cmd := NewCmdAdvisory()
	assert.Equal(t, "advisory", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestRunList_Success(t *testing.T) {
	server := newTestServer(t, advisoriesJSON)
	client := api.NewClient(server.URL, "test-key")

	var buf bytes.Buffer
	opts := &listOptions{noColor: true, out: &buf}

	err := runList(opts, client)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "KEY")
	assert.Contains(t, output, "96")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Route 15 Detour")
	assert.Contains(t, output, "Detour via Mountain Avenue.")
	assert.Contains(t, output, "2023-11-02 14:05")
}

func TestRunList_Filters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("priority"))
		assert.Equal(t, "handi-transit", q.Get("category"))
		assert.Equal(t, "3", q.Get("max_age"))
		assert.Equal(t, "short", q.Get("usage"))
		w.Write([]byte(`{"service-advisories": []}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	opts := &listOptions{
		filterFlags: filterFlags{priority: "very-high", category: "handi-transit", maxAge: 3, usage: "short"},
		noColor:     true,
		out:         &buf,
	}

	err := runList(opts, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No service advisories found.")
}

func TestRunList_InvalidFilters(t *testing.T) {
	client := api.NewClient("https://unused.example.com", "test-key")

	tests := []struct {
		name   string
		flags  filterFlags
		target error
	}{
		{"priority", filterFlags{priority: "urgent"}, api.ErrInvalidPriority},
		{"category", filterFlags{category: "bus"}, api.ErrInvalidCategory},
		{"usage", filterFlags{usage: "tiny"}, api.ErrInvalidUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runList(&listOptions{filterFlags: tt.flags, noColor: true}, client)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRunList_JSONOutput(t *testing.T) {
	server := newTestServer(t, advisoriesJSON)

	var buf bytes.Buffer
	opts := &listOptions{output: "json", noColor: true, out: &buf}

	err := runList(opts, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	var result []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Route 15 Detour", result[0]["title"])
	assert.Equal(t, "2023-11-02T14:05:00", result[0]["updated-at"])
}

func TestRunList_InvalidOutputFormat(t *testing.T) {
	err := runList(&listOptions{output: "xml"}, api.NewClient("https://unused.example.com", "k"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunList_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid API key"}`))
	}))
	defer server.Close()

	err := runList(&listOptions{noColor: true}, api.NewClient(server.URL, "bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list service advisories")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestRunView_Markdown(t *testing.T) {
	server := newTestServer(t, advisoryJSON)

	var buf bytes.Buffer
	err := runView("96", &viewOptions{noColor: true, out: &buf}, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Route 15 Detour")
	assert.Contains(t, output, "high (2)")
	assert.Contains(t, output, "- Stop 10064 closed")
}

func TestRunView_HTML(t *testing.T) {
	server := newTestServer(t, advisoryJSON)

	var buf bytes.Buffer
	err := runView("96", &viewOptions{html: true, noColor: true, out: &buf}, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<b>Mountain Avenue</b>")
	assert.Contains(t, buf.String(), "<ul><li>Stop 10064 closed</li></ul>")
}

func TestRunView_Raw(t *testing.T) {
	server := newTestServer(t, advisoryJSON)

	var buf bytes.Buffer
	err := runView("96", &viewOptions{raw: true, noColor: true, out: &buf}, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "** Stop 10064 closed")
}

func TestRunView_JSONOutput(t *testing.T) {
	server := newTestServer(t, advisoryJSON)

	var buf bytes.Buffer
	err := runView("96", &viewOptions{output: "json", noColor: true, out: &buf}, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, float64(96), result["key"])
}

func TestRunView_InvalidKey(t *testing.T) {
	err := runView("abc", &viewOptions{}, api.NewClient("https://unused.example.com", "k"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestRunView_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Service advisory not found"}`))
	}))
	defer server.Close()

	err := runView("5", &viewOptions{noColor: true}, api.NewClient(server.URL, "k"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get service advisory")
}

func TestRunHTML_Fragment(t *testing.T) {
	server := newTestServer(t, advisoriesJSON)

	var buf bytes.Buffer
	err := runHTML(&htmlOptions{out: &buf}, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, `<details class="advisory"><summary class="advisory-summary">Route 15 Detour</summary>`))
	assert.Contains(t, output, "</details><hr>")
}

func TestRunHTML_StandaloneFile(t *testing.T) {
	server := newTestServer(t, advisoriesJSON)
	outFile := filepath.Join(t.TempDir(), "advisories.html")

	opts := &htmlOptions{
		engine:     "goldmark",
		standalone: true,
		style:      "github",
		outFile:    outFile,
	}
	err := runHTML(opts, api.NewClient(server.URL, "test-key"))
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), ".chroma")
	assert.Contains(t, string(data), "<li>Stop 10064 closed</li>")
}

func TestRunHTML_UnknownEngine(t *testing.T) {
	err := runHTML(&htmlOptions{engine: "pandoc"}, api.NewClient("https://unused.example.com", "k"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown markdown engine")
}
