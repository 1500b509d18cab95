// ABOUTME: In-memory CRM backend for view tests
// ABOUTME: Serves lead, account, contact, and task collections over httptest
package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
)

// fakeCRM serves collections of loosely-typed records and applies partial
// updates the way the real backend does, including deriving lead status
// from stage.
type fakeCRM struct {
	mu     sync.Mutex
	nextID int
	// records per collection path segment, e.g. "leads"
	records map[string][]map[string]any
	// gets counts list fetches per collection
	gets map[string]int
	// fail returns a 500 for the named collections
	fail map[string]bool
}

func newFakeCRM() *fakeCRM {
	return &fakeCRM{
		nextID:  1,
		records: make(map[string][]map[string]any),
		gets:    make(map[string]int),
		fail:    make(map[string]bool),
	}
}

func (f *fakeCRM) add(collection string, record map[string]any) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	record["id"] = id
	f.records[collection] = append(f.records[collection], record)
	return id
}

func (f *fakeCRM) getCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets[collection]
}

func (f *fakeCRM) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail[collection] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if r.URL.Path == "/dashboard/stats" {
		f.serveStats(w)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		f.gets[collection]++
		records := f.records[collection]
		if records == nil {
			records = []map[string]any{}
		}
		_ = json.NewEncoder(w).Encode(records)

	case len(parts) == 1 && r.Method == http.MethodPost:
		var record map[string]any
		_ = json.NewDecoder(r.Body).Decode(&record)
		record["id"] = f.nextID
		f.nextID++
		deriveLeadStatus(collection, record)
		f.records[collection] = append(f.records[collection], record)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(record)

	case len(parts) == 2 && r.Method == http.MethodPatch:
		id, _ := strconv.Atoi(parts[1])
		var fields map[string]any
		_ = json.NewDecoder(r.Body).Decode(&fields)
		for _, record := range f.records[collection] {
			if int(record["id"].(int)) != id {
				continue
			}
			for k, v := range fields {
				record[k] = v
			}
			deriveLeadStatus(collection, record)
			_ = json.NewEncoder(w).Encode(record)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not found"})

	case len(parts) == 2 && r.Method == http.MethodDelete:
		id, _ := strconv.Atoi(parts[1])
		records := f.records[collection]
		for i, record := range records {
			if int(record["id"].(int)) != id {
				continue
			}
			f.records[collection] = append(records[:i], records[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not found"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// serveStats mirrors the backend's aggregate query: open counts by status,
// pipeline value in whole dollars over open leads. Caller holds the lock.
func (f *fakeCRM) serveStats(w http.ResponseWriter) {
	openLeads := 0
	var pipelineCents int64
	for _, l := range f.records["leads"] {
		if l["status"] == models.StatusOpen {
			openLeads++
			// seeded records hold int64, records created over HTTP decode
			// their numbers as float64
			switch v := l["value_cents"].(type) {
			case int64:
				pipelineCents += v
			case float64:
				pipelineCents += int64(v)
			}
		}
	}
	openTasks := 0
	for _, task := range f.records["tasks"] {
		if task["status"] == "open" {
			openTasks++
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"open_leads":     openLeads,
		"total_accounts": len(f.records["accounts"]),
		"open_tasks":     openTasks,
		"pipeline_value": float64(pipelineCents) / 100,
	})
}

func deriveLeadStatus(collection string, record map[string]any) {
	if collection != "leads" {
		return
	}
	switch record["stage"] {
	case models.StageClosedWon:
		record["status"] = models.StatusClosedWon
	case models.StageClosedLost:
		record["status"] = models.StatusClosedLost
	default:
		record["status"] = models.StatusOpen
	}
}

func newTestClient(t *testing.T, crm *fakeCRM) *api.Client {
	t.Helper()
	ts := httptest.NewServer(crm)
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL)
}

func leadRecord(title, stage string, valueCents int64) map[string]any {
	record := map[string]any{
		"title":       title,
		"stage":       stage,
		"value_cents": valueCents,
		"probability": 50,
	}
	deriveLeadStatus("leads", record)
	return record
}

func intPtr(n int) *int { return &n }
