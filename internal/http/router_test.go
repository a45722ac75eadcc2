package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/export"
	"github.com/MrJamesThe3rd/pillars/internal/financial"
	pillarsHttp "github.com/MrJamesThe3rd/pillars/internal/http"
	dashboardHandler "github.com/MrJamesThe3rd/pillars/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/pillars/internal/http/export"
	financialHandler "github.com/MrJamesThe3rd/pillars/internal/http/financial"
	importHandler "github.com/MrJamesThe3rd/pillars/internal/http/importcsv"
	intellectualHandler "github.com/MrJamesThe3rd/pillars/internal/http/intellectual"
	physicalHandler "github.com/MrJamesThe3rd/pillars/internal/http/physical"
	spiritualHandler "github.com/MrJamesThe3rd/pillars/internal/http/spiritual"
	"github.com/MrJamesThe3rd/pillars/internal/importer"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	finSvc := financial.NewService(financial.Seed{})
	intelSvc := intellectual.NewService(intellectual.Seed{})
	physSvc := physical.NewService(physical.Seed{})
	spiritSvc := spiritual.NewService(spiritual.Seed{})
	impSvc := importer.NewService()
	expSvc := export.NewService(finSvc)

	router := pillarsHttp.New(
		financialHandler.NewHandler(finSvc),
		intellectualHandler.NewHandler(intelSvc),
		physicalHandler.NewHandler(physSvc),
		spiritualHandler.NewHandler(spiritSvc),
		dashboardHandler.NewHandler(finSvc, intelSvc, physSvc, spiritSvc),
		importHandler.NewHandler(impSvc, finSvc),
		exportHandler.NewHandler(expSvc, t.TempDir()),
		[]string{"*"},
	)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func TestRouter_TransactionCRUD(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/financial/transactions"

	resp := postJSON(t, base, `{"date":"2024-03-15T00:00:00Z","type":"expense","category":"Courses","amount":4250,"description":"Marché"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[financial.Transaction](t, resp)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, int64(4250), created.Amount)

	resp, err := http.Get(base)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[[]financial.Transaction](t, resp)
	require.Len(t, list, 1)

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/%d", base, created.ID),
		strings.NewReader(`{"date":"2024-03-15T00:00:00Z","type":"expense","category":"Courses","amount":5000,"description":"Marché corrigé"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[financial.Transaction](t, resp)
	assert.Equal(t, int64(5000), updated.Amount)

	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), nil)
	require.NoError(t, err)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("%s/%d", base, created.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_UpdateMissingTransaction(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/financial/transactions/99",
		strings.NewReader(`{"amount":100}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_HabitComplete(t *testing.T) {
	ts := newTestServer(t)
	base := ts.URL + "/api/v1/spiritual/habits"

	resp := postJSON(t, base, `{"name":"Méditation matinale","frequency":"daily"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	habit := decode[spiritual.Habit](t, resp)
	assert.Equal(t, 0, habit.Streak)

	resp = postJSON(t, fmt.Sprintf("%s/%d/complete", base, habit.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	completed := decode[spiritual.Habit](t, resp)
	assert.Equal(t, 1, completed.Streak)
	assert.Equal(t, 1, completed.TotalCompletions)

	// Same-day completion counts the total but not the streak.
	resp = postJSON(t, fmt.Sprintf("%s/%d/complete", base, habit.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	again := decode[spiritual.Habit](t, resp)
	assert.Equal(t, 1, again.Streak)
	assert.Equal(t, 2, again.TotalCompletions)
}

func TestRouter_GratitudeRequiresEntries(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/spiritual/gratitude", `{"date":"2024-03-15T00:00:00Z","entries":[],"mood":"good"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_DashboardAndReset(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/financial/transactions", `{"type":"income","amount":100000,"description":"Salaire"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/v1/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	overview := decode[map[string]json.RawMessage](t, resp)
	assert.Contains(t, overview, "financial")
	assert.Contains(t, overview, "spiritual")

	resp = postJSON(t, ts.URL+"/api/v1/reset", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/v1/financial/transactions")
	require.NoError(t, err)

	list := decode[[]financial.Transaction](t, resp)
	assert.Empty(t, list)
}

func TestRouter_ImportCSV(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("source", "bank"))

	fw, err := mw.CreateFormFile("file", "releve.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("Date;Libellé;Montant\n15/03/2024;LOYER;-1 200,00\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/api/v1/import", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	result := decode[struct {
		Imported     int                     `json:"imported"`
		Transactions []financial.Transaction `json:"transactions"`
	}](t, resp)

	require.Equal(t, 1, result.Imported)
	assert.Equal(t, int64(120000), result.Transactions[0].Amount)
	assert.Equal(t, financial.TypeExpense, result.Transactions[0].Type)
}

func TestRouter_Export(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/export", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	run := decode[struct {
		Files   []string `json:"files"`
		Summary string   `json:"summary"`
	}](t, resp)

	assert.Len(t, run.Files, 4)
	assert.Contains(t, run.Files, "transactions.csv")
}
