package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
	"github.com/MrJamesThe3rd/pillars/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	finSvc    *financial.Service
}

func NewHandler(importSvc *importer.Service, finSvc *financial.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		finSvc:    finSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/preview", h.preview)
}

type importSuccessResponse struct {
	Imported     int                     `json:"imported"`
	Transactions []financial.Transaction `json:"transactions"`
}

type previewResponse struct {
	Count        int                           `json:"count"`
	Transactions []financial.TransactionParams `json:"transactions"`
}

// importCSV parses an uploaded statement and creates the transactions in one
// step.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	txs := h.finSvc.CreateTransactions(params)

	rest.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported:     len(txs),
		Transactions: txs,
	})
}

// preview parses an uploaded statement without creating anything, so the
// client can show the rows before confirming.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	rest.JSON(w, http.StatusOK, previewResponse{
		Count:        len(params),
		Transactions: params,
	})
}

func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) ([]financial.TransactionParams, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		http.Error(w, "source field is required", http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return params, true
}
