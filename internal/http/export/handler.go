package export

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pillars/internal/export"
	"github.com/MrJamesThe3rd/pillars/internal/http/rest"
)

type Handler struct {
	svc       *export.Service
	exportDir string
}

func NewHandler(svc *export.Service, exportDir string) *Handler {
	return &Handler{svc: svc, exportDir: exportDir}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.run)
	r.Post("/download", h.download)
}

type runResponse struct {
	ID      uuid.UUID `json:"id"`
	Files   []string  `json:"files"`
	Summary string    `json:"summary"`
}

// run writes the CSV files to the configured export directory and returns
// what was written.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Export(h.exportDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	files := make([]string, len(run.Files))
	for i, f := range run.Files {
		files[i] = filepath.Base(f)
	}

	rest.JSON(w, http.StatusCreated, runResponse{
		ID:      run.ID,
		Files:   files,
		Summary: run.Summary,
	})
}

// download streams the export as a single zip archive.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	tmpDir, err := os.MkdirTemp("", "pillars-export-*")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	run, err := h.svc.Export(tmpDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "summary.txt"), []byte(run.Summary), 0o644); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"export_%s.zip\"", time.Now().Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	err = filepath.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		relPath, _ := filepath.Rel(tmpDir, path)

		zf, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(zf, f)

		return err
	})
	if err != nil {
		slog.Error("failed to create zip", "error", err)
	}
}
