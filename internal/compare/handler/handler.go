package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
	compareSvc "github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/service"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/config"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/fileio"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/report"
)

// Compare returns the http.HandlerFunc for POST /compare. The request
// carries the two report downloads as multipart files "fileRES" and
// "fileVPP"; thresholds may be overridden per request via form fields.
func Compare(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reqID := r.Header.Get("X-Request-ID")
		log := logger
		if reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		fileRES, headerRES, err := r.FormFile("fileRES")
		if err != nil {
			http.Error(w, "missing fileRES: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer fileRES.Close()

		fileVPP, headerVPP, err := r.FormFile("fileVPP")
		if err != nil {
			http.Error(w, "missing fileVPP: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer fileVPP.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		rowsRES, err := fileio.ReadAnyMaps(fileRES, headerRES.Filename, headerRow)
		if err != nil {
			http.Error(w, "failed to read RES report: "+err.Error(), http.StatusBadRequest)
			return
		}
		rowsVPP, err := fileio.ReadAnyMaps(fileVPP, headerVPP.Filename, headerRow)
		if err != nil {
			http.Error(w, "failed to read VPP report: "+err.Error(), http.StatusBadRequest)
			return
		}

		opt := model.Options{
			MatchThreshold:     toFloat(r.FormValue("match_threshold"), cfg.MatchThreshold),
			HighlightThreshold: toFloat(r.FormValue("highlight_threshold"), cfg.HighlightThreshold),
			KeyMarker:          cfg.KeyMarker,
		}

		res := toAccounts(rowsRES)
		vpp := toAccounts(rowsVPP)

		result := compareSvc.Run(res, vpp, opt)

		path, err := report.Export(result, report.Options{
			OutputDir:          cfg.OutputDir,
			HighlightThreshold: opt.HighlightThreshold,
		}, log)
		if err != nil {
			log.Error().Err(err).Msg("export workbook")
			http.Error(w, "failed to export workbook: "+err.Error(), http.StatusInternalServerError)
			return
		}
		result.File = path

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("rowsRES", len(res)).
			Int("rowsVPP", len(vpp)).
			Int("summary", len(result.Summary)).
			Int("matches", len(result.Matches)).
			Int("duplicates", len(result.Duplicates)).
			Str("file", path).
			Dur("elapsed", time.Since(start)).
			Msg("compare done")
	}
}
