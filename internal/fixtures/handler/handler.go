package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"eutestdata/internal/fixtures"
	"eutestdata/internal/personalid"
	"eutestdata/internal/personalid/scheme"
	"eutestdata/pkg/platform/httputil"
	"eutestdata/pkg/requestcontext"
)

// Service defines the fixture operations exposed over HTTP.
type Service interface {
	GenerateIBANs(ctx context.Context, req fixtures.IBANRequest) (*fixtures.IBANBatch, error)
	ValidateIBAN(ctx context.Context, input string) fixtures.IBANCheck
	IBANCountries(ctx context.Context) []fixtures.IBANCountry
	GenerateIDs(ctx context.Context, req fixtures.IDRequest) (*fixtures.IDBatch, error)
	ParseID(ctx context.Context, country, code string) (scheme.Parsed, error)
	IDCountries(ctx context.Context) []personalid.Country
}

// Handler wires the /v1 fixture endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a fixture handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the fixture endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/iban/countries", h.HandleIBANCountries)
	r.Post("/iban/generate", h.HandleGenerateIBANs)
	r.Post("/iban/validate", h.HandleValidateIBAN)
	r.Get("/personal-ids/countries", h.HandleIDCountries)
	r.Post("/personal-ids/generate", h.HandleGenerateIDs)
	r.Post("/personal-ids/parse", h.HandleParseID)
}

// HandleIBANCountries handles GET /iban/countries.
func (h *Handler) HandleIBANCountries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toIBANCountries(h.service.IBANCountries(r.Context())))
}

// HandleGenerateIBANs handles POST /iban/generate.
func (h *Handler) HandleGenerateIBANs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateIBANsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	batch, err := h.service.GenerateIBANs(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "iban generation failed",
			"request_id", requestID,
			"country", req.Country,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "ibans generated",
		"request_id", requestID,
		"count", len(batch.Rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toIBANBatch(batch))
}

// HandleValidateIBAN handles POST /iban/validate.
func (h *Handler) HandleValidateIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ValidateIBANRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toIBANCheck(h.service.ValidateIBAN(ctx, req.IBAN)))
}

// HandleIDCountries handles GET /personal-ids/countries.
func (h *Handler) HandleIDCountries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toIDCountries(h.service.IDCountries(r.Context())))
}

// HandleGenerateIDs handles POST /personal-ids/generate.
func (h *Handler) HandleGenerateIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateIDsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	batch, err := h.service.GenerateIDs(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "personal id generation failed",
			"request_id", requestID,
			"country", req.Country,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toIDBatch(batch))
}

// HandleParseID handles POST /personal-ids/parse.
func (h *Handler) HandleParseID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseIDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	parsed, err := h.service.ParseID(ctx, req.Country, req.Code)
	if err != nil {
		h.logger.InfoContext(ctx, "personal id not parsed",
			"request_id", requestID,
			"country", req.Country,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toParsed(parsed))
}
