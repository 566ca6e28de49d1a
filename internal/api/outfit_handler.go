package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/outfit-api/internal/api/shared"
	"github.com/phrazzld/outfit-api/internal/domain"
	"github.com/phrazzld/outfit-api/internal/platform/logger"
	"github.com/phrazzld/outfit-api/internal/platform/metrics"
	"github.com/phrazzld/outfit-api/internal/service"
)

// OutfitHandler handles outfit-related HTTP requests
type OutfitHandler struct {
	outfitService service.OutfitService
	logger        *slog.Logger
	metrics       *metrics.Registry
}

// HandlerOption configures an OutfitHandler.
type HandlerOption func(*OutfitHandler)

// WithMetrics records one outfit_builds_total increment per request,
// labeled with its outcome.
func WithMetrics(reg *metrics.Registry) HandlerOption {
	return func(h *OutfitHandler) {
		h.metrics = reg
	}
}

// NewOutfitHandler creates a new OutfitHandler
func NewOutfitHandler(
	outfitService service.OutfitService,
	logger *slog.Logger,
	opts ...HandlerOption,
) (*OutfitHandler, error) {
	if outfitService == nil {
		return nil, errors.New("outfit service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := &OutfitHandler{
		outfitService: outfitService,
		logger:        logger.With("component", "outfit_handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// BuildOutfits handles POST /build-outfits requests
func (h *OutfitHandler) BuildOutfits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req BuildOutfitsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		// Missing keys and mistyped fields carry field paths for the client
		if errors.Is(err, domain.ErrValidation) {
			h.fail(w, r, err)
			return
		}
		log.Debug("failed to decode wishlist", "error", err)
		h.recordOutcome(r, kindInvalidRequest.String())
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		h.fail(w, r, err)
		return
	}

	outfits, err := h.outfitService.BuildOutfits(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.recordOutcome(r, "ok")
	shared.RespondWithJSON(w, r, http.StatusOK, outfits)
}

func (h *OutfitHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.recordOutcome(r, classifyError(err).String())
	HandleAPIError(w, r, err)
}

func (h *OutfitHandler) recordOutcome(r *http.Request, outcome string) {
	h.metrics.Inc(r.Context(), metrics.OutfitBuildsTotal, map[string]string{"outcome": outcome}, 1)
}

// Health handles GET /health requests
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleAPIError writes the status code and client-safe message for err and
// logs the redacted error with the request trace ID.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
