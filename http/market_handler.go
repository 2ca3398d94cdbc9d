package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"investsim/service"
)

type MarketHandler struct {
	service *service.MarketService
	logger  *slog.Logger
}

func NewMarketHandler(service *service.MarketService, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{service: service, logger: logger.With("module", "market")}
}

func (h *MarketHandler) CurrentCDIRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.CurrentCDIRate(r.Context()))
}

func (h *MarketHandler) CurrentSelicRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.CurrentSelicRate(r.Context()))
}

func (h *MarketHandler) CDIHistory(w http.ResponseWriter, r *http.Request) {
	days := service.DefaultCDIHistoryLen
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "days must be an integer", nil)
			return
		}
		days = n
	}

	history, err := h.service.CDIHistory(r.Context(), days)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHistoryDays) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.logger.Error("failed to build CDI history", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, history)
}

func (h *MarketHandler) MainQuotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.MainQuotes(r.Context()))
}

func (h *MarketHandler) CurrencyQuotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.CurrencyQuotes(r.Context()))
}

func (h *MarketHandler) StockIndices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.StockIndices(r.Context()))
}

func (h *MarketHandler) ChartData(w http.ResponseWriter, r *http.Request) {
	chart, err := h.service.ChartData(r.Context(), chi.URLParam(r, "symbol"), r.URL.Query().Get("period"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidChartPeriod) {
			writeError(w, h.logger, http.StatusBadRequest, "period must be one of 1D, 1W, 1M, 1Y", nil)
			return
		}
		h.logger.Error("failed to build chart", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, chart)
}
