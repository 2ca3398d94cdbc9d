package http

import (
	"errors"
	"log/slog"
	"net/http"

	"investsim/domain"
	"investsim/metrics"
	"investsim/service"
)

const invalidInputMessage = "Dados de entrada inválidos"

// SimulationHandler exposes the simulation engine over HTTP. It holds no
// state besides its logger: every request is computed independently.
type SimulationHandler struct {
	logger *slog.Logger
}

func NewSimulationHandler(logger *slog.Logger) *SimulationHandler {
	return &SimulationHandler{logger: logger.With("module", "simulation")}
}

func (h *SimulationHandler) CalculateCDBBasic(w http.ResponseWriter, r *http.Request) {
	simulate(h, w, r, metrics.KindCDBBasic, service.CalculateCDBBasic)
}

func (h *SimulationHandler) CalculateCDBWithIPO(w http.ResponseWriter, r *http.Request) {
	simulate(h, w, r, metrics.KindCDBWithIPO, service.CalculateCDBWithIPO)
}

func (h *SimulationHandler) CalculateCDBWithIPOInflation(w http.ResponseWriter, r *http.Request) {
	simulate(h, w, r, metrics.KindCDBWithIPOInflation, service.CalculateCDBWithIPOInflation)
}

func simulate[In, Out any](
	h *SimulationHandler,
	w http.ResponseWriter,
	r *http.Request,
	kind string,
	calculate func(In) (Out, error),
) {
	metrics.SimulationRequests.WithLabelValues(kind).Inc()

	var input In
	if err := decodeJSON(w, r, &input); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	result, err := calculate(input)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.SimulationRejections.WithLabelValues(kind, metrics.ReasonValidation).Inc()
			writeError(w, h.logger, http.StatusBadRequest, invalidInputMessage, verr.Messages)
		case errors.Is(err, service.ErrNonFiniteResult):
			metrics.SimulationRejections.WithLabelValues(kind, metrics.ReasonNonFinite).Inc()
			h.logger.Warn("simulation overflowed", "kind", kind, "error", err)
			writeError(w, h.logger, http.StatusUnprocessableEntity, "Simulação gerou valores fora do intervalo numérico", []string{err.Error()})
		default:
			h.logger.Error("simulation failed", "kind", kind, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

type yearsRequest struct {
	Years *float64 `json:"years"`
}

type monthsRequest struct {
	Months *float64 `json:"months"`
}

func (h *SimulationHandler) YearsToDays(w http.ResponseWriter, r *http.Request) {
	var req yearsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	days, err := convert(req.Years, service.YearsToDays)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Número de anos deve ser maior que zero", nil)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, domain.PeriodConversion{Days: days})
}

func (h *SimulationHandler) MonthsToDays(w http.ResponseWriter, r *http.Request) {
	var req monthsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, h.logger, err)
		return
	}

	days, err := convert(req.Months, service.MonthsToDays)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Número de meses deve ser maior que zero", nil)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, domain.PeriodConversion{Days: days})
}

func convert(v *float64, fn func(float64) (int, error)) (int, error) {
	if v == nil {
		return 0, service.ErrNonPositivePeriod
	}
	return fn(*v)
}
