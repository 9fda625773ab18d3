package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"nestquest/internal/api"
	"nestquest/internal/domain"
	"nestquest/internal/ports"
	"nestquest/internal/taxtable"
	"nestquest/internal/workers/narrativerunner"
)

const (
	defaultWaitTimeout = 30 * time.Second
	maxWaitTimeout     = 5 * time.Minute
	maxBodyBytes       = 1 << 20
)

// Server implements the generated StrictServerInterface.
type Server struct {
	offers      ports.Offers
	comparisons ports.Comparisons
	jobs        ports.NarrativeJobRepository
	processor   narrativerunner.Processor
	tables      *taxtable.Tables
	log         *zap.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(offers ports.Offers, comparisons ports.Comparisons, jobs ports.NarrativeJobRepository,
	processor narrativerunner.Processor, tables *taxtable.Tables, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		offers:      offers,
		comparisons: comparisons,
		jobs:        jobs,
		processor:   processor,
		tables:      tables,
		log:         log.Named("http"),
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(s.logRequests)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  writeBadRequest,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: writeBadRequest,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetLocations(ctx context.Context, _ api.GetLocationsRequestObject) (api.GetLocationsResponseObject, error) {
	locs := s.tables.Locations()
	out := make(api.GetLocations200JSONResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, api.FromLocation(l))
	}
	return out, nil
}

// Offers

func (s *Server) PostOffers(ctx context.Context, req api.PostOffersRequestObject) (api.PostOffersResponseObject, error) {
	o, err := s.offers.Create(ctx, req.Body.ToDomain(""))
	if domain.IsValidation(err) {
		return api.PostOffers400JSONResponse{BadRequestJSONResponse: badRequest(err)}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.PostOffers201JSONResponse(api.FromOffer(o)), nil
}

func (s *Server) GetOffers(ctx context.Context, _ api.GetOffersRequestObject) (api.GetOffersResponseObject, error) {
	list, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.GetOffers200JSONResponse, 0, len(list))
	for _, o := range list {
		out = append(out, api.FromOffer(o))
	}
	return out, nil
}

func (s *Server) GetOffersId(ctx context.Context, req api.GetOffersIdRequestObject) (api.GetOffersIdResponseObject, error) {
	o, err := s.offers.Get(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetOffersId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetOffersId200JSONResponse(api.FromOffer(o)), nil
}

func (s *Server) PutOffersId(ctx context.Context, req api.PutOffersIdRequestObject) (api.PutOffersIdResponseObject, error) {
	o, err := s.offers.Update(ctx, req.Body.ToDomain(req.Id))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.PutOffersId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	case domain.IsValidation(err):
		return api.PutOffersId400JSONResponse{BadRequestJSONResponse: badRequest(err)}, nil
	case err != nil:
		return nil, err
	}
	return api.PutOffersId200JSONResponse(api.FromOffer(o)), nil
}

func (s *Server) DeleteOffersId(ctx context.Context, req api.DeleteOffersIdRequestObject) (api.DeleteOffersIdResponseObject, error) {
	err := s.offers.Delete(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.DeleteOffersId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.DeleteOffersId204Response{}, nil
}

func (s *Server) GetOffersIdSummary(ctx context.Context, req api.GetOffersIdSummaryRequestObject) (api.GetOffersIdSummaryResponseObject, error) {
	sum, err := s.offers.Summary(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetOffersIdSummary404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetOffersIdSummary200JSONResponse(api.FromSummary(sum)), nil
}

// Comparisons

func (s *Server) PostComparisons(ctx context.Context, req api.PostComparisonsRequestObject) (api.PostComparisonsResponseObject, error) {
	sel, err := s.comparisons.Select(ctx, req.Body.FirstOfferId, req.Body.SecondOfferId)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.PostComparisons404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	case domain.IsValidation(err):
		return api.PostComparisons400JSONResponse{BadRequestJSONResponse: badRequest(err)}, nil
	case err != nil:
		return nil, err
	}
	wait := req.Params.Wait != nil && *req.Params.Wait
	view, err := s.settle(ctx, sel.ID, wait, req.Params.Timeout)
	if err != nil {
		return nil, err
	}
	if wait {
		return api.PostComparisons200JSONResponse(api.FromComparison(view)), nil
	}
	return api.PostComparisons202JSONResponse(api.FromComparison(view)), nil
}

func (s *Server) PutComparisonsId(ctx context.Context, req api.PutComparisonsIdRequestObject) (api.PutComparisonsIdResponseObject, error) {
	sel, err := s.comparisons.Replace(ctx, req.Id, req.Body.FirstOfferId, req.Body.SecondOfferId)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.PutComparisonsId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	case domain.IsValidation(err):
		return api.PutComparisonsId400JSONResponse{BadRequestJSONResponse: badRequest(err)}, nil
	case err != nil:
		return nil, err
	}
	wait := req.Params.Wait != nil && *req.Params.Wait
	view, err := s.settle(ctx, sel.ID, wait, req.Params.Timeout)
	if err != nil {
		return nil, err
	}
	if wait {
		return api.PutComparisonsId200JSONResponse(api.FromComparison(view)), nil
	}
	return api.PutComparisonsId202JSONResponse(api.FromComparison(view)), nil
}

func (s *Server) GetComparisonsId(ctx context.Context, req api.GetComparisonsIdRequestObject) (api.GetComparisonsIdResponseObject, error) {
	view, err := s.comparisons.Get(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetComparisonsId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetComparisonsId200JSONResponse(api.FromComparison(view)), nil
}

func (s *Server) DeleteComparisonsId(ctx context.Context, req api.DeleteComparisonsIdRequestObject) (api.DeleteComparisonsIdResponseObject, error) {
	err := s.comparisons.Clear(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.DeleteComparisonsId404JSONResponse{NotFoundJSONResponse: notFound()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.DeleteComparisonsId204Response{}, nil
}

// settle optionally generates the narrative inline, then loads the
// comparison. Without wait the narrative is left to the workers.
func (s *Server) settle(ctx context.Context, id string, wait bool, seconds *int) (ports.ComparisonView, error) {
	if wait {
		ctx2, cancel := context.WithTimeout(ctx, waitTimeout(seconds))
		err := narrativerunner.ProcessInline(ctx2, s.jobs, s.processor, id)
		cancel()
		// a worker may already hold the job; the failure itself is recorded
		// on the comparison, so neither case fails the request
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("inline narrative failed", zap.String("comparison", id), zap.Error(err))
		}
	}
	return s.comparisons.Get(ctx, id)
}

// waitTimeout reads ?timeout=N (seconds), capped at maxWaitTimeout.
func waitTimeout(seconds *int) time.Duration {
	if seconds == nil || *seconds <= 0 {
		return defaultWaitTimeout
	}
	return min(time.Duration(*seconds)*time.Second, maxWaitTimeout)
}

// Errors

func badRequest(err error) api.BadRequestJSONResponse {
	return api.BadRequestJSONResponse{Error: err.Error()}
}

func notFound() api.NotFoundJSONResponse {
	return api.NotFoundJSONResponse{Error: "not found"}
}

// writeBadRequest reports a parameter or body the generated layer could
// not bind.
func writeBadRequest(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError handles errors a handler returned instead of a typed response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.Error{Error: "not found"})
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: "internal error"})
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
