package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/samber/lo"

	api "esgtracker/internal/api"
	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/ports"
	"esgtracker/internal/reports"
	"esgtracker/internal/scoring"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	// RequireSession enforces bearer tokens on score and report routes.
	RequireSession bool
	CORSOrigins    []string
}

// Server implements the generated StrictServerInterface.
type Server struct {
	auth        ports.Auth
	assessments ports.Assessments
	companies   ports.Companies
	reports     ports.Reports
	catalog     *criteria.Catalog
	db          Pinger
	opts        Options
}

func New(auth ports.Auth, assessments ports.Assessments, companies ports.Companies, reports ports.Reports, catalog *criteria.Catalog, db Pinger, opts Options) *Server {
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	return &Server{auth: auth, assessments: assessments, companies: companies, reports: reports, catalog: catalog, db: db, opts: opts}
}

// Routes returns a chi.Router serving the API at the root and under /api.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.sessionMiddleware}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	for _, base := range []string{"", "/api"} {
		api.HandlerWithOptions(handler, api.ChiServerOptions{
			BaseURL:          base,
			BaseRouter:       r,
			ErrorHandlerFunc: requestError,
		})
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route "+r.URL.Path+" not found")
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealth(ctx context.Context, _ api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	resp := api.HealthResponse{Status: "Server is running!", Database: "connected", Timestamp: time.Now().UTC()}
	if err := s.db.Ping(ctx); err != nil {
		log.Printf("health: %v", err)
		resp.Database = "unavailable"
	}
	return api.GetHealth200JSONResponse(resp), nil
}

func (s *Server) PostRegister(ctx context.Context, req api.PostRegisterRequestObject) (api.PostRegisterResponseObject, error) {
	sess, err := s.auth.Register(ctx, req.Body.CompanyName, req.Body.Email, req.Body.Password)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return api.PostRegister400JSONResponse(errorBody(err)), nil
	case errors.Is(err, domain.ErrDuplicateEmail):
		return api.PostRegister400JSONResponse{Message: "Email already registered. Please login instead."}, nil
	case err != nil:
		return nil, err
	}
	c := sess.Company
	return api.PostRegister201JSONResponse{
		Success: true,
		Message: "Registration successful! You can now login.",
		User:    api.RegisteredUser{Id: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt},
		Token:   token(sess),
	}, nil
}

func (s *Server) PostLogin(ctx context.Context, req api.PostLoginRequestObject) (api.PostLoginResponseObject, error) {
	sess, err := s.auth.Login(ctx, req.Body.Email, req.Body.Password)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return api.PostLogin400JSONResponse(errorBody(err)), nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return api.PostLogin401JSONResponse{Message: invalidCredentials}, nil
	case err != nil:
		return nil, err
	}
	c := sess.Company
	return api.PostLogin200JSONResponse{
		Success: true,
		Message: "Login successful!",
		User:    api.LoginUser{Id: c.ID, CompanyName: c.Name, Email: c.Email},
		Token:   token(sess),
	}, nil
}

func (s *Server) GetCompanies(ctx context.Context, _ api.GetCompaniesRequestObject) (api.GetCompaniesResponseObject, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := lo.Map(list, func(c domain.Company, _ int) api.Company {
		return api.Company{Id: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt}
	})
	return api.GetCompanies200JSONResponse{Success: true, Count: len(out), Companies: out}, nil
}

func (s *Server) GetCriteria(ctx context.Context, _ api.GetCriteriaRequestObject) (api.GetCriteriaResponseObject, error) {
	all := s.catalog.All()
	out := make([]api.Criterion, 0, len(all))
	for _, c := range all {
		out = append(out, api.Criterion{
			Index:     c.Index,
			Dimension: api.CriterionDimension(c.Dimension),
			Name:      c.Name,
			Weight:    c.Weight.InexactFloat64(),
		})
	}
	return api.GetCriteria200JSONResponse{Criteria: out}, nil
}

func (s *Server) PostScoresCalculate(ctx context.Context, req api.PostScoresCalculateRequestObject) (api.PostScoresCalculateResponseObject, error) {
	if req.Body.Scores == nil {
		return api.PostScoresCalculate400JSONResponse{Message: "scores are required"}, nil
	}
	res, tier, recs := s.assessments.Calculate(scoring.ParseRawScores(req.Body.Scores))
	return api.PostScoresCalculate200JSONResponse{
		Results:         toResult(res),
		Tier:            api.CalculateResponseTier(tier.String()),
		Recommendations: recs,
	}, nil
}

func (s *Server) PostScoresSave(ctx context.Context, req api.PostScoresSaveRequestObject) (api.PostScoresSaveResponseObject, error) {
	var raw domain.RawScores
	if req.Body.Scores != nil {
		raw = scoring.ParseRawScores(req.Body.Scores)
	}
	var results *domain.DimensionResult
	if r := req.Body.Results; r != nil {
		rounded := scoring.RoundResult(deref(r.E), deref(r.S), deref(r.G), deref(r.Total))
		results = &rounded
	}

	a, err := s.assessments.Save(ctx, req.Body.UserId, raw, results)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return api.PostScoresSave400JSONResponse(errorBody(err)), nil
	case errors.Is(err, domain.ErrNotFound):
		return api.PostScoresSave404JSONResponse{Message: "User not found"}, nil
	case err != nil:
		return nil, err
	}
	return api.PostScoresSave200JSONResponse{
		Success:    true,
		Message:    "Scores saved successfully!",
		Assessment: toAssessment(a),
	}, nil
}

func (s *Server) GetScoresUserId(ctx context.Context, req api.GetScoresUserIdRequestObject) (api.GetScoresUserIdResponseObject, error) {
	a, err := s.assessments.Latest(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if a == nil {
		msg := "No scores found"
		return api.GetScoresUserId200JSONResponse{Success: true, Message: &msg}, nil
	}
	out := toAssessment(*a)
	return api.GetScoresUserId200JSONResponse{Success: true, Assessment: &out}, nil
}

func (s *Server) GetScoresHistoryUserId(ctx context.Context, req api.GetScoresHistoryUserIdRequestObject) (api.GetScoresHistoryUserIdResponseObject, error) {
	history, err := s.assessments.History(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	out := lo.Map(history, func(a domain.Assessment, _ int) api.Assessment { return toAssessment(a) })
	return api.GetScoresHistoryUserId200JSONResponse{Success: true, Count: len(out), Assessments: out}, nil
}

func (s *Server) GetScoresImprovementUserId(ctx context.Context, req api.GetScoresImprovementUserIdRequestObject) (api.GetScoresImprovementUserIdResponseObject, error) {
	imp, err := s.assessments.Improvement(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	d := imp.Deltas
	return api.GetScoresImprovementUserId200JSONResponse{
		Success:       true,
		HasComparison: imp.HasComparison,
		Current:       toAssessmentPtr(imp.Current),
		Previous:      toAssessmentPtr(imp.Previous),
		Improvement: api.Improvement{
			Environmental: d.Environmental,
			Social:        d.Social,
			Governance:    d.Governance,
			Total:         d.Total,
			Trend:         api.ImprovementTrend(scoring.TrendOf(d.Total)),
		},
	}, nil
}

func (s *Server) GetReportsUserId(ctx context.Context, req api.GetReportsUserIdRequestObject) (api.GetReportsUserIdResponseObject, error) {
	var kindParam string
	if req.Params.Kind != nil {
		kindParam = *req.Params.Kind
	}
	kind, err := reports.ParseKind(kindParam)
	if err != nil {
		return api.GetReportsUserId400JSONResponse(errorBody(err)), nil
	}

	rep, err := s.reports.Render(ctx, req.UserId, kind)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.GetReportsUserId404JSONResponse{Message: "No assessment found for this company"}, nil
	case err != nil:
		return nil, err
	}
	if rep.Location != "" {
		log.Printf("report %s for company %d archived at %s", kind, req.UserId, rep.Location)
	}
	return api.GetReportsUserId200ApplicationpdfResponse{
		Body:          bytes.NewReader(rep.PDF),
		ContentLength: int64(len(rep.PDF)),
		Headers: api.GetReportsUserId200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", rep.Filename),
		},
	}, nil
}

func token(sess domain.Session) *string {
	if sess.Token == "" {
		return nil
	}
	t := sess.Token
	return &t
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
