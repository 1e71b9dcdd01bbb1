package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	api "esgtracker/internal/api"
	"esgtracker/internal/domain"
)

// sessionMiddleware checks bearer tokens on operations that declare the
// BearerAuth scheme. The token subject must be the company being addressed.
func (s *Server) sessionMiddleware(next api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		if !s.opts.RequireSession || ctx.Value(api.BearerAuthScopes) == nil {
			return next(ctx, w, r, request)
		}
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			return nil, domain.ErrUnauthorized
		}
		companyID, err := s.auth.Verify(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if target, ok := addressedCompany(request); ok && target != companyID {
			return nil, fmt.Errorf("%w: %s for company %d with session of %d", domain.ErrUnauthorized, operationID, target, companyID)
		}
		return next(ctx, w, r, request)
	}
}

func addressedCompany(request interface{}) (int64, bool) {
	switch req := request.(type) {
	case api.PostScoresSaveRequestObject:
		if req.Body != nil {
			return req.Body.UserId, true
		}
	case api.GetScoresUserIdRequestObject:
		return req.UserId, true
	case api.GetScoresHistoryUserIdRequestObject:
		return req.UserId, true
	case api.GetScoresImprovementUserIdRequestObject:
		return req.UserId, true
	case api.GetReportsUserIdRequestObject:
		return req.UserId, true
	}
	return 0, false
}
