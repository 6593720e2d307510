package server

import (
	"log/slog"
	"net/http"

	"github.com/talkready/backend/pkg/apperr"
	"github.com/talkready/backend/pkg/json"
	"github.com/talkready/backend/pkg/jwt"
	"github.com/talkready/backend/pkg/logger"
)

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]bool{"status": true})
}

func (s *Server) RecordActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := s.callerID(r)
	if err != nil {
		s.log.Warn("rejecting unauthenticated request", slog.String("error", err.Error()))
		json.WriteError(w, apperr.New(apperr.Unauthenticated, "User must be logged in."))
		return
	}

	log := s.log.With(slog.String("user_id", userID))
	ctx := logger.WithContext(r.Context(), log)

	resp, err := s.usecase.RecordActivity(ctx, userID)
	if err != nil {
		log.Error("failed to record activity", slog.String("error", err.Error()))
		json.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) callerID(r *http.Request) (string, error) {
	token, err := jwt.ParseTokenFromHeader(r)
	if err != nil {
		return "", err
	}
	return jwt.ParseUserID(r.Context(), token, s.cfg.JWTSecret)
}
