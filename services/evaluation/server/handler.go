package server

import (
	"log/slog"
	"net/http"

	"github.com/talkready/backend/pkg/apperr"
	"github.com/talkready/backend/pkg/json"
	"github.com/talkready/backend/pkg/jwt"
	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/services/evaluation/entity"
)

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]bool{"status": true})
}

func (s *Server) EvaluateSpeaking(w http.ResponseWriter, r *http.Request) {
	s.log.Info("evaluate speaking request received", slog.String("remote_addr", r.RemoteAddr))

	userID, err := s.callerID(r)
	if err != nil {
		s.log.Warn("rejecting unauthenticated request", slog.String("error", err.Error()))
		json.WriteError(w, apperr.New(apperr.Unauthenticated, "User must be authenticated to evaluate speech."))
		return
	}

	var req entity.EvaluateSpeakingRequest
	if err := json.ParseJSON(r, &req); err != nil {
		s.log.Warn("invalid request body", slog.String("error", err.Error()))
		json.WriteError(w, apperr.New(apperr.InvalidArgument, "invalid request body"))
		return
	}

	log := s.log.With(slog.String("user_id", userID))
	log.Info("starting speech evaluation", slog.String("audio_url", req.AudioURL))

	ctx := logger.WithContext(r.Context(), log)
	result, err := s.usecase.EvaluateSpeaking(ctx, &req)
	if err != nil {
		log.Error("speech evaluation failed", slog.String("error", err.Error()))
		json.WriteError(w, err)
		return
	}

	log.Info("speech evaluation completed", slog.Int("overall_score", result.OverallScore))
	json.WriteJSON(w, http.StatusOK, result)
}

func (s *Server) callerID(r *http.Request) (string, error) {
	token, err := jwt.ParseTokenFromHeader(r)
	if err != nil {
		return "", err
	}
	return jwt.ParseUserID(r.Context(), token, s.cfg.JWTSecret)
}
