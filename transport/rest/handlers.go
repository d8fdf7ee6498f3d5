package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/footygrid/footygrid-backend/internal/apperror"
	"github.com/footygrid/footygrid-backend/internal/dataset"
	"github.com/footygrid/footygrid-backend/internal/engine"
	"github.com/footygrid/footygrid-backend/internal/entity"
	"github.com/footygrid/footygrid-backend/internal/service"
)

const sessionCookie = "session_id"

type handlers struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService
}

func newHandlers(logger *slog.Logger, gamePlay service.GamePlayService) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

type startGameRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	ForceReset bool   `json:"force_reset,omitempty"`
}

type startGameResponse struct {
	Game    *entity.Game   `json:"game"`
	Outcome engine.Outcome `json:"outcome"`
}

type moveRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Name string `json:"name,omitempty"`
}

func (that *handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	game, outcome, err := that.gamePlay.StartGame(r.Context(), that.sessionID(w, r), req.Difficulty, req.ForceReset)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, startGameResponse{Game: game, Outcome: outcome})
}

func (that *handlers) PlaceMark(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := that.gamePlay.PlaceMark(r.Context(), that.sessionID(w, r), chi.URLParam(r, "id"), req.Row, req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, result)
}

func (that *handlers) Guess(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := that.gamePlay.Guess(r.Context(), that.sessionID(w, r), chi.URLParam(r, "id"), req.Row, req.Col, req.Name)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, result)
}

func (that *handlers) Skip(w http.ResponseWriter, r *http.Request) {
	result, err := that.gamePlay.Skip(r.Context(), that.sessionID(w, r), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, result)
}

// SearchPlayers filters the dataset by query parameters, one per
// searchable field. Empty and unknown parameters are ignored.
func (that *handlers) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for _, field := range dataset.SearchFields {
		if value := r.URL.Query().Get(field); value != "" {
			filters[field] = value
		}
	}

	that.writeJSON(w, that.gamePlay.SearchPlayers(filters))
}

func (that *handlers) CategoryOptions(w http.ResponseWriter, r *http.Request) {
	values, err := that.gamePlay.CategoryOptions(entity.CategoryType(chi.URLParam(r, "type")))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, values)
}

// sessionID reads the session cookie, minting one for new visitors. The
// cookie scopes the engine instance and difficulty progression.
func (that *handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		Path:     "/",
	})

	return id
}

func (that *handlers) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperror.ErrInvalidCategory), errors.Is(err, apperror.ErrInvalidDifficulty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperror.ErrInsufficientDataset):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		that.logger.Error("request failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
