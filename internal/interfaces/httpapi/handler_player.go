package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/batting-insights/internal/usecase"
)

type listPlayersQuery struct {
	Name  string `validate:"omitempty,max=100"`
	Limit int    `validate:"gte=0,lte=500"`
}

// ListPlayersLegacy serves the dashboard contract: a bare array, or a fixed error body on any failure.
func (h *Handler) ListPlayersLegacy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersLegacy")
	defer span.End()

	players, err := h.playerStatsService.ListPlayers(ctx, usecase.ListPlayersInput{})
	if err != nil {
		h.logger.ErrorContext(ctx, "load player data failed", "error", err)
		writeLegacyJSON(ctx, w, http.StatusInternalServerError, legacyErrorBody{Error: legacyLoadFailureMessage})
		return
	}

	writeLegacyJSON(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query, err := parseListPlayersQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, query)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerStatsService.ListPlayers(ctx, usecase.ListPlayersInput{
		Name:  query.Name,
		Limit: query.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "name", query.Name, "limit", query.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerStatsService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasons")
	defer span.End()

	playerID, err := parsePlayerID(r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.playerStatsService.ListSeasons(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player seasons failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonsToDTO(seasons))
}

func parseListPlayersQuery(values url.Values) (listPlayersQuery, error) {
	query := listPlayersQuery{Name: strings.TrimSpace(values.Get("name"))}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return listPlayersQuery{}, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
		}
		query.Limit = limit
	}

	return query, nil
}

func parsePlayerID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: player id must be an integer", usecase.ErrInvalidInput)
	}
	return id, nil
}
