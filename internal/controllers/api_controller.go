package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"pulsetrack/internal/providers"
	"pulsetrack/internal/ranking"
	"pulsetrack/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.StatsServiceInterface
}

func NewApiController(logger providers.Logger, service services.StatsServiceInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
	}
}

func writeJSON(w http.ResponseWriter, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) decodeBody(w http.ResponseWriter, r *http.Request, payload any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		ac.logger.Warnf(providers.GetLogTypeByRequestType(r.Method), "Malformed body on %s: %s", r.URL.Path, err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) GetUser(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	detail, ok := ac.service.UserDetail(r.Context(), name)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, detail)
}

func (ac *ApiController) GetMilestones(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	categories, ok := ac.service.Milestones(r.Context(), name)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, categories)
}

func (ac *ApiController) AckMilestone(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ID string `json:"id"`
	}
	if !ac.decodeBody(w, r, &payload) {
		return
	}
	if !ac.service.AcknowledgeMilestone(payload.ID) {
		http.Error(w, "Unknown milestone", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetUnlocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ac.service.UnlockedMilestones())
}

func (ac *ApiController) ResetUnlocks(w http.ResponseWriter, r *http.Request) {
	ac.service.ResetUnlocks()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetRanking(w http.ResponseWriter, r *http.Request) {
	metric := ranking.ParseMetric(r.URL.Query().Get("metric"))
	writeJSON(w, struct {
		Metric  string          `json:"metric"`
		Label   string          `json:"label"`
		Entries []ranking.Entry `json:"entries"`
	}{
		Metric:  string(metric),
		Label:   metric.Label(),
		Entries: ac.service.Ranking(metric),
	})
}

func (ac *ApiController) GetUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ac.service.TrackedUsers())
}

func (ac *ApiController) AddUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
	}
	if !ac.decodeBody(w, r, &payload) {
		return
	}
	if payload.Username == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	added, found := ac.service.TrackUser(r.Context(), payload.Username)
	if !found {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if !added {
		// Already tracked; the first-added record is kept.
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) RemoveUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Index int `json:"index"`
	}
	if !ac.decodeBody(w, r, &payload) {
		return
	}
	if !ac.service.RemoveUser(payload.Index) {
		http.Error(w, "Index out of range", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) RefreshUsers(w http.ResponseWriter, r *http.Request) {
	ac.service.RefreshAll(r.Context())
	writeJSON(w, ac.service.TrackedUsers())
}

func (ac *ApiController) FlushUsers(w http.ResponseWriter, r *http.Request) {
	ac.service.FlushAll()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetFavorite(w http.ResponseWriter, r *http.Request) {
	target := services.FavoriteTarget(r.URL.Query().Get("target"))
	if target == "" {
		target = services.TargetWidget
	}

	username, ok := ac.service.Favorite(target)
	writeJSON(w, struct {
		Target   string `json:"target"`
		Username string `json:"username"`
		Set      bool   `json:"set"`
	}{
		Target:   string(target),
		Username: username,
		Set:      ok,
	})
}

func (ac *ApiController) SetFavorite(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Target   string `json:"target"`
		Username string `json:"username"`
	}
	if !ac.decodeBody(w, r, &payload) {
		return
	}

	target := services.FavoriteTarget(payload.Target)
	if payload.Target == "" {
		target = services.TargetWidget
	}
	if !ac.service.SetFavorite(target, payload.Username) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.logger.Infof(providers.TypePost, "Favorite for %s set to %s", target, payload.Username)
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetWidget(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ac.service.WidgetView(r.Context()))
}
