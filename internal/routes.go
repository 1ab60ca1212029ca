package internal

import (
	"net/http"

	"pulsetrack/internal/controllers"
	"pulsetrack/internal/providers"
	"pulsetrack/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/user", http.HandlerFunc(apiController.GetUser))
	routers.Get("/milestones", http.HandlerFunc(apiController.GetMilestones))
	routers.Post("/milestones/ack", http.HandlerFunc(apiController.AckMilestone))
	routers.Get("/unlocks", http.HandlerFunc(apiController.GetUnlocks))
	routers.Post("/unlocks/reset", http.HandlerFunc(apiController.ResetUnlocks))
	routers.Get("/ranking", http.HandlerFunc(apiController.GetRanking))
	routers.Get("/users", http.HandlerFunc(apiController.GetUsers))
	routers.Post("/users/add", http.HandlerFunc(apiController.AddUser))
	routers.Post("/users/remove", http.HandlerFunc(apiController.RemoveUser))
	routers.Post("/users/refresh", http.HandlerFunc(apiController.RefreshUsers))
	routers.Post("/users/flush", http.HandlerFunc(apiController.FlushUsers))
	routers.Get("/favorite", http.HandlerFunc(apiController.GetFavorite))
	routers.Post("/favorite", http.HandlerFunc(apiController.SetFavorite))
	routers.Get("/widget", http.HandlerFunc(apiController.GetWidget))
	return routers
}
