package internal

import (
	"net/http"

	"github.com/lquan-tech/porfolio/internal/controllers"
	"github.com/lquan-tech/porfolio/internal/providers"
)

func InitRoutes(presenceController *controllers.PresenceController, playerController *controllers.PlayerController, contactController *controllers.ContactController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/presence", http.HandlerFunc(presenceController.GetPresence))
	routers.Get("/presence/ws", http.HandlerFunc(presenceController.StreamPresence))

	routers.Get("/player", http.HandlerFunc(playerController.GetState))
	routers.Post("/player/play", http.HandlerFunc(playerController.Play))
	routers.Post("/player/pause", http.HandlerFunc(playerController.Pause))
	routers.Post("/player/next", http.HandlerFunc(playerController.Next))
	routers.Post("/player/previous", http.HandlerFunc(playerController.Previous))
	routers.Post("/player/select", http.HandlerFunc(playerController.Select))
	routers.Post("/player/seek", http.HandlerFunc(playerController.Seek))
	routers.Post("/player/volume", http.HandlerFunc(playerController.Volume))
	routers.Post("/player/mute", http.HandlerFunc(playerController.Mute))

	routers.Post("/contact", http.HandlerFunc(contactController.Submit))
	return routers
}
