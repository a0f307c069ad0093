package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/teams/{team}/players", handler.ListRoster)
	mux.HandleFunc("GET /v1/bans", handler.ListBans)
	mux.HandleFunc("GET /v1/finances", handler.ListFinances)
	mux.HandleFunc("GET /v1/finances/{team}", handler.GetFinance)
	mux.HandleFunc("GET /v1/transactions", handler.ListTransactions)
	mux.HandleFunc("GET /v1/stats/overview", handler.GetStatsOverview)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.SettleMatch)))
	mux.Handle("PUT /v1/matches/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.EditMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/players/buy", RequireAdminToken(adminToken, http.HandlerFunc(handler.BuyPlayer)))
	mux.Handle("POST /v1/players/{playerID}/sell", RequireAdminToken(adminToken, http.HandlerFunc(handler.SellPlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("POST /v1/bans", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateBan)))
	mux.Handle("PUT /v1/bans/{banID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.UpdateBan)))
	mux.Handle("DELETE /v1/bans/{banID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteBan)))
	mux.Handle("POST /v1/transactions", RequireAdminToken(adminToken, http.HandlerFunc(handler.AddTransaction)))
	mux.Handle("POST /v1/internal/audit", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunAudit)))
}
