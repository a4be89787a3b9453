package client

import (
	"net/http"
	"time"
)

type Clients struct {
	*LeaderboardAPI
}

func InitClients(baseURL string, timeout time.Duration) Clients {
	return Clients{
		LeaderboardAPI: NewLeaderboardAPI(baseURL, &http.Client{Timeout: timeout}),
	}
}
