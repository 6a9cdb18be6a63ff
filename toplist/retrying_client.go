package toplist

import (
	"errors"
	"math/rand"
	"net/http"
	"time"
)

const maxRetries = 3

// Jittered delay windows in milliseconds, one per retry.
var delays = [maxRetries][2]int{
	{250, 750},
	{375, 1125},
	{562, 1687},
}

type retryingClient struct {
	client Client
}

// NewRetryingClient wraps a client with up to maxRetries re-attempts. List
// downloads are plain GETs, so requests can be re-issued safely.
func NewRetryingClient(c Client) Client {
	return &retryingClient{
		client: c,
	}
}

func (c *retryingClient) Do(orgReq *http.Request) (*http.Response, error) {
	for i := 0; i < maxRetries+1; i++ {
		req, reqErr := http.NewRequest(orgReq.Method, orgReq.URL.String(), nil)
		if reqErr != nil {
			return nil, reqErr
		}

		req.Header = orgReq.Header

		delayForAttempt(i)
		resp, err := c.client.Do(req)
		if err != nil {
			continue
		}

		return resp, nil
	}

	return nil, errors.New("request failed after retry")
}

func delayForAttempt(i int) {
	if i == 0 {
		return
	}

	random := rand.Intn(delays[i-1][1]-delays[i-1][0]) + delays[i-1][0]
	time.Sleep(time.Duration(random) * time.Millisecond)
}
