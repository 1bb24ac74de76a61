package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	BaseURL            string
	Users              int
	Workers            int
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Run registers opts.Users diners and returns their session tokens in
// registration order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Registering %d users (workers: %d)...\n", opts.Users, workers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	// Emails must be unique across runs against the same database.
	runID := time.Now().UnixNano()
	tokens := make([]string, opts.Users)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Users {
		g.Go(func() error {
			tok, err := register(ctx, client, opts.BaseURL, registerRequest{
				Name:     fmt.Sprintf("bench diner %d", i),
				Email:    fmt.Sprintf("bench-%d-%d@jwt.com", runID, i),
				Password: "benchmark-password",
			})
			if err != nil {
				return fmt.Errorf("failed to register user %d: %w", i, err)
			}
			tokens[i] = tok
			fmt.Printf("\rProgress: %d/%d", progress.Add(1), opts.Users)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d tokens\n", len(tokens))
	return tokens, nil
}

func register(ctx context.Context, client *http.Client, baseURL string, body registerRequest) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/auth", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result authResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("empty token in response")
	}
	return result.Token, nil
}
