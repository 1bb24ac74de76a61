package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var errNoTokens = errors.New("attack requires seeded session tokens")

type Config struct {
	BaseURL            string
	Tokens             []string
	Rate               int
	Duration           time.Duration
	Type               string
	MaxOrderItems      int
	OrderRatio         float64
	MetricsRatio       float64
	Connections        int
	InsecureSkipVerify bool
}

// NeedsTokens reports whether the attack type sends authenticated requests.
func NeedsTokens(attackType string) bool {
	return attackType == "order" || attackType == "history" || attackType == "mixed"
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if NeedsTokens(cfg.Type) && len(cfg.Tokens) == 0 {
		return nil, errNoTokens
	}

	switch cfg.Type {
	case "order":
		return OrderTargeter(cfg.BaseURL, cfg.Tokens, cfg.MaxOrderItems), nil
	case "history":
		return HistoryTargeter(cfg.BaseURL, cfg.Tokens), nil
	case "menu":
		return MenuTargeter(cfg.BaseURL), nil
	case "metrics":
		return MetricsTargeter(cfg.BaseURL), nil
	case "mixed":
		return MixedTargeter(cfg.BaseURL, cfg.Tokens, cfg.MaxOrderItems, cfg.OrderRatio, cfg.MetricsRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(max(1, cfg.Connections)),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
