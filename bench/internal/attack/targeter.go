package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// menuSize matches the pizzas seeded by the service schema.
const menuSize = 5

var bodyPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 256)
	},
}

func OrderTargeter(baseURL string, tokens []string, maxItems int) vegeta.Targeter {
	headers := make([]http.Header, len(tokens))
	for i, tok := range tokens {
		headers[i] = http.Header{
			"Content-Type":  []string{"application/json"},
			"Authorization": []string{"Bearer " + tok},
		}
	}
	url := baseURL + "/api/order"
	maxItems = max(1, maxItems)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = headers[rand.IntN(len(headers))]

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"franchiseId":1,"storeId":%d,"items":[`, rand.IntN(3)+1)
		for i := range rand.IntN(maxItems) + 1 {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = fmt.Appendf(buf, `{"menuId":%d,"description":"bench"}`, rand.IntN(menuSize)+1)
		}
		buf = append(buf, "]}"...)
		t.Body = buf
		return nil
	}
}

// HistoryTargeter reads the first order page of a random seeded diner.
func HistoryTargeter(baseURL string, tokens []string) vegeta.Targeter {
	headers := make([]http.Header, len(tokens))
	for i, tok := range tokens {
		headers[i] = http.Header{"Authorization": []string{"Bearer " + tok}}
	}
	url := baseURL + "/api/order?page=1"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = headers[rand.IntN(len(headers))]
		return nil
	}
}

func MenuTargeter(baseURL string) vegeta.Targeter {
	url := baseURL + "/api/order/menu"
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		return nil
	}
}

func MetricsTargeter(baseURL string) vegeta.Targeter {
	url := baseURL + "/api/metrics"
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		return nil
	}
}

// MixedTargeter picks an order with orderRatio probability, a metrics read
// with metricsRatio, and a menu read otherwise.
func MixedTargeter(baseURL string, tokens []string, maxItems int, orderRatio, metricsRatio float64) vegeta.Targeter {
	order := OrderTargeter(baseURL, tokens, maxItems)
	menu := MenuTargeter(baseURL)
	snapshot := MetricsTargeter(baseURL)

	return func(t *vegeta.Target) error {
		p := rand.Float64()
		switch {
		case p < orderRatio:
			return order(t)
		case p < orderRatio+metricsRatio:
			return snapshot(t)
		default:
			return menu(t)
		}
	}
}
