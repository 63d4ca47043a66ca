package mapquest

import (
	"context"
	"fmt"
	"trip-planner-cli/internal/domain"
)

type MockTrip struct {
	From, To string
	Body     string
}

// MockRouteProvider serves canned response bodies keyed by trip pair.
type MockRouteProvider struct {
	m map[string]string
}

func NewMockRouteProvider(trips []MockTrip) *MockRouteProvider {
	m := make(map[string]string, len(trips))
	for _, t := range trips {
		m[t.From+"|"+t.To] = t.Body
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination string) (*domain.RouteDocument, error) {
	body, ok := p.m[origin+"|"+destination]
	if !ok {
		return nil, fmt.Errorf("missing trip %q -> %q", origin, destination)
	}

	return domain.DecodeRouteDocument([]byte(body))
}
