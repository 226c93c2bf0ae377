package catalog

import "handyhub/models"

// StaticProvider serves the built-in catalog from process memory.
type StaticProvider struct {
	services []models.Service
	byID     map[int]models.Service
}

// NewStaticProvider returns a Provider seeded with the standard catalog.
func NewStaticProvider() *StaticProvider {
	return NewStaticProviderWith(seedServices)
}

// NewStaticProviderWith builds a Provider over the given service list.
func NewStaticProviderWith(services []models.Service) *StaticProvider {
	byID := make(map[int]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &StaticProvider{services: services, byID: byID}
}

// ListServices returns the full catalog in publication order.
func (p *StaticProvider) ListServices() []models.Service {
	out := make([]models.Service, len(p.services))
	copy(out, p.services)
	return out
}

// ListByCategory returns the catalog filtered by category tag.
func (p *StaticProvider) ListByCategory(category string) []models.Service {
	var out []models.Service
	for _, s := range p.services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// GetService looks up one service by id.
func (p *StaticProvider) GetService(id int) (models.Service, bool) {
	s, ok := p.byID[id]
	return s, ok
}
