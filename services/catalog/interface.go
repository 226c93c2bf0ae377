package catalog

import "handyhub/models"

// Provider exposes the read-only service catalog. The cart engine and
// handlers never mutate this data.
type Provider interface {
	ListServices() []models.Service
	ListByCategory(category string) []models.Service
	GetService(id int) (models.Service, bool)
}
