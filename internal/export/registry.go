// Package export produces broker-specific batch-order artifacts from a
// selected buy list. Exporters only build files; order submission is the
// broker's problem.
package export

import (
	"errors"

	"github.com/dripfolio/dripfolio/internal/models"
)

// ErrUnknownExporter is returned when no exporter is registered for an id.
var ErrUnknownExporter = errors.New("unknown exporter")

// Result is a finished export artifact ready to hand to the client.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter turns selected basket orders plus a symbol->venue map into a
// downloadable artifact.
type Exporter interface {
	Info() models.BrokerInfo
	MaxOrdersPerBasket() int
	Export(orders []models.BasketOrder, exchanges map[string]string) (*Result, error)
}

// Registry holds the registered exporters in registration order.
type Registry struct {
	exporters []Exporter
}

// NewRegistry creates a registry over the given exporters.
func NewRegistry(exporters ...Exporter) *Registry {
	return &Registry{exporters: exporters}
}

// DefaultRegistry returns the registry with every built-in exporter.
func DefaultRegistry() *Registry {
	return NewRegistry(NewKiteExporter())
}

// Get returns the exporter registered under id.
func (r *Registry) Get(id string) (Exporter, error) {
	for _, e := range r.exporters {
		if e.Info().ID == id {
			return e, nil
		}
	}
	return nil, ErrUnknownExporter
}

// List returns the broker metadata for every registered exporter.
func (r *Registry) List() []models.BrokerInfo {
	infos := make([]models.BrokerInfo, len(r.exporters))
	for i, e := range r.exporters {
		infos[i] = e.Info()
	}
	return infos
}
