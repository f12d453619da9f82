// Package brokers registers the per-broker report parsers. Each broker's
// report layout differs, so the registry maps a broker id to the parser
// that understands its exports.
package brokers

import (
	"errors"
	"io"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/report"
)

// ErrUnknownBroker is returned when no parser is registered for an id.
var ErrUnknownBroker = errors.New("unknown broker")

// Parser extracts dividend line entries from one broker's report format.
type Parser interface {
	Info() models.BrokerInfo
	CanParse(filename string) bool
	Parse(r io.Reader, format report.Format) ([]models.DividendEntry, error)
}

// Registry holds the registered parsers in registration order.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates a registry over the given parsers.
func NewRegistry(parsers ...Parser) *Registry {
	return &Registry{parsers: parsers}
}

// DefaultRegistry returns the registry with every built-in parser.
func DefaultRegistry() *Registry {
	return NewRegistry(NewZerodhaParser())
}

// Get returns the parser registered under id.
func (r *Registry) Get(id string) (Parser, error) {
	for _, p := range r.parsers {
		if p.Info().ID == id {
			return p, nil
		}
	}
	return nil, ErrUnknownBroker
}

// List returns the broker metadata for every registered parser.
func (r *Registry) List() []models.BrokerInfo {
	infos := make([]models.BrokerInfo, len(r.parsers))
	for i, p := range r.parsers {
		infos[i] = p.Info()
	}
	return infos
}

// ByCountry filters the registered brokers by market.
func (r *Registry) ByCountry(country models.Country) []models.BrokerInfo {
	var infos []models.BrokerInfo
	for _, p := range r.parsers {
		if p.Info().Country == country {
			infos = append(infos, p.Info())
		}
	}
	return infos
}
