package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Factory hands out copies of canonical product records, one prototype per name.
type Factory struct {
	prototypes map[string]*Product
	logger     *zap.Logger
}

// NewFactory creates an empty Factory. A nil logger disables logging.
func NewFactory(logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{
		prototypes: make(map[string]*Product),
		logger:     logger,
	}
}

// Create returns a fresh copy of the prototype registered under name.
// The first call for a name registers price and available as the prototype;
// later calls for that name ignore both arguments.
func (f *Factory) Create(name string, price decimal.Decimal, available bool) *Product {
	proto, ok := f.prototypes[name]
	if !ok {
		proto = &Product{Name: name, Price: price, Available: available}
		f.prototypes[name] = proto
		f.logger.Debug("registered product prototype",
			zap.String("product", name),
			zap.String("price", price.String()),
			zap.Bool("available", available))
	}
	return proto.Clone()
}

// Lookup returns a copy of the prototype registered under name, if any.
func (f *Factory) Lookup(name string) (*Product, bool) {
	proto, ok := f.prototypes[name]
	if !ok {
		return nil, false
	}
	return proto.Clone(), true
}

// Names lists registered product names in sorted order.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.prototypes))
	for name := range f.prototypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
