package trafficgen

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a Generator from a driver configuration.
type Factory func(cfg DriverConfig) (Generator, error)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Factory)
)

// Register makes a driver available under the given name. Drivers call
// this from init(). Registering the same name twice panics.
func Register(name string, factory Factory) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if factory == nil {
		panic("trafficgen: nil driver factory")
	}
	if _, dup := drivers[name]; dup {
		panic(fmt.Sprintf("trafficgen: driver %q registered twice", name))
	}
	drivers[name] = factory
}

// Open instantiates a registered driver.
func Open(name string, cfg DriverConfig) (Generator, error) {
	driversMu.RLock()
	factory, ok := drivers[name]
	driversMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown traffic generator driver %q (available: %v)", name, Drivers())
	}
	if cfg.Defaults == nil {
		cfg.Defaults = Defaults()
	}
	return factory(cfg)
}

// Drivers lists the registered driver names, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
