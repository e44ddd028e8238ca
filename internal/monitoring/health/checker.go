package health

import (
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// ComponentHealth represents the health status of a system component
type ComponentHealth struct {
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	Message     string    `json:"message"`
	LastChecked time.Time `json:"last_checked"`
}

// Checker holds the latest health report for each component. Components push
// updates; there is no background polling loop, the worker is single-threaded.
type Checker struct {
	components map[string]*ComponentHealth
	mu         sync.RWMutex
}

func NewChecker() *Checker {
	return &Checker{
		components: make(map[string]*ComponentHealth),
	}
}

// Update records the current status of a component.
func (c *Checker) Update(name string, status Status, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components[name] = &ComponentHealth{
		Name:        name,
		Status:      status,
		Message:     message,
		LastChecked: time.Now(),
	}
}

// Snapshot returns a copy of all component reports.
func (c *Checker) Snapshot() []ComponentHealth {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]ComponentHealth, 0, len(c.components))
	for _, component := range c.components {
		snapshot = append(snapshot, *component)
	}
	return snapshot
}

// Healthy reports whether no component is in an error state.
func (c *Checker) Healthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, component := range c.components {
		if component.Status == StatusError {
			return false
		}
	}
	return true
}
