package unescape

import "sync"

// DefaultName is the registry name of the built-in escape table.
const DefaultName = "default"

var (
	registry   = map[string]Handler{DefaultName: DefaultHandler{}}
	registryMu sync.RWMutex
)

// Register makes a handler available under a name, replacing any
// previous registration. Hosts that switch escape dialects at runtime
// (a lexer handling several string-literal flavors, say) can register
// each dialect once and select by name at decode time.
func Register(name string, h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = h
}

// Lookup returns the handler registered under name.
func Lookup(name string) (Handler, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// Reset restores the registry to just the built-in default handler.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = map[string]Handler{DefaultName: DefaultHandler{}}
}
