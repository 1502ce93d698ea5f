// Package auth holds the upstream bearer credential. The token is an
// explicit object handed to each upstream client rather than module-level
// state read by an interceptor: acquire it at login, clear it at logout.
package auth

import "sync"

type Credential struct {
	mu    sync.RWMutex
	token string
}

func NewCredential(token string) *Credential {
	return &Credential{token: token}
}

func (c *Credential) Set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Credential) Clear() {
	c.Set("")
}

// Token implements httpclient.TokenSource.
func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}
