package exec

import "time"

// config separates global settings, fixed at creation, from local settings
// that apply to a single run.
type config struct {
	globalEnv        map[string]string
	globalDir        string
	globalInheritEnv bool
	globalTimeout    time.Duration

	localEnv        map[string]string
	localDir        string
	localInheritEnv *bool
	localTimeout    *time.Duration
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone copies the global settings only.
func (c *config) clone() *config {
	clone := newConfig()
	clone.globalDir = c.globalDir
	clone.globalInheritEnv = c.globalInheritEnv
	clone.globalTimeout = c.globalTimeout
	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	return clone
}

// effectiveEnv merges global and local variables. Local values win.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) effectiveTimeout() time.Duration {
	if c.localTimeout != nil {
		return *c.localTimeout
	}
	return c.globalTimeout
}

// resetLocal clears local settings after a run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localTimeout = nil
}
