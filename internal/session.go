package internal

// SessionProvider answers whether a valid authenticated session exists.
// It is injected rather than read from a global so tests can substitute
// a fake, and so callers can re-check at the moment of a save attempt.
type SessionProvider interface {
	IsAuthenticated() bool
}

// FileSession is a SessionProvider over the config file. Every call
// re-reads the file because sign-in can complete out-of-band (another
// process, an OAuth redirect) while this process is running.
type FileSession struct {
	ConfigPath string
}

// NewFileSession creates a FileSession bound to a config path
func NewFileSession(configPath string) *FileSession {
	return &FileSession{ConfigPath: configPath}
}

// IsAuthenticated reports whether a non-empty auth token is on disk.
// Read failures are treated as signed-out.
func (fs *FileSession) IsAuthenticated() bool {
	cfg, err := LoadConfig(fs.ConfigPath)
	if err != nil {
		LogDebug("Session check failed to load config: %v", err)
		return false
	}
	return cfg.AuthToken != ""
}

// SignIn records the auth token and account email. A successful return
// is the auth-success event that should trigger replay.
func (fs *FileSession) SignIn(token, email string) error {
	cfg, err := LoadConfig(fs.ConfigPath)
	if err != nil {
		return err
	}
	cfg.AuthToken = token
	cfg.AccountEmail = email
	return cfg.Save(fs.ConfigPath)
}

// SignOut clears the auth token, returning the account to guest mode.
// Pending actions are left in the store.
func (fs *FileSession) SignOut() error {
	cfg, err := LoadConfig(fs.ConfigPath)
	if err != nil {
		return err
	}
	cfg.AuthToken = ""
	return cfg.Save(fs.ConfigPath)
}
