package internal

// DefaultItemAttempts re-exports defaultItemAttempts for external tests.
const DefaultItemAttempts = defaultItemAttempts
