package tessera

// Version is the release of the library, overridden at build time with
// -ldflags "-X github.com/aretw0/tessera.Version=...".
var Version = "0.1.0-dev"
