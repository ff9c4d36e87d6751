package xmlscan

// Version is the package version string reported by cmd/xmlscan-lint
// and available to any other caller that wants to log or print it.
const Version = "0.1.0"
