// Package config provides configuration loading, merging, and validation
// facilities for the blog API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. An optional .env file (values never override real environment variables)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields still unset after merging receive defaults, and the result is
// validated. The entry point is [GetStructuredConfig].
package config
