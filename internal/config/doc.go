// Package config provides configuration management for podprobe.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have sensible defaults, so the binary runs with
// no environment at all, which is the normal case inside a bare container.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("listening on %s\n", cfg.GetAddr())
package config
