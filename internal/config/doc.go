// Package config loads the greedymatch run configuration from an HCL file.
//
// Every attribute is optional; missing values fall back to Default(). The
// file is evaluated with a `defaults` variable exposing the built-in label
// pools and seed, plus a handful of collection and string functions, so a
// file can derive its pools instead of repeating them:
//
//	seed        = 7
//	sample_size = 3
//	left_pool   = concat(defaults.left_pool, ["Dani"])
//	right_pool  = [for c in defaults.right_pool : lower(c)]
//
//	output {
//	  format    = "yaml"
//	  snapshots = true
//	}
package config
