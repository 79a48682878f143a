// Package hclconfig loads the optional HCL configuration file of flowpat.
//
// A config file looks like:
//
//	strict = true
//
//	output {
//	  format = "c"
//	  guard  = "LED_PATTERNS_H"
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Every setting is optional. Unset settings are reported as nil so the
// caller can tell them apart from explicit zero values.
package hclconfig
