// Package config loads engine settings from a YAML file and VALIDITY_*
// environment variables.
//
// Settings are read in three layers, later layers winning:
//
//  1. the built-in defaults of validity.NewConfig
//  2. the YAML file passed to Load
//  3. environment variables, optionally seeded from a .env file
//
// A settings file looks like:
//
//	attribute_name: data-validators
//	required_message: This field is required
//	parent_selector: fieldset
//	error_class: is-invalid
//	timeout: 300ms        # or 300 (milliseconds), 0, false
//	validate_on_blur: true
//	group_policy: dedupe
//	validators:
//	  color:
//	    one_of: [groc, blau, vermell]
//	    message: Only the three basic colors are allowed
//	  zip:
//	    pattern: '\d{5}'
//	  handle:
//	    tag: alphanum,min=3
package config
