// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation wraps go-playground/validator with English messages.

Fields are named by their json (or mapstructure) tag, so messages match what
clients send:

	v, _ := validation.New()
	err := v.Struct(req) // "start_date must be a date in DD-MM-YYYY format"

# Custom tags

  - ddmmyyyy: the string parses as a DD-MM-YYYY date
*/
package validation
