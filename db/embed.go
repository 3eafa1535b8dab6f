// Package db embeds the rule store schema so deployments and test harnesses
// apply the exact DDL this binary was built against.
package db

import _ "embed"

//go:embed schema.sql
var Schema string
