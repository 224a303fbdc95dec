// Package migrations embeds the MySQL schema migrations. Each file is a goose
// SQL migration named <version>_<name>.sql with Up and Down sections.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
