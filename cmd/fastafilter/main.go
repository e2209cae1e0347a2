// cmd/fastafilter/main.go
package main

import (
	"fastakit/internal/app"
	"fastakit/internal/appshell"
)

func main() {
	appshell.Main(app.RunFilter)
}
