// cmd/fastatranslate/main.go
package main

import (
	"fastakit/internal/app"
	"fastakit/internal/appshell"
)

func main() {
	appshell.Main(app.RunTranslate)
}
