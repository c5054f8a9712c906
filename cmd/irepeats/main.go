// cmd/irepeats/main.go
package main

import (
	"irepeats/internal/app"
	"irepeats/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
