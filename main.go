package main

import (
	"portfolioBackend/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
