package main

import "photofolio_backend/internal/app"

func main() {
	app.Run()
}
