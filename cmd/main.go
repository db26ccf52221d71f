// cmd/main.go
package main

import (
	"harvesthub/app"
)

// @title           HarvestHub API
// @version         1.0
// @description     Farmer registration and profile API for the HarvestHub marketplace.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
