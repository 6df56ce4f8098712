package main

import (
	"context"
	"time"

	"github.com/pasarhub/pasar/internal/app"
)

// @title           PasarHub API
// @version         1.0
// @description     PasarHub provides account verification, marketplace catalog and administration APIs.
// @termsOfService  https://pasarhub.com/terms
// @contact.name    Contact Support
// @contact.url     https://pasarhub.com/contact
// @contact.email   support@pasarhub.com
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @server          https://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
