package main

import (
	_ "storefront/docs"
	"storefront/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Lifecycle API
// @version         1.0
// @description     Order and quotation lifecycle engine (orders, checkout, quotes, notifications) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Acting user id; paired with X-Actor-Role.

func main() {
	routes.Run()
}
