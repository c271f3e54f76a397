// Package docs registers the storefront OpenAPI description with swag.
// Regenerate with: swag init -g storefront/docs.go -o storefront/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/products": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List products with optional filters",
                "parameters": [
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "boolean", "name": "expiring_soon", "in": "query"},
                    {"type": "integer", "name": "expiry_days", "in": "query"},
                    {"type": "boolean", "name": "in_stock", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/api/products/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get a product",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/vendors": {
            "get": {"tags": ["Catalog"], "summary": "List vendors", "responses": {"200": {"description": "OK"}}}
        },
        "/api/vendors/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Vendor details and products",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/cart": {
            "get": {"tags": ["Cart"], "summary": "Current cart", "responses": {"200": {"description": "OK"}}}
        },
        "/api/cart/items": {
            "post": {"tags": ["Cart"], "summary": "Add a product to the cart", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/cart/items/{index}": {
            "delete": {
                "tags": ["Cart"],
                "summary": "Remove the entry at index",
                "parameters": [{"type": "integer", "name": "index", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/cart/checkout": {
            "post": {"tags": ["Cart"], "summary": "Place orders for the cart", "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/nav": {
            "get": {"tags": ["Cart"], "summary": "Navigation summary", "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/signup": {
            "post": {"tags": ["Session"], "summary": "Create a shopper account", "responses": {"201": {"description": "Created"}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["Session"], "summary": "Shopper login", "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/auth/logout": {
            "post": {"tags": ["Session"], "summary": "Shopper logout", "responses": {"200": {"description": "OK"}}}
        },
        "/api/vendor/signup": {
            "post": {"tags": ["Vendor"], "summary": "Register a vendor", "responses": {"201": {"description": "Created"}}}
        },
        "/api/vendor/login": {
            "post": {"tags": ["Vendor"], "summary": "Vendor login", "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}}
        },
        "/api/vendor/logout": {
            "post": {"tags": ["Vendor"], "summary": "Vendor logout", "responses": {"200": {"description": "OK"}}}
        },
        "/api/vendor/dashboard": {
            "get": {"tags": ["Vendor"], "summary": "Vendor dashboard", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/vendor/products": {
            "get": {"tags": ["Vendor"], "summary": "Own listings", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Vendor"], "summary": "Create a listing", "responses": {"201": {"description": "Created"}}}
        },
        "/api/vendor/products/{id}": {
            "put": {"tags": ["Vendor"], "summary": "Update a listing", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["Vendor"], "summary": "Delete a listing", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/health/ready": {
            "get": {"tags": ["Health"], "summary": "Dependency readiness", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WasteSmart Storefront API",
	Description:      "Storefront for near-expiry groceries: catalog filtering, carts, checkout and vendor listings",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
