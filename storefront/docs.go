package main

// @title WasteSmart Storefront API
// @version 1.0
// @description Storefront for near-expiry groceries: catalog filtering, carts, checkout and vendor listings
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sid
// @description Signed session token issued on the first request

// @tag.name Catalog
// @tag.description Products, filters and vendor pages

// @tag.name Cart
// @tag.description Session cart and checkout

// @tag.name Session
// @tag.description Shopper signup, login and logout

// @tag.name Vendor
// @tag.description Vendor accounts, dashboard and listings

// @tag.name Health
// @tag.description Health check endpoints
