package http

// ListProducts godoc
// @Summary List products
// @Description Lists the marketplace with expiry labels. Without filter parameters the listing is unfiltered; with any of them the remaining ones take their defaults.
// @Tags Products
// @Produce json
// @Param max_price query number false "Maximum price (default 10)"
// @Param in_stock query bool false "Only products with quantity above zero"
// @Param expiring_soon query bool false "Only products expiring within expiry_days"
// @Param expiry_days query int false "Expiry window in days (default 30)"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,shown=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// FilterDefaults godoc
// @Summary Default filter settings
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object{max_price=number,expiry_window_days=int,in_stock=bool,expiring_soon=bool}}
// @Router /api/products/filter-defaults [get]
func (h *CatalogHandler) FilterDefaultsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListVendors godoc
// @Summary List vendors
// @Tags Vendors
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/vendors [get]
func (h *CatalogHandler) ListVendorsDoc() {}

// GetVendor godoc
// @Summary Vendor page
// @Description A vendor and the products it sells
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} object{success=bool,data=object{vendor=object,products=array}}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/vendors/{id} [get]
func (h *CatalogHandler) GetVendorDoc() {}

// ListOwnProducts godoc
// @Summary The signed-in vendor's products
// @Tags Vendor
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/vendor/products [get]
func (h *CatalogHandler) ListOwnProductsDoc() {}

// CreateProduct godoc
// @Summary Add a product
// @Tags Vendor
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,quantity=int,expiry_date=string,image_url=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/vendor/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description An omitted expiry_date keeps the current one
// @Tags Vendor
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,price=number,quantity=int,expiry_date=string,image_url=string} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/vendor/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Vendor
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/vendor/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}
