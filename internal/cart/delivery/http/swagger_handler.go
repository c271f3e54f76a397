package http

// GetCart godoc
// @Summary View the cart
// @Description Entries in the order they were added, with count and total
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object{items=array,count=int,total=number}}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Stores a snapshot of the product. Adding the same product twice keeps two entries.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{product_id=int} true "Product"
// @Success 201 {object} object{success=bool,message=string,data=object{entry=object,count=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// RemoveItem godoc
// @Summary Remove the entry at an index
// @Description An index outside the cart changes nothing and reports removed=false
// @Tags Cart
// @Produce json
// @Param index path int true "Entry index"
// @Success 200 {object} object{success=bool,data=object{removed=bool,count=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items/{index} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// Checkout godoc
// @Summary Place orders for the cart
// @Description One order per distinct product; the cart is cleared only when every order succeeds
// @Tags Cart
// @Produce json
// @Success 201 {object} object{success=bool,message=string,data=object{orders=array,lines=array,items=int,total=number}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/cart/checkout [post]
func (h *CartHandler) CheckoutDoc() {}

// Nav godoc
// @Summary Navigation summary
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object{cart_count=int,show_badge=bool,show_checkout=bool,display_name=string,kind=string}}
// @Router /api/nav [get]
func (h *CartHandler) NavDoc() {}
