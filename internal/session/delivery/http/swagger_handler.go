package http

// UserSignup godoc
// @Summary Create a shopper account
// @Description Registers a customer with the backend and signs this browser in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,confirm_password=string} true "Signup data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/auth/signup [post]
func (h *SessionHandler) UserSignupDoc() {}

// UserLogin godoc
// @Summary Shopper login
// @Tags Session
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/auth/login [post]
func (h *SessionHandler) UserLoginDoc() {}

// UserLogout godoc
// @Summary Shopper logout
// @Tags Session
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/auth/logout [post]
func (h *SessionHandler) UserLogoutDoc() {}

// VendorSignup godoc
// @Summary Register a vendor
// @Description Registers a business with the backend and signs this browser in as it
// @Tags Vendor
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,contact=string,address=string,location=string,business_category=string,business_license=string,business_description=string,logo_url=string,discount_policy=string,accepts_donations=bool} true "Vendor data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/vendor/signup [post]
func (h *SessionHandler) VendorSignupDoc() {}

// VendorLogin godoc
// @Summary Vendor login
// @Tags Vendor
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/vendor/login [post]
func (h *SessionHandler) VendorLoginDoc() {}

// VendorLogout godoc
// @Summary Vendor logout
// @Tags Vendor
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /api/vendor/logout [post]
func (h *SessionHandler) VendorLogoutDoc() {}

// VendorDashboard godoc
// @Summary Vendor dashboard
// @Description The signed-in vendor's profile, listings and listing counts
// @Tags Vendor
// @Produce json
// @Success 200 {object} object{success=bool,data=object{vendor=object,products=array,stats=object}}
// @Failure 303 {object} object{success=bool,error=string,redirect=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/vendor/dashboard [get]
func (h *SessionHandler) VendorDashboardDoc() {}
