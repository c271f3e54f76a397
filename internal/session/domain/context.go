package domain

import "context"

// Context is the validated identity of one browser session, loaded once per
// request and handed to whatever needs to know who is logged in.
type Context struct {
	SessionID string
	User      *UserRecord
	Vendor    *VendorRecord
}

// Kind is vendor when a vendor is signed in, then user, then anonymous
func (c *Context) Kind() Kind {
	switch {
	case c == nil:
		return KindAnonymous
	case c.Vendor != nil:
		return KindVendor
	case c.User != nil:
		return KindUser
	default:
		return KindAnonymous
	}
}

func (c *Context) IsShopper() bool {
	return c != nil && c.User != nil
}

func (c *Context) IsVendor() bool {
	return c != nil && c.Vendor != nil
}

func (c *Context) DisplayName() string {
	switch c.Kind() {
	case KindVendor:
		return c.Vendor.VendorName
	case KindUser:
		return c.User.Name
	default:
		return ""
	}
}

type ctxKey struct{}

// WithContext attaches a session to ctx
func WithContext(ctx context.Context, s *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by WithContext, or an anonymous
// session with no id
func FromContext(ctx context.Context) *Context {
	if s, ok := ctx.Value(ctxKey{}).(*Context); ok && s != nil {
		return s
	}
	return &Context{}
}
