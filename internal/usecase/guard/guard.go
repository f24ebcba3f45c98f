// Package guard decides whether an identity may enter an area of the application.
package guard

import "canteen/internal/domain/entity"

// Area is a group of screens sharing one access rule.
type Area int

const (
	// AreaPublic is open to everyone.
	AreaPublic Area = iota
	// AreaAuthenticated needs a signed-in identity, verified or not.
	AreaAuthenticated
	// AreaUser needs a signed-in identity with a verified email.
	AreaUser
	// AreaAdmin needs a privileged profile.
	AreaAdmin
)

// Client routes a redirect points to.
const (
	RouteHome        = "/"
	RouteLogin       = "/auth"
	RouteAdminLogin  = "/adminlogin"
	RouteVerifyEmail = "/verify-email"
	RouteMenu        = "/menu"
	RouteAdmin       = "/admin"
)

// Reason explains a denied decision.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonUnverified      Reason = "email_unverified"
	ReasonNotAdmin        Reason = "not_admin"
)

// Decision is the outcome of a guard check. A denied decision names the route to go to instead.
type Decision struct {
	Allowed  bool
	Redirect string
	Reason   Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason, redirect string) Decision {
	return Decision{Reason: reason, Redirect: redirect}
}

// Resolve applies the access rule of area. identity is nil for anonymous callers and
// profile is nil when the identity has no Users document. Privilege comes from the
// profile only; admins may enter the admin area before verifying their email.
func Resolve(identity *entity.Identity, profile *entity.UserProfile, area Area) Decision {
	switch area {
	case AreaPublic:
		return allow()

	case AreaAuthenticated:
		if identity == nil {
			return deny(ReasonUnauthenticated, RouteLogin)
		}

		return allow()

	case AreaUser:
		if identity == nil {
			return deny(ReasonUnauthenticated, RouteLogin)
		}
		if !identity.EmailVerified {
			return deny(ReasonUnverified, RouteVerifyEmail)
		}

		return allow()

	case AreaAdmin:
		if identity == nil {
			return deny(ReasonUnauthenticated, RouteAdminLogin)
		}
		if entity.RoleOf(profile) != entity.RoleAdmin {
			return deny(ReasonNotAdmin, RouteAdminLogin)
		}

		return allow()

	default:
		return deny(ReasonUnauthenticated, RouteLogin)
	}
}

// Landing returns the screen an identity should see after signing in.
func Landing(identity *entity.Identity, profile *entity.UserProfile) string {
	switch {
	case identity == nil:
		return RouteHome
	case entity.RoleOf(profile) == entity.RoleAdmin:
		return RouteAdmin
	case !identity.EmailVerified:
		return RouteVerifyEmail
	default:
		return RouteMenu
	}
}
