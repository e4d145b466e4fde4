package entity

import "strings"

// Role is the closed set of user roles
type Role string

// Roles
const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleAuthor    Role = "author"
)

// ParseRole maps a stored role to a Role. Empty or unknown values fall back to RoleUser.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleModerator:
		return RoleModerator
	case RoleAuthor:
		return RoleAuthor
	default:
		return RoleUser
	}
}

// Dashboard returns the landing page for the role
func (r Role) Dashboard() Page {
	switch r {
	case RoleAdmin:
		return PageAdminDashboard
	case RoleModerator:
		return PageModeratorDashboard
	case RoleAuthor:
		return PageAuthorDashboard
	case RoleUser:
		return PageDashboard
	default:
		return PageDashboard
	}
}

// Page identifies a client page subject to access control
type Page string

// Pages
const (
	PageRoot               Page = "/"
	PageHome               Page = "home"
	PageAuth               Page = "auth"
	PageOnboarding         Page = "onboarding"
	PageDashboard          Page = "dashboard"
	PageAdminDashboard     Page = "admin-dash"
	PageModeratorDashboard Page = "moderator-dash"
	PageAuthorDashboard    Page = "author-dash"
	PageMarket             Page = "market"
	PageLearning           Page = "learning"
)

// ParsePage accepts a page name with or without an ".html" suffix or leading slash
func ParsePage(raw string) (Page, bool) {
	name := strings.TrimSpace(raw)
	if name == "" || name == "/" {
		return PageRoot, true
	}
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimSuffix(name, ".html")

	switch p := Page(strings.ToLower(name)); p {
	case PageHome, PageAuth, PageOnboarding, PageDashboard, PageAdminDashboard,
		PageModeratorDashboard, PageAuthorDashboard, PageMarket, PageLearning:
		return p, true
	default:
		return "", false
	}
}

// IsProtected reports whether the page requires a session
func (p Page) IsProtected() bool {
	switch p {
	case PageDashboard, PageAdminDashboard, PageModeratorDashboard, PageAuthorDashboard, PageOnboarding:
		return true
	default:
		return false
	}
}

// IsSignIn reports whether the page is a sign-in entry point
func (p Page) IsSignIn() bool {
	return p == PageAuth || p == PageRoot
}

// DecisionKind is the outcome of an access check
type DecisionKind string

// Decision kinds
const (
	DecisionAllow    DecisionKind = "allow"
	DecisionRedirect DecisionKind = "redirect"
)

// AccessDecision is the typed result of an access check
type AccessDecision struct {
	Kind   DecisionKind `json:"decision"`
	Target Page         `json:"target,omitempty"`
}

// Allow grants access to the requested page
func Allow() AccessDecision {
	return AccessDecision{Kind: DecisionAllow}
}

// RedirectTo sends the caller to target
func RedirectTo(target Page) AccessDecision {
	return AccessDecision{Kind: DecisionRedirect, Target: target}
}

// IsRedirect reports whether the decision redirects
func (d AccessDecision) IsRedirect() bool {
	return d.Kind == DecisionRedirect
}
