package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Role
	}{
		{"admin", RoleAdmin},
		{"Moderator", RoleModerator},
		{" author ", RoleAuthor},
		{"user", RoleUser},
		{"", RoleUser},
		{"superuser", RoleUser},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseRole(tc.raw))
		})
	}
}

func TestRoleDashboard(t *testing.T) {
	assert.Equal(t, PageAdminDashboard, RoleAdmin.Dashboard())
	assert.Equal(t, PageModeratorDashboard, RoleModerator.Dashboard())
	assert.Equal(t, PageAuthorDashboard, RoleAuthor.Dashboard())
	assert.Equal(t, PageDashboard, RoleUser.Dashboard())
	assert.Equal(t, PageDashboard, ParseRole("").Dashboard())
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Page
		ok       bool
	}{
		{"", PageRoot, true},
		{"/", PageRoot, true},
		{"auth.html", PageAuth, true},
		{"/dashboard.html", PageDashboard, true},
		{"admin-dash", PageAdminDashboard, true},
		{"market.html", PageMarket, true},
		{"unknown.html", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			page, ok := ParsePage(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, page)
		})
	}
}

func TestPageClassification(t *testing.T) {
	for _, p := range []Page{PageDashboard, PageAdminDashboard, PageModeratorDashboard, PageAuthorDashboard, PageOnboarding} {
		assert.True(t, p.IsProtected(), string(p))
	}
	for _, p := range []Page{PageRoot, PageHome, PageAuth, PageMarket, PageLearning} {
		assert.False(t, p.IsProtected(), string(p))
	}

	assert.True(t, PageAuth.IsSignIn())
	assert.True(t, PageRoot.IsSignIn())
	assert.False(t, PageHome.IsSignIn())
}

func TestAccessDecision(t *testing.T) {
	assert.False(t, Allow().IsRedirect())

	decision := RedirectTo(PageOnboarding)
	assert.True(t, decision.IsRedirect())
	assert.Equal(t, PageOnboarding, decision.Target)
}
