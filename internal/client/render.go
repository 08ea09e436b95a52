// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-users-registry/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// renderRoleView prints every role as a bold heading with its users indented
// below. Roles are sorted.
func renderRoleView(view models.RoleViewResponse) string {
	if len(view.View) == 0 {
		return faintStyle.Render("no users") + "\n"
	}

	roles := make([]string, 0, len(view.View))
	for role := range view.View {
		roles = append(roles, role)
	}
	slices.Sort(roles)

	var b strings.Builder
	for _, role := range roles {
		b.WriteString(headingStyle.Render(role))
		b.WriteString("\n")
		for _, u := range view.View[role] {
			b.WriteString(renderUserLine(u))
		}
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d users", view.Size)))
	b.WriteString("\n")

	return b.String()
}

func renderUserLine(u models.User) string {
	return "  " + renderUser(u) + "\n"
}

func renderUser(u models.User) string {
	return fmt.Sprintf("%s %s %s", u.Name, faintStyle.Render("["+u.Namespace+"]"), u.Compatibility)
}

// renderUsers prints filter results as "role: name [namespace] uri" lines.
func renderUsers(users []models.User) string {
	if len(users) == 0 {
		return faintStyle.Render("no matching users") + "\n"
	}

	var b strings.Builder
	for _, u := range users {
		fmt.Fprintf(&b, "%s: %s\n", headingStyle.Render(u.Role), renderUser(u))
	}
	return b.String()
}

func renderList(title string, values []string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n")
	if len(values) == 0 {
		b.WriteString(faintStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, v := range values {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	return b.String()
}

func renderLoad(resp models.LoadResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", headingStyle.Render("added:"), len(resp.Added))
	for _, u := range resp.Added {
		fmt.Fprintf(&b, "  %s/%s %s\n", u.Role, u.Name, faintStyle.Render("["+u.Namespace+"]"))
	}
	if len(resp.Rejected) > 0 {
		fmt.Fprintf(&b, "%s %d\n", errorStyle.Render("rejected:"), len(resp.Rejected))
		for _, r := range resp.Rejected {
			fmt.Fprintf(&b, "  %s/%s: %s\n", r.Role, r.Name, r.Reason)
		}
	}
	return b.String()
}

func renderUnload(resp models.UnloadResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", headingStyle.Render("removed:"), resp.Length)
	for _, s := range resp.Removed {
		fmt.Fprintf(&b, "  %s/%s %s\n", s.Role, s.Name, faintStyle.Render("["+s.Namespace+"]"))
	}
	return b.String()
}
